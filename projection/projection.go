// Package projection plays the era rollover against an evaluator: every era the
// maximum payout is minted and added to total issuance.
package projection

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spacemeshos/fixed"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/common/types"
	"github.com/social-network/DAO/inflation"
	"github.com/social-network/DAO/metrics"
	"github.com/social-network/DAO/metrics/public"
)

// Params of a projection.
type Params[T arith.Amount[T]] struct {
	From types.EraIndex
	Eras uint32
	// TotalTokens is held constant across the projection.
	TotalTokens T
	// Issuance is the total issuance before era From.
	Issuance T
}

// Row is the outcome of one era.
type Row[T arith.Amount[T]] struct {
	Era      types.EraIndex
	Phase    inflation.Phase
	Version  string
	Staker   T
	Maximum  T
	Treasury T
	// Issuance is the total issuance after the era is minted.
	Issuance T
	// Rate is the inflation of the era, maximum payout over issuance before minting.
	Rate fixed.Fixed
}

// Run evaluates Params.Eras consecutive eras starting at Params.From and calls
// fn with every row. Run stops at the last era, on the first error returned by fn
// or when ctx is done.
func Run[T arith.Amount[T]](
	ctx context.Context,
	logger *zap.Logger,
	ev Evaluator[T],
	params Params[T],
	fn func(Row[T]) error,
) (err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		runDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()
	issuance := params.Issuance
	era := params.From
	for i := uint32(0); i < params.Eras; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		out := ev.Payout(era, params.TotalTokens, issuance)
		row := Row[T]{
			Era:      era,
			Phase:    out.Phase,
			Version:  ev.Version(era),
			Staker:   out.Staker,
			Maximum:  out.Maximum,
			Treasury: out.Treasury(),
			Rate:     Rate(out.Maximum, issuance),
		}
		issuance = issuance.SaturatingAdd(out.Maximum)
		row.Issuance = issuance
		if err := fn(row); err != nil {
			return fmt.Errorf("era %s: %w", era, err)
		}
		public.Issuance.Set(metrics.Float(issuance.Ref()))
		public.Era.Set(float64(era))
		if era == types.MaxEra {
			break
		}
		era = era.Add(1)
	}
	logger.Debug("projection finished",
		zap.Uint32("from", params.From.Uint32()),
		zap.Uint32("eras", params.Eras),
		zap.Stringer("issuance", issuance),
	)
	return nil
}

// Collect runs a projection and returns all rows.
func Collect[T arith.Amount[T]](ctx context.Context, logger *zap.Logger, ev Evaluator[T], params Params[T]) ([]Row[T], error) {
	rows := make([]Row[T], 0, params.Eras)
	err := Run(ctx, logger, ev, params, func(row Row[T]) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Table evaluates independent eras with the same totals on up to workers goroutines.
// Rows are returned in the order of eras.
func Table[T arith.Amount[T]](
	ctx context.Context,
	ev Evaluator[T],
	eras []types.EraIndex,
	totalTokens, totalIssuance T,
	workers int,
) ([]Row[T], error) {
	rows := make([]Row[T], len(eras))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, era := range eras {
		i, era := i, era
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := ev.Payout(era, totalTokens, totalIssuance)
			rows[i] = Row[T]{
				Era:      era,
				Phase:    out.Phase,
				Version:  ev.Version(era),
				Staker:   out.Staker,
				Maximum:  out.Maximum,
				Treasury: out.Treasury(),
				Issuance: totalIssuance.SaturatingAdd(out.Maximum),
				Rate:     Rate(out.Maximum, totalIssuance),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Rate returns minted over issuance. Zero issuance yields zero.
func Rate[T arith.Amount[T]](minted, issuance T) fixed.Fixed {
	if issuance.IsZero() {
		return fixed.New64(0)
	}
	limit := arith.FromUint64[T](1 << 62)
	for minted.Cmp(limit) >= 0 || issuance.Cmp(limit) >= 0 {
		minted, _ = minted.QuoRem64(1 << 16)
		issuance, _ = issuance.QuoRem64(1 << 16)
	}
	if issuance.IsZero() {
		return fixed.New64(0)
	}
	return fixed.DivUint64(minted.Ref().Lo, issuance.Ref().Lo)
}

// Header is the CSV header written by WriteCSV.
var Header = []string{"era", "phase", "version", "staker", "maximum", "treasury", "issuance", "rate"}

// WriteCSV renders rows as CSV.
func WriteCSV[T arith.Amount[T]](w io.Writer, rows []Row[T]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (r Row[T]) record() []string {
	return []string{
		r.Era.String(),
		r.Phase.String(),
		r.Version,
		r.Staker.String(),
		r.Maximum.String(),
		r.Treasury.String(),
		r.Issuance.String(),
		strconv.FormatFloat(r.Rate.Float(), 'g', 9, 64),
	}
}
