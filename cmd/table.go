package cmd

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/common/types"
	"github.com/social-network/DAO/projection"
)

var defaultTableEras = []uint{0, 1, 10, 100, 1_000, 10_000, 100_000, 359_999, 360_000, 360_001}

type tableOpts struct {
	eras     []uint
	tokens   string
	issuance string
	out      string
}

func tableCmd() *cobra.Command {
	var opts tableOpts
	cmd := &cobra.Command{
		Use:   "table",
		Short: "evaluate independent eras with the same totals and print them as csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			out := cmd.OutOrStdout()
			switch a.width {
			case WidthU64:
				return table[arith.U64](cmd, a, out, opts)
			case WidthU256:
				return table[arith.U256](cmd, a, out, opts)
			}
			return table[arith.U128](cmd, a, out, opts)
		},
	}
	cmd.Flags().UintSliceVar(&opts.eras, "eras", defaultTableEras, "eras to evaluate")
	cmd.Flags().StringVar(&opts.tokens, "tokens", "0", "total tokens")
	cmd.Flags().StringVar(&opts.issuance, "issuance", "0", "total issuance")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write csv to file instead of stdout")
	cmd.Flags().Int("workers", 0, "number of eras evaluated concurrently, defaults to the configured value")
	return cmd
}

func table[T arith.Amount[T]](cmd *cobra.Command, a *app, w io.Writer, opts tableOpts) error {
	ev, err := evaluator[T](a)
	if err != nil {
		return err
	}
	tokens, err := arith.Parse[T](opts.tokens)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}
	issuance, err := arith.Parse[T](opts.issuance)
	if err != nil {
		return fmt.Errorf("issuance: %w", err)
	}
	eras := make([]types.EraIndex, 0, len(opts.eras))
	for _, era := range opts.eras {
		if era > math.MaxUint32 {
			return fmt.Errorf("era %d exceeds %d", era, types.MaxEra)
		}
		eras = append(eras, types.EraIndex(era))
	}
	rows, err := projection.Table(cmd.Context(), projection.Evaluator[T](ev), eras, tokens, issuance, a.conf.Workers)
	if err != nil {
		return err
	}
	a.projectionLog.Info("evaluated eras", zap.Int("eras", len(rows)), zap.Int("workers", a.conf.Workers))
	return writeRows(w, opts.out, rows)
}

// writeRows renders rows as csv to w, or atomically replaces the file at path.
func writeRows[T arith.Amount[T]](w io.Writer, path string, rows []projection.Row[T]) error {
	if path == "" {
		return projection.WriteCSV(w, rows)
	}
	var buf bytes.Buffer
	if err := projection.WriteCSV(&buf, rows); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
