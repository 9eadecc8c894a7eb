package inflation

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/common/types"
	"github.com/social-network/DAO/metrics"
)

type decayKey struct {
	version int
	era     types.EraIndex
}

type options struct {
	logger    *zap.Logger
	cacheSize int
}

// Opt for configuring Evaluator.
type Opt func(*options)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDecayCache keeps the last size decay factors. Zero disables the cache.
func WithDecayCache(size int) Opt {
	return func(o *options) {
		o.cacheSize = size
	}
}

// Evaluator computes era payouts under a versioned schedule.
// It is safe for concurrent use.
type Evaluator[T arith.Amount[T]] struct {
	logger   *zap.Logger
	schedule *Schedule
	decay    *lru.Cache[decayKey, arith.Perbill]
}

// NewEvaluator returns an evaluator for schedule.
func NewEvaluator[T arith.Amount[T]](schedule *Schedule, opts ...Opt) (*Evaluator[T], error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	e := &Evaluator[T]{
		logger:   o.logger,
		schedule: schedule,
	}
	if o.cacheSize > 0 {
		cache, err := lru.New[decayKey, arith.Perbill](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create decay cache: %w", err)
		}
		e.decay = cache
	}
	for _, v := range schedule.versions {
		e.logger.Info("inflation policy version",
			zap.String("name", v.Name),
			zap.Uint32("activation", v.Activation.Uint32()),
			zap.Stringer("bonus_rate", v.Policy.BonusRate),
			zap.Stringer("decay_rate", v.Policy.DecayRate),
			zap.Stringer("staker_split", v.Policy.StakerSplit),
			zap.String("staker_base", string(v.Policy.StakerBase)),
			zap.Bool("cutover", v.Policy.Cutover.Enabled),
			zap.Uint32("cutover_era", v.Policy.Cutover.Era.Uint32()),
			zap.Stringer("final_supply", v.Policy.Cutover.FinalSupply),
		)
	}
	return e, nil
}

// Schedule returns the schedule of the evaluator.
func (e *Evaluator[T]) Schedule() *Schedule {
	return e.schedule
}

// Version returns the name of the version governing era.
func (e *Evaluator[T]) Version(era types.EraIndex) string {
	_, v := e.schedule.At(era)
	return v.Name
}

// Payout returns the staker and maximum payout of era.
func (e *Evaluator[T]) Payout(era types.EraIndex, totalTokens, totalIssuance T) Payout[T] {
	idx, v := e.schedule.At(era)
	decay := func(era types.EraIndex) arith.Perbill {
		return e.decayFactor(idx, &v.Policy, era)
	}
	out := compute(&v.Policy, era, decay, totalTokens, totalIssuance)
	e.observe(v.Name, era, out, zap.Stringer("total_issuance", totalIssuance))
	return out
}

// PayoutTokens returns the payout of era computed from total tokens only.
func (e *Evaluator[T]) PayoutTokens(era types.EraIndex, totalTokens T) Payout[T] {
	idx, v := e.schedule.At(era)
	out := growthTokens(&v.Policy, e.decayFactor(idx, &v.Policy, era), totalTokens)
	e.observe(v.Name, era, out, zap.Stringer("total_tokens", totalTokens))
	return out
}

func (e *Evaluator[T]) decayFactor(idx int, policy *Policy, era types.EraIndex) arith.Perbill {
	if e.decay == nil {
		return policy.DecayFactor(era)
	}
	key := decayKey{version: idx, era: era}
	if f, ok := e.decay.Get(key); ok {
		decayCacheHit.Inc()
		return f
	}
	decayCacheMiss.Inc()
	f, ok := e.stepDecay(idx, policy, era)
	if !ok {
		f = policy.DecayFactor(era)
	}
	e.decay.Add(key, f)
	return f
}

// stepDecay derives the factor of era from the cached factor of the previous era.
func (e *Evaluator[T]) stepDecay(idx int, policy *Policy, era types.EraIndex) (arith.Perbill, bool) {
	if era == types.FirstEra {
		return 0, false
	}
	prev, ok := e.decay.Peek(decayKey{version: idx, era: era.Sub(1)})
	if !ok {
		return 0, false
	}
	return policy.nextDecay(prev)
}

func (e *Evaluator[T]) observe(version string, era types.EraIndex, out Payout[T], input zap.Field) {
	switch out.Phase {
	case PhaseGrowth:
		growthEvaluations.Inc()
	case PhaseCutover:
		cutoverEvaluations.Inc()
	case PhaseTerminal:
		terminalEvaluations.Inc()
	}
	lastEra.Set(float64(era))
	lastMaximum.Set(metrics.Float(out.Maximum.Ref()))
	lastStaker.Set(metrics.Float(out.Staker.Ref()))
	e.logger.Debug("era payout",
		era.Field(),
		zap.String("version", version),
		zap.Stringer("phase", out.Phase),
		input,
		zap.Stringer("staker", out.Staker),
		zap.Stringer("maximum", out.Maximum),
	)
}
