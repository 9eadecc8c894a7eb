package inflation

import (
	"github.com/social-network/DAO/metrics"
)

const namespace = "inflation"

var (
	evaluations = metrics.NewCounter(
		"evaluations",
		namespace,
		"number of era payout evaluations by phase",
		[]string{"phase"},
	)
	growthEvaluations   = evaluations.WithLabelValues(PhaseGrowth.String())
	cutoverEvaluations  = evaluations.WithLabelValues(PhaseCutover.String())
	terminalEvaluations = evaluations.WithLabelValues(PhaseTerminal.String())

	decayCache = metrics.NewCounter(
		"decay_cache",
		namespace,
		"decay factor cache lookups",
		[]string{"result"},
	)
	decayCacheHit  = decayCache.WithLabelValues("hit")
	decayCacheMiss = decayCache.WithLabelValues("miss")

	lastPayout = metrics.NewGauge(
		"last_payout",
		namespace,
		"payout of the last evaluated era",
		[]string{"kind"},
	)
	lastMaximum = lastPayout.WithLabelValues("maximum")
	lastStaker  = lastPayout.WithLabelValues("staker")

	lastEra = metrics.NewGauge(
		"last_era",
		namespace,
		"last evaluated era",
		[]string{},
	).WithLabelValues()
)
