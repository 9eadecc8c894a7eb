package projection

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/social-network/DAO/metrics"
)

const subsystem = "projection"

var runDuration = metrics.NewHistogramWithBuckets(
	"run_duration_seconds",
	subsystem,
	"duration of a projection run",
	[]string{"outcome"},
	prometheus.ExponentialBuckets(0.001, 4, 10),
)
