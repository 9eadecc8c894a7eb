// Package public holds metrics that are safe to publish outside of the operator's infrastructure.
package public

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var Registry = prometheus.NewRegistry()

var (
	Issuance = promauto.With(Registry).NewGauge(prometheus.GaugeOpts{
		Namespace: "dao",
		Name:      "projected_issuance",
		Help:      "total issuance at the end of the last projected era",
	})
	Era = promauto.With(Registry).NewGauge(prometheus.GaugeOpts{
		Namespace: "dao",
		Name:      "projected_era",
		Help:      "last projected era",
	})
)
