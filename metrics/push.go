package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/social-network/DAO/metrics/public"
)

// PushConfig configures a pushgateway target.
type PushConfig struct {
	URL      string            `mapstructure:"metrics-push"`
	Username string            `mapstructure:"metrics-push-user"`
	Password string            `mapstructure:"metrics-push-pass"`
	Headers  map[string]string `mapstructure:"metrics-push-header"`
	Job      string            `mapstructure:"metrics-push-job"`
}

// Push sends the public registry together with the default one to the pushgateway once.
// Batch commands call it when they finish.
func Push(cfg PushConfig, network string) error {
	header := http.Header{}
	for k, v := range cfg.Headers {
		header.Add(k, v)
	}
	job := cfg.Job
	if job == "" {
		job = "dao-inflation"
	}
	pusher := push.New(cfg.URL, job).
		Gatherer(prometheus.Gatherers{public.Registry, prometheus.DefaultGatherer}).
		Grouping("network", network).
		Header(header)
	if cfg.Username != "" && cfg.Password != "" {
		pusher = pusher.BasicAuth(cfg.Username, cfg.Password)
	}
	if err := pusher.Push(); err != nil {
		return fmt.Errorf("push metrics to %s: %w", cfg.URL, err)
	}
	return nil
}
