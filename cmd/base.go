// Package cmd holds the commands of the inflation calculator.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/config"
	"github.com/social-network/DAO/config/presets"
	"github.com/social-network/DAO/inflation"
	"github.com/social-network/DAO/log"
	"github.com/social-network/DAO/metrics"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// Logger names.
const (
	AppLogger        = "app"
	InflationLogger  = "inflation"
	ProjectionLogger = "projection"
)

// Amount widths.
const (
	WidthU64  = "u64"
	WidthU128 = "u128"
	WidthU256 = "u256"
)

var errUnknownWidth = errors.New("unknown amount width")

// app is the state shared by a command run.
type app struct {
	conf  *config.Config
	width string

	log           *zap.Logger
	inflationLog  *zap.Logger
	projectionLog *zap.Logger

	stopMetrics func()
}

func newApp(cmd *cobra.Command) (*app, error) {
	conf, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	width, err := cmd.Flags().GetString("width")
	if err != nil {
		return nil, err
	}
	switch width {
	case WidthU64, WidthU128, WidthU256:
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownWidth, width)
	}
	a := &app{conf: conf, width: width}
	if err := a.setupLogging(); err != nil {
		return nil, err
	}
	if conf.CollectMetrics {
		a.stopMetrics = metrics.StartMetricsServer(a.log, conf.MetricsPort)
	}
	return a, nil
}

func (a *app) setupLogging() error {
	encoder, err := log.NewEncoder(a.conf.Logging.Encoder)
	if err != nil {
		return err
	}
	// root is at debug so that every module can be configured at any level
	root := log.NewWithLevel("", zap.NewAtomicLevelAt(zapcore.DebugLevel), encoder)
	named := func(name string) (*zap.Logger, error) {
		lvl, err := a.conf.Logging.Level(name)
		if err != nil {
			return nil, err
		}
		return log.Named(root, name, lvl), nil
	}
	if a.log, err = named(AppLogger); err != nil {
		return err
	}
	if a.inflationLog, err = named(InflationLogger); err != nil {
		return err
	}
	if a.projectionLog, err = named(ProjectionLogger); err != nil {
		return err
	}
	return nil
}

// close stops the metrics server and pushes metrics if a pushgateway is configured.
func (a *app) close() {
	if a.stopMetrics != nil {
		a.stopMetrics()
	}
	if a.conf.URL != "" {
		if err := metrics.Push(a.conf.PushConfig, a.conf.Network); err != nil {
			a.log.Warn("failed to push metrics", zap.Error(err))
		} else {
			a.log.Info("pushed metrics", zap.String("url", a.conf.URL))
		}
	}
	_ = a.log.Sync()
}

func evaluator[T arith.Amount[T]](a *app) (*inflation.Evaluator[T], error) {
	schedule, err := a.conf.Inflation.Schedule()
	if err != nil {
		return nil, err
	}
	opts := append(a.conf.Inflation.Options(), inflation.WithLogger(a.inflationLog))
	return inflation.NewEvaluator[T](schedule, opts...)
}

// loadConfig loads the preset, then the config file, then the flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	preset, err := flags.GetString("preset")
	if err != nil {
		return nil, err
	}

	vip := viper.New()
	if err := config.LoadConfig(path, vip); err != nil {
		return nil, err
	}
	if len(preset) == 0 && vip.IsSet("preset") {
		preset = vip.GetString("preset")
	}
	conf := config.DefaultConfig()
	if len(preset) > 0 {
		p, err := presets.Get(preset)
		if err != nil {
			return nil, err
		}
		conf = p
	}
	if err := config.Decode(vip, &conf); err != nil {
		return nil, err
	}
	if err := EnsureCLIFlags(flags, &conf); err != nil {
		return nil, fmt.Errorf("mapping cli flags to config: %w", err)
	}
	return &conf, nil
}

// EnsureCLIFlags copies the flags set on the command line into conf.
func EnsureCLIFlags(flags *pflag.FlagSet, conf *config.Config) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "config":
			conf.ConfigFile = f.Value.String()
		case "network":
			conf.Network = f.Value.String()
		case "log-encoder":
			conf.Logging.Encoder = f.Value.String()
		case "log-level":
			conf.Logging.AppLoggerLevel = f.Value.String()
			conf.Logging.InflationLoggerLevel = f.Value.String()
			conf.Logging.ProjectionLoggerLevel = f.Value.String()
		case "metrics":
			conf.CollectMetrics, err = flags.GetBool(f.Name)
		case "metrics-port":
			conf.MetricsPort, err = flags.GetInt(f.Name)
		case "metrics-push":
			conf.URL = f.Value.String()
		case "metrics-push-job":
			conf.Job = f.Value.String()
		case "workers":
			conf.Workers, err = flags.GetInt(f.Name)
		case "decay-cache-size":
			conf.Inflation.DecayCacheSize, err = flags.GetInt(f.Name)
		}
	})
	return err
}
