package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/social-network/DAO/log"
)

const defaultLoggingLevel = zapcore.InfoLevel

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	Encoder               string `mapstructure:"log-encoder"`
	AppLoggerLevel        string `mapstructure:"app"`
	InflationLoggerLevel  string `mapstructure:"inflation"`
	ProjectionLoggerLevel string `mapstructure:"projection"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:               log.ConsoleEncoder,
		AppLoggerLevel:        defaultLoggingLevel.String(),
		InflationLoggerLevel:  defaultLoggingLevel.String(),
		ProjectionLoggerLevel: defaultLoggingLevel.String(),
	}
}

// Level returns the level configured for the module called name.
func (c LoggerConfig) Level(name string) (zap.AtomicLevel, error) {
	lvl := zap.NewAtomicLevel()
	loggers := map[string]string{}
	if err := mapstructure.Decode(c, &loggers); err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("error decoding mapstructure: %w", err)
	}

	level, ok := loggers[name]
	if ok && level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("cannot parse logging for %v: %w", name, err)
		}
	} else {
		lvl.SetLevel(log.DefaultLevel())
	}
	return lvl, nil
}
