// Package config contains the configuration of the inflation commands.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/social-network/DAO/inflation"
	"github.com/social-network/DAO/metrics"
)

// Config defines the top level configuration.
type Config struct {
	BaseConfig `mapstructure:"main"`
	Logging    LoggerConfig     `mapstructure:"logging"`
	Inflation  inflation.Config `mapstructure:"inflation"`
}

// BaseConfig defines the options shared by all commands.
type BaseConfig struct {
	ConfigFile string `mapstructure:"config"`

	// Network labels pushed metrics.
	Network string `mapstructure:"network"`

	CollectMetrics     bool `mapstructure:"metrics"`
	MetricsPort        int  `mapstructure:"metrics-port"`
	metrics.PushConfig `mapstructure:",squash"`

	// Workers bounds the number of eras evaluated concurrently by the table command.
	Workers int `mapstructure:"workers"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		Logging:    defaultLoggingConfig(),
		Inflation:  inflation.DefaultConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		Network:     "mainnet",
		MetricsPort: 1010,
		Workers:     4,
	}
}

// LoadConfig reads the config file into vip. An empty location keeps vip untouched.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		return nil
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %w", err)
	}
	return nil
}
