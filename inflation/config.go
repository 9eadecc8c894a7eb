package inflation

// Config is the inflation section of the node configuration.
type Config struct {
	// Versions are applied in order, the first one from era 0.
	Versions []Version `mapstructure:"versions"`
	// DecayCacheSize is the number of decay factors kept by the evaluator. Zero disables caching.
	DecayCacheSize int `mapstructure:"decay-cache-size"`
}

// DefaultConfig returns a single version schedule with the standard policy.
func DefaultConfig() Config {
	return Config{
		Versions: []Version{{
			Name:   "standard",
			Policy: StandardPolicy(),
		}},
		DecayCacheSize: 1024,
	}
}

// Schedule builds and validates the configured schedule.
func (c *Config) Schedule() (*Schedule, error) {
	return NewSchedule(c.Versions...)
}

// Options returns the evaluator options implied by the configuration.
func (c *Config) Options() []Opt {
	return []Opt{WithDecayCache(c.DecayCacheSize)}
}
