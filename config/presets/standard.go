package presets

import (
	"github.com/social-network/DAO/config"
	"github.com/social-network/DAO/inflation"
)

func init() {
	register("standard", standard())
	register("legacy", legacy())
	register("replay", replay())
}

func standard() config.Config {
	return config.DefaultConfig()
}

// legacy mints without a final supply target.
func legacy() config.Config {
	conf := config.DefaultConfig()
	conf.Inflation.Versions = []inflation.Version{{
		Name:   "legacy",
		Policy: inflation.LegacyPolicy(),
	}}
	return conf
}

// replay recomputes eras minted under the rule that derived the staker payout
// from total tokens, with the decay truncated at every era as it was minted.
func replay() config.Config {
	conf := config.DefaultConfig()
	conf.Inflation.Versions = []inflation.Version{{
		Name:   "replay",
		Policy: inflation.ReplayPolicy(),
	}}
	conf.Logging.InflationLoggerLevel = "debug"
	return conf
}
