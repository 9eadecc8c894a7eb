// Package presets holds named configurations that replace the defaults before
// the config file and flags are applied.
package presets

import (
	"fmt"
	"sort"

	"github.com/social-network/DAO/config"
	"github.com/social-network/DAO/inflation"
)

var presets = map[string]config.Config{}

func register(name string, preset config.Config) {
	if _, exist := presets[name]; exist {
		panic(fmt.Sprintf("preset with name %s already exists", name))
	}
	presets[name] = preset
}

// Options returns the names of registered presets.
func Options() []string {
	rst := make([]string, 0, len(presets))
	for name := range presets {
		rst = append(rst, name)
	}
	sort.Strings(rst)
	return rst
}

// Get a copy of the preset called name.
func Get(name string) (config.Config, error) {
	preset, exist := presets[name]
	if !exist {
		return config.Config{}, fmt.Errorf("preset %s doesn't exist. select one of %v", name, Options())
	}
	preset.Inflation.Versions = append([]inflation.Version(nil), preset.Inflation.Versions...)
	return preset, nil
}
