package inflation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/social-network/DAO/common/types"
)

var (
	// ErrEmptySchedule is returned when a schedule has no versions.
	ErrEmptySchedule = errors.New("schedule has no versions")
	// ErrNoGenesisVersion is returned when the first version does not activate at era 0.
	ErrNoGenesisVersion = errors.New("first version must activate at era 0")
	// ErrActivationOrder is returned when activations are not strictly increasing.
	ErrActivationOrder = errors.New("activation eras must be strictly increasing")
	// ErrDuplicateVersion is returned when two versions share a name.
	ErrDuplicateVersion = errors.New("duplicate version name")
)

// Version is a policy applied from its activation era until the next version activates.
type Version struct {
	Name       string         `mapstructure:"name"`
	Activation types.EraIndex `mapstructure:"activation-era"`
	Policy     Policy         `mapstructure:"policy"`
}

// Schedule is an immutable, era ordered list of policy versions.
// Replacing a policy means appending a version, so past eras keep their results.
type Schedule struct {
	versions []Version
}

// NewSchedule validates versions and returns a schedule.
func NewSchedule(versions ...Version) (*Schedule, error) {
	if len(versions) == 0 {
		return nil, ErrEmptySchedule
	}
	if versions[0].Activation != types.FirstEra {
		return nil, fmt.Errorf("%w: %q activates at %d", ErrNoGenesisVersion, versions[0].Name, versions[0].Activation)
	}
	copied := make([]Version, len(versions))
	copy(copied, versions)
	names := make(map[string]struct{}, len(copied))
	for i := range copied {
		v := &copied[i]
		if _, exists := names[v.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVersion, v.Name)
		}
		names[v.Name] = struct{}{}
		if i > 0 && v.Activation <= copied[i-1].Activation {
			return nil, fmt.Errorf("%w: %q at %d after %q at %d", ErrActivationOrder,
				v.Name, v.Activation, copied[i-1].Name, copied[i-1].Activation)
		}
		if err := v.Policy.Validate(); err != nil {
			return nil, fmt.Errorf("version %q: %w", v.Name, err)
		}
	}
	return &Schedule{versions: copied}, nil
}

// MustNewSchedule is NewSchedule that panics on error. Intended for static schedules.
func MustNewSchedule(versions ...Version) *Schedule {
	s, err := NewSchedule(versions...)
	if err != nil {
		panic(err)
	}
	return s
}

// At returns the version governing era and its position in the schedule.
func (s *Schedule) At(era types.EraIndex) (int, Version) {
	i := sort.Search(len(s.versions), func(i int) bool {
		return s.versions[i].Activation > era
	}) - 1
	// the first version activates at era 0, so i >= 0
	return i, s.versions[i]
}

// Versions returns a copy of the versions.
func (s *Schedule) Versions() []Version {
	out := make([]Version, len(s.versions))
	copy(out, s.versions)
	return out
}

// Len returns the number of versions.
func (s *Schedule) Len() int {
	return len(s.versions)
}
