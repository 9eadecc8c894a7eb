// Package types defines the primitive types shared by the inflation packages.
package types

import (
	"math"
	"strconv"

	"go.uber.org/zap"
)

// EraIndex counts completed eras since genesis.
type EraIndex uint32

const (
	// FirstEra is convenient for initializing the index in a loop.
	FirstEra = EraIndex(0)
	// MaxEra is the last representable era.
	MaxEra = EraIndex(math.MaxUint32)
)

// Uint32 returns the era as uint32.
func (e EraIndex) Uint32() uint32 {
	return uint32(e)
}

// Add returns the era n eras after e, saturating at MaxEra.
func (e EraIndex) Add(n uint32) EraIndex {
	if uint64(e)+uint64(n) > math.MaxUint32 {
		return MaxEra
	}
	return e + EraIndex(n)
}

// Sub returns the era n eras before e, saturating at FirstEra.
func (e EraIndex) Sub(n uint32) EraIndex {
	if uint32(e) < n {
		return FirstEra
	}
	return e - EraIndex(n)
}

func (e EraIndex) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Field returns a log field. Implements the LoggableField interface.
func (e EraIndex) Field() zap.Field { return zap.Uint32("era", uint32(e)) }
