package inflation

import (
	"errors"
	"fmt"

	"lukechampine.com/uint128"

	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/common/types"
)

var (
	// ErrInvalidFraction is returned when a policy fraction exceeds one.
	ErrInvalidFraction = errors.New("fraction exceeds one")
	// ErrUnknownStakerBase is returned for an unsupported staker base.
	ErrUnknownStakerBase = errors.New("unknown staker base")
	// ErrUnknownDecayPow is returned for an unsupported decay power method.
	ErrUnknownDecayPow = errors.New("unknown decay power")
)

// StakerBase selects the quantity the uncapped staker payout is computed from.
type StakerBase string

const (
	// BaseIssuance computes the staker payout from total issuance, the same base as
	// the maximum payout. The staker payout is then exactly the split of the maximum.
	BaseIssuance StakerBase = "issuance"
	// BaseTokens computes the uncapped staker payout from total tokens and clamps it
	// to the split of the issuance based maximum. Kept to recompute eras that were
	// minted under that rule.
	BaseTokens StakerBase = "tokens"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *StakerBase) UnmarshalText(text []byte) error {
	v := StakerBase(text)
	if v == "" {
		v = BaseIssuance
	}
	if err := v.validate(); err != nil {
		return err
	}
	*b = v
	return nil
}

func (b StakerBase) validate() error {
	switch b {
	case BaseIssuance, BaseTokens:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownStakerBase, string(b))
}

// DecayPow selects how the decay rate is raised to the era index.
type DecayPow string

const (
	// PowBinary uses square-and-multiply at high precision and rounds once.
	PowBinary DecayPow = "binary"
	// PowLinear multiplies once per era and truncates to billionths at every
	// step, the way eras were minted before PowBinary. The factor reaches zero
	// long before the cutover.
	PowLinear DecayPow = "linear"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DecayPow) UnmarshalText(text []byte) error {
	v := DecayPow(text)
	if v == "" {
		v = PowBinary
	}
	if err := v.validate(); err != nil {
		return err
	}
	*d = v
	return nil
}

func (d DecayPow) validate() error {
	switch d {
	case PowBinary, PowLinear:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownDecayPow, string(d))
}

// Cutover configures the one time final mint.
type Cutover struct {
	Enabled bool           `mapstructure:"enabled"`
	Era     types.EraIndex `mapstructure:"era"`
	// FinalSupply is the total issuance targeted by the final mint.
	FinalSupply uint128.Uint128 `mapstructure:"final-supply"`
}

// Policy holds the constants of an inflation schedule.
type Policy struct {
	// BonusRate is added to the base once before the decay is applied.
	BonusRate arith.Perbill `mapstructure:"bonus-rate"`
	// DecayRate is raised to the era index.
	DecayRate arith.Perbill `mapstructure:"decay-rate"`
	// StakerSplit is the share of the maximum payout that may go to stakers.
	StakerSplit arith.Percent `mapstructure:"staker-split"`
	StakerBase  StakerBase    `mapstructure:"staker-base"`
	DecayPow    DecayPow      `mapstructure:"decay-pow"`
	Cutover     Cutover       `mapstructure:"cutover"`
}

// StandardPolicy is the schedule observed on the network: 0.0233278% bonus,
// 0.99995 decay per era, 70% to stakers and a final mint at era 360000 up to
// 7,777,777,777.
func StandardPolicy() Policy {
	return Policy{
		BonusRate:   arith.PerbillFromRational(233_278, 1_000_000_000),
		DecayRate:   arith.PerbillFromRational(999_950_000, 1_000_000_000),
		StakerSplit: arith.PercentFromRational(7, 10),
		StakerBase:  BaseIssuance,
		DecayPow:    PowBinary,
		Cutover: Cutover{
			Enabled:     true,
			Era:         360_000,
			FinalSupply: uint128.From64(7_777_777_777),
		},
	}
}

// LegacyPolicy is the schedule that preceded the supply cap: the same rates
// without a cutover.
func LegacyPolicy() Policy {
	p := StandardPolicy()
	p.Cutover = Cutover{}
	return p
}

// ReplayPolicy recomputes eras minted before the staker payout was derived from
// issuance: the staker payout comes from total tokens and the decay factor is
// truncated at every era.
func ReplayPolicy() Policy {
	p := StandardPolicy()
	p.StakerBase = BaseTokens
	p.DecayPow = PowLinear
	return p
}

// Validate checks that the policy fractions are within range.
func (p *Policy) Validate() error {
	if !p.BonusRate.Valid() {
		return fmt.Errorf("%w: bonus rate %d parts", ErrInvalidFraction, p.BonusRate.Parts())
	}
	if !p.DecayRate.Valid() {
		return fmt.Errorf("%w: decay rate %d parts", ErrInvalidFraction, p.DecayRate.Parts())
	}
	if !p.StakerSplit.Valid() {
		return fmt.Errorf("%w: staker split %d parts", ErrInvalidFraction, p.StakerSplit.Parts())
	}
	if p.StakerBase == "" {
		p.StakerBase = BaseIssuance
	}
	if err := p.StakerBase.validate(); err != nil {
		return err
	}
	if p.DecayPow == "" {
		p.DecayPow = PowBinary
	}
	return p.DecayPow.validate()
}

// Phase returns the phase of the schedule for era.
func (p *Policy) Phase(era types.EraIndex) Phase {
	switch {
	case !p.Cutover.Enabled || era < p.Cutover.Era:
		return PhaseGrowth
	case era == p.Cutover.Era:
		return PhaseCutover
	}
	return PhaseTerminal
}

// DecayFactor returns DecayRate^era.
func (p *Policy) DecayFactor(era types.EraIndex) arith.Perbill {
	if p.DecayPow == PowLinear {
		return p.DecayRate.SaturatingPowLinear(uint64(era))
	}
	return p.DecayRate.SaturatingPow(uint64(era))
}

// nextDecay returns the factor of the era after the one with factor prev.
// Only PowLinear factors can be stepped, ok is false otherwise.
func (p *Policy) nextDecay(prev arith.Perbill) (arith.Perbill, bool) {
	if p.DecayPow != PowLinear {
		return 0, false
	}
	if p.DecayRate.IsOne() || !p.DecayRate.Valid() {
		return prev, true
	}
	return prev.Mul(p.DecayRate), true
}
