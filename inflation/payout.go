// Package inflation computes the amount minted at the end of every era and its
// split between stakers and the treasury.
//
// The computation is total: every input resolves to a saturated result and
// nothing in this package panics on overflow.
package inflation

import (
	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/common/types"
)

// Payout is the result of an era evaluation.
// Staker never exceeds Maximum.
type Payout[T arith.Amount[T]] struct {
	Phase Phase
	// Staker is the part of the minted amount allocated to validators and nominators.
	Staker T
	// Maximum is the ceiling of the amount minted in the era.
	Maximum T
}

// Treasury returns the part of the maximum payout not allocated to stakers.
func (p Payout[T]) Treasury() T {
	return p.Maximum.SaturatingSub(p.Staker)
}

// Compute returns the payout of era under policy.
//
// totalTokens is only used by policies with the BaseTokens staker base.
func Compute[T arith.Amount[T]](policy *Policy, era types.EraIndex, totalTokens, totalIssuance T) Payout[T] {
	return compute(policy, era, policy.DecayFactor, totalTokens, totalIssuance)
}

// compute selects the phase of era. decay is only called in the growth phase.
func compute[T arith.Amount[T]](
	policy *Policy,
	era types.EraIndex,
	decay func(types.EraIndex) arith.Perbill,
	totalTokens, totalIssuance T,
) Payout[T] {
	switch policy.Phase(era) {
	case PhaseGrowth:
		return growth(policy, decay(era), totalTokens, totalIssuance)
	case PhaseCutover:
		return cutover(policy, totalIssuance)
	}
	return terminal[T]()
}

// ComputeTokens returns the payout of era from total tokens alone. The cutover
// does not apply without issuance, every era is in the growth phase.
func ComputeTokens[T arith.Amount[T]](policy *Policy, era types.EraIndex, totalTokens T) Payout[T] {
	return growthTokens(policy, policy.DecayFactor(era), totalTokens)
}

// grow returns ceil(decay * (base + ceil(bonus * base))).
func grow[T arith.Amount[T]](bonus, decay arith.Perbill, base T) T {
	return arith.MulCeil(decay, base.SaturatingAdd(arith.MulCeil(bonus, base)))
}

func growth[T arith.Amount[T]](policy *Policy, decay arith.Perbill, totalTokens, totalIssuance T) Payout[T] {
	maximum := grow(policy.BonusRate, decay, totalIssuance)
	limit := arith.MulFloor(policy.StakerSplit, maximum)
	staker := limit
	if policy.StakerBase == BaseTokens {
		// the limit wins over the formula
		staker = arith.Min(grow(policy.BonusRate, decay, totalTokens), limit)
	}
	return Payout[T]{Phase: PhaseGrowth, Staker: staker, Maximum: maximum}
}

func growthTokens[T arith.Amount[T]](policy *Policy, decay arith.Perbill, totalTokens T) Payout[T] {
	maximum := grow(policy.BonusRate, decay, totalTokens)
	return Payout[T]{
		Phase:   PhaseGrowth,
		Staker:  arith.MulFloor(policy.StakerSplit, maximum),
		Maximum: maximum,
	}
}

func cutover[T arith.Amount[T]](policy *Policy, totalIssuance T) Payout[T] {
	var zero T
	maximum := zero.FromRef(policy.Cutover.FinalSupply).SaturatingSub(totalIssuance)
	return Payout[T]{
		Phase:   PhaseCutover,
		Staker:  arith.MulFloor(policy.StakerSplit, maximum),
		Maximum: maximum,
	}
}

func terminal[T arith.Amount[T]]() Payout[T] {
	return Payout[T]{Phase: PhaseTerminal}
}
