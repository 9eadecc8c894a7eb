package arith

import (
	"math/bits"
)

const (
	perbillAccuracy = 1_000_000_000
	percentAccuracy = 100

	// powScale is the working precision of SaturatingPow. Every accuracy must divide it.
	powScale = 1_000_000_000_000_000_000
)

// Fraction is a value in [0, 1] with a fixed number of decimal digits.
// Accuracy never exceeds 10^9, so Parts()*Parts() fits in 64 bits.
type Fraction interface {
	Parts() uint64
	Accuracy() uint64
}

// Perbill is a fraction in parts per billion.
type Perbill uint32

// PerbillFromParts returns parts/10^9, saturating at one.
func PerbillFromParts(parts uint32) Perbill {
	if parts > perbillAccuracy {
		return perbillAccuracy
	}
	return Perbill(parts)
}

// PerbillFromRational returns p/q rounded down. A zero q is treated as one and
// p greater than q saturates to one.
func PerbillFromRational(p, q uint64) Perbill {
	return Perbill(fromRational(p, q, perbillAccuracy))
}

// PerbillOne is the unit fraction.
func PerbillOne() Perbill { return perbillAccuracy }

func (f Perbill) Parts() uint64    { return uint64(f) }
func (f Perbill) Accuracy() uint64 { return perbillAccuracy }
func (f Perbill) IsZero() bool     { return f == 0 }
func (f Perbill) IsOne() bool      { return f == perbillAccuracy }

// Valid reports whether f does not exceed one.
func (f Perbill) Valid() bool { return f <= perbillAccuracy }

// SaturatingPow returns f^exp, clamping toward zero.
func (f Perbill) SaturatingPow(exp uint64) Perbill {
	return Perbill(saturatingPow(f.Parts(), perbillAccuracy, exp))
}

// Mul returns f*g truncated to billionths.
func (f Perbill) Mul(g Perbill) Perbill {
	a, b := min(f.Parts(), perbillAccuracy), min(g.Parts(), perbillAccuracy)
	return Perbill(a * b / perbillAccuracy)
}

// SaturatingPowLinear returns f^exp by exp successive multiplications, each
// truncated to billionths. It stops as soon as the product reaches zero.
// Results are lower than SaturatingPow and reach zero after a bounded number of
// steps for every f below one.
func (f Perbill) SaturatingPowLinear(exp uint64) Perbill {
	result := PerbillOne()
	if f.IsOne() || !f.Valid() {
		return result
	}
	for ; exp > 0 && !result.IsZero(); exp-- {
		result = result.Mul(f)
	}
	return result
}

// Percent is a fraction in hundredths.
type Percent uint8

// PercentFromParts returns parts/100, saturating at one.
func PercentFromParts(parts uint8) Percent {
	if parts > percentAccuracy {
		return percentAccuracy
	}
	return Percent(parts)
}

// PercentFromRational returns p/q rounded down. A zero q is treated as one and
// p greater than q saturates to one.
func PercentFromRational(p, q uint64) Percent {
	return Percent(fromRational(p, q, percentAccuracy))
}

func (f Percent) Parts() uint64    { return uint64(f) }
func (f Percent) Accuracy() uint64 { return percentAccuracy }
func (f Percent) IsZero() bool     { return f == 0 }
func (f Percent) IsOne() bool      { return f == percentAccuracy }

// Valid reports whether f does not exceed one.
func (f Percent) Valid() bool { return f <= percentAccuracy }

func fromRational(p, q, acc uint64) uint64 {
	if q == 0 {
		q = 1
	}
	if p > q {
		p = q
	}
	hi, lo := bits.Mul64(p, acc)
	// hi < q because p <= q and acc fits in 64 bits.
	out, _ := bits.Div64(hi, lo, q)
	return out
}

// MulFloor returns floor(f * x).
func MulFloor[T Amount[T]](f Fraction, x T) T {
	return mul(f, x, false)
}

// MulCeil returns ceil(f * x).
func MulCeil[T Amount[T]](f Fraction, x T) T {
	return mul(f, x, true)
}

// mul splits x into q*acc + r so that the full product is never materialized:
// f*x = q*parts + r*parts/acc, where only the last term needs rounding.
func mul[T Amount[T]](f Fraction, x T, up bool) T {
	acc, parts := f.Accuracy(), f.Parts()
	if parts > acc {
		parts = acc
	}
	q, r := x.QuoRem64(acc)
	rem := r * parts
	add := rem / acc
	if up && rem%acc != 0 {
		add++
	}
	return q.SaturatingMul64(parts).SaturatingAdd(FromUint64[T](add))
}

// saturatingPow computes (parts/acc)^exp by square-and-multiply at powScale
// precision and truncates the result back to acc.
func saturatingPow(parts, acc, exp uint64) uint64 {
	if parts > acc {
		parts = acc
	}
	switch {
	case exp == 0, parts == acc:
		return acc
	case parts == 0:
		return 0
	}
	step := uint64(powScale) / acc
	base := parts * step
	result := uint64(powScale)
	for exp > 0 {
		if exp&1 == 1 {
			result = mulScaled(result, base)
			if result == 0 {
				return 0
			}
		}
		exp >>= 1
		if exp > 0 {
			base = mulScaled(base, base)
		}
	}
	return result / step
}

// mulScaled returns floor(a*b/powScale) for a, b <= powScale.
func mulScaled(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// a*b <= 10^36, so hi < powScale and Div64 cannot panic.
	q, _ := bits.Div64(hi, lo, powScale)
	return q
}
