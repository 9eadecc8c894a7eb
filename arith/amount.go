// Package arith implements the saturating integer amounts and the bounded
// fixed-point fractions used to compute era payouts. No operation in this
// package overflows or underflows: results clamp to the representable range.
package arith

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// Amount is the capability required from a token quantity.
//
// Methods are called on values, so the zero value of T must be usable as a
// receiver for FromRef and Max.
type Amount[T any] interface {
	comparable

	SaturatingAdd(T) T
	SaturatingSub(T) T
	SaturatingMul64(uint64) T
	// QuoRem64 divides by a non-zero divisor.
	QuoRem64(uint64) (T, uint64)
	Cmp(T) int
	IsZero() bool

	// Ref converts to the 128-bit reference width, saturating.
	Ref() uint128.Uint128
	// FromRef converts from the 128-bit reference width, saturating.
	FromRef(uint128.Uint128) T
	// Max returns the largest representable amount.
	Max() T

	String() string
}

// FromUint64 converts v into T, saturating.
func FromUint64[T Amount[T]](v uint64) T {
	var zero T
	return zero.FromRef(uint128.From64(v))
}

// Min returns the smaller of a and b.
func Min[T Amount[T]](a, b T) T {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// U64 is a 64-bit amount.
type U64 uint64

func (a U64) SaturatingAdd(b U64) U64 {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return U64(sum)
}

func (a U64) SaturatingSub(b U64) U64 {
	if a < b {
		return 0
	}
	return a - b
}

func (a U64) SaturatingMul64(m uint64) U64 {
	hi, lo := bits.Mul64(uint64(a), m)
	if hi != 0 {
		return math.MaxUint64
	}
	return U64(lo)
}

func (a U64) QuoRem64(d uint64) (U64, uint64) {
	return a / U64(d), uint64(a) % d
}

func (a U64) Cmp(b U64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (a U64) IsZero() bool { return a == 0 }

func (a U64) Ref() uint128.Uint128 { return uint128.From64(uint64(a)) }

func (U64) FromRef(v uint128.Uint128) U64 {
	if v.Hi != 0 {
		return math.MaxUint64
	}
	return U64(v.Lo)
}

func (U64) Max() U64 { return math.MaxUint64 }

func (a U64) String() string { return strconv.FormatUint(uint64(a), 10) }

// U128 is a 128-bit amount, the reference width.
type U128 struct {
	v uint128.Uint128
}

// NewU128 wraps v.
func NewU128(v uint128.Uint128) U128 { return U128{v: v} }

// U128From64 returns v as a 128-bit amount.
func U128From64(v uint64) U128 { return U128{v: uint128.From64(v)} }

func (a U128) SaturatingAdd(b U128) U128 {
	lo, carry := bits.Add64(a.v.Lo, b.v.Lo, 0)
	hi, carry := bits.Add64(a.v.Hi, b.v.Hi, carry)
	if carry != 0 {
		return U128{v: uint128.Max}
	}
	return U128{v: uint128.Uint128{Lo: lo, Hi: hi}}
}

func (a U128) SaturatingSub(b U128) U128 {
	if a.v.Cmp(b.v) < 0 {
		return U128{}
	}
	return U128{v: a.v.Sub(b.v)}
}

func (a U128) SaturatingMul64(m uint64) U128 {
	hiHi, hiLo := bits.Mul64(a.v.Hi, m)
	loHi, loLo := bits.Mul64(a.v.Lo, m)
	hi, carry := bits.Add64(hiLo, loHi, 0)
	if hiHi != 0 || carry != 0 {
		return U128{v: uint128.Max}
	}
	return U128{v: uint128.Uint128{Lo: loLo, Hi: hi}}
}

func (a U128) QuoRem64(d uint64) (U128, uint64) {
	q, r := a.v.QuoRem64(d)
	return U128{v: q}, r
}

func (a U128) Cmp(b U128) int { return a.v.Cmp(b.v) }

func (a U128) IsZero() bool { return a.v.IsZero() }

func (a U128) Ref() uint128.Uint128 { return a.v }

func (U128) FromRef(v uint128.Uint128) U128 { return U128{v: v} }

func (U128) Max() U128 { return U128{v: uint128.Max} }

func (a U128) String() string { return a.v.String() }

// U256 is a 256-bit amount.
type U256 struct {
	v uint256.Int
}

// NewU256 copies v.
func NewU256(v *uint256.Int) U256 { return U256{v: *v} }

// Int returns a copy of the underlying integer.
func (a U256) Int() *uint256.Int {
	v := a.v
	return &v
}

func (a U256) SaturatingAdd(b U256) U256 {
	var out U256
	if _, overflow := out.v.AddOverflow(&a.v, &b.v); overflow {
		out.v.SetAllOne()
	}
	return out
}

func (a U256) SaturatingSub(b U256) U256 {
	var out U256
	if _, underflow := out.v.SubOverflow(&a.v, &b.v); underflow {
		out.v.Clear()
	}
	return out
}

func (a U256) SaturatingMul64(m uint64) U256 {
	var out U256
	if _, overflow := out.v.MulOverflow(&a.v, uint256.NewInt(m)); overflow {
		out.v.SetAllOne()
	}
	return out
}

func (a U256) QuoRem64(d uint64) (U256, uint64) {
	var q, r U256
	q.v.DivMod(&a.v, uint256.NewInt(d), &r.v)
	return q, r.v.Uint64()
}

func (a U256) Cmp(b U256) int { return a.v.Cmp(&b.v) }

func (a U256) IsZero() bool { return a.v.IsZero() }

func (a U256) Ref() uint128.Uint128 {
	if a.v[2] != 0 || a.v[3] != 0 {
		return uint128.Max
	}
	return uint128.Uint128{Lo: a.v[0], Hi: a.v[1]}
}

func (U256) FromRef(v uint128.Uint128) U256 {
	return U256{v: uint256.Int{v.Lo, v.Hi, 0, 0}}
}

func (U256) Max() U256 {
	var out U256
	out.v.SetAllOne()
	return out
}

func (a U256) String() string { return a.v.ToBig().String() }
