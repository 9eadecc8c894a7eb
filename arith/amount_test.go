package arith

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestU64Saturation(t *testing.T) {
	max := U64(math.MaxUint64)
	require.Equal(t, max, max.SaturatingAdd(1))
	require.Equal(t, U64(0), U64(1).SaturatingSub(2))
	require.Equal(t, max, U64(1<<63).SaturatingMul64(2))
	require.Equal(t, U64(1<<63), U64(1<<62).SaturatingMul64(2))
	require.Equal(t, max, U64(0).FromRef(uint128.Max))
	require.Equal(t, U64(7), U64(0).FromRef(uint128.From64(7)))

	q, r := U64(77_777_777).QuoRem64(100)
	require.Equal(t, U64(777_777), q)
	require.Equal(t, uint64(77), r)
}

func TestU128Saturation(t *testing.T) {
	max := U128{}.Max()
	one := U128From64(1)
	require.Equal(t, max, max.SaturatingAdd(one))
	require.True(t, one.SaturatingSub(U128From64(2)).IsZero())
	require.Equal(t, max, max.SaturatingMul64(2))

	carry := U128From64(math.MaxUint64).SaturatingAdd(one)
	require.Equal(t, uint128.Uint128{Lo: 0, Hi: 1}, carry.Ref())

	big := NewU128(uint128.Uint128{Lo: 0, Hi: 1}).SaturatingMul64(1 << 62)
	require.Equal(t, uint128.Uint128{Lo: 0, Hi: 1 << 62}, big.Ref())
	require.Equal(t, max, NewU128(uint128.Uint128{Lo: 0, Hi: 1 << 62}).SaturatingMul64(4))
	require.Equal(t, max, NewU128(uint128.Uint128{Lo: math.MaxUint64, Hi: 0}).SaturatingMul64(math.MaxUint64).SaturatingMul64(2))

	require.Equal(t, -1, one.Cmp(max))
	require.Equal(t, 0, max.Cmp(max))
	require.Equal(t, "340282366920938463463374607431768211455", max.String())
}

func TestU256Saturation(t *testing.T) {
	max := U256{}.Max()
	one := FromUint64[U256](1)
	require.Equal(t, max, max.SaturatingAdd(one))
	require.True(t, one.SaturatingSub(FromUint64[U256](2)).IsZero())
	require.Equal(t, max, max.SaturatingMul64(3))
	require.Equal(t, uint128.Max, max.Ref())

	v := NewU256(uint256.NewInt(1_000))
	require.Equal(t, uint128.From64(1_000), v.Ref())
	q, r := v.QuoRem64(7)
	require.Equal(t, "142", q.String())
	require.Equal(t, uint64(6), r)
	require.Equal(t, uint64(1_000), v.Int().Uint64())
}

func TestMin(t *testing.T) {
	require.Equal(t, U64(3), Min(U64(3), U64(4)))
	require.Equal(t, U128From64(3), Min(U128From64(9), U128From64(3)))
}
