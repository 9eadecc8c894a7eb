package inflation

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/common/types"
)

type expected struct {
	era     types.EraIndex
	staker  uint64
	maximum uint64
}

func checkCompute[T arith.Amount[T]](t *testing.T, policy Policy, tokens, issuance uint64, cases []expected) {
	t.Helper()
	for _, tc := range cases {
		got := Compute(&policy, tc.era,
			arith.FromUint64[T](tokens),
			arith.FromUint64[T](issuance),
		)
		require.Equal(t, arith.FromUint64[T](tc.staker), got.Staker, "staker at era %d", tc.era)
		require.Equal(t, arith.FromUint64[T](tc.maximum), got.Maximum, "maximum at era %d", tc.era)
	}
}

func TestComputeStandard(t *testing.T) {
	cases := []expected{
		{0, 54_457_144, 77_795_921},
		{1, 54_454_422, 77_792_032},
		{2, 54_451_699, 77_788_142},
		{10, 54_429_922, 77_757_032},
		{500, 53_112_560, 75_875_086},
		{1_000, 51_801_173, 74_001_677},
		{10_000, 33_029_515, 47_185_022},
		{60_000, 2_711_058, 3_872_941},
		{100_000, 366_884, 524_120},
		{120_000, 134_965, 192_808},
		{180_000, 6_719, 9_599},
		{240_000, 334, 478},
		{300_000, 16, 24},
		{359_999, 1, 2},
		{360_000, 5_390_000_000, 7_700_000_000},
		{360_001, 0, 0},
		{500_000, 0, 0},
	}
	t.Run("u64", func(t *testing.T) {
		checkCompute[arith.U64](t, StandardPolicy(), 77_777_777, 77_777_777, cases)
	})
	t.Run("u128", func(t *testing.T) {
		checkCompute[arith.U128](t, StandardPolicy(), 77_777_777, 77_777_777, cases)
	})
	t.Run("u256", func(t *testing.T) {
		checkCompute[arith.U256](t, StandardPolicy(), 77_777_777, 77_777_777, cases)
	})
}

func TestComputeReplay(t *testing.T) {
	policy := ReplayPolicy()
	t.Run("issuance equals tokens", func(t *testing.T) {
		checkCompute[arith.U128](t, policy, 77_777_777, 77_777_777, []expected{
			{0, 54_457_144, 77_795_921},
			{1, 54_454_422, 77_792_032},
			{2, 54_451_699, 77_788_142},
			{3, 54_448_977, 77_784_253},
			{4, 54_446_254, 77_780_363},
			{5, 54_443_531, 77_776_474},
			{6, 54_440_809, 77_772_585},
			{7, 54_438_087, 77_768_697},
			{8, 54_435_365, 77_764_808},
			{9, 54_432_644, 77_760_920},
			{10, 54_429_922, 77_757_032},
			{500, 53_112_546, 75_875_066},
			{1_000, 51_801_147, 74_001_639},
			{10_000, 33_029_301, 47_184_716},
			{60_000, 2_710_540, 3_872_201},
			{100_000, 366_342, 523_347},
			{120_000, 134_423, 192_033},
			{180_000, 6_187, 8_839},
			{240_000, 0, 0},
			{300_000, 0, 0},
			{360_000, 5_390_000_000, 7_700_000_000},
			{500_000, 0, 0},
		})
	})
	t.Run("issuance above tokens", func(t *testing.T) {
		checkCompute[arith.U128](t, policy, 77_777_777, 1_000_000_000, []expected{
			{0, 77_795_921, 1_000_233_278},
			{1, 77_792_032, 1_000_183_267},
			{2, 77_788_142, 1_000_133_257},
			{3, 77_784_253, 1_000_083_250},
			{4, 77_780_363, 1_000_033_245},
			{5, 77_776_474, 999_983_242},
			{6, 77_772_585, 999_933_243},
			{7, 77_768_697, 999_883_245},
			{8, 77_764_808, 999_833_250},
			{9, 77_760_920, 999_783_258},
			{10, 77_757_032, 999_733_268},
			{500, 75_875_066, 975_536_568},
			{1_000, 74_001_639, 951_449_642},
			{10_000, 47_184_716, 606_660_630},
			{60_000, 3_872_201, 49_785_433},
			{100_000, 523_347, 6_728_747},
			{120_000, 192_033, 2_468_995},
			{180_000, 8_839, 113_641},
			{240_000, 0, 0},
			{300_000, 0, 0},
			{360_000, 4_744_444_443, 6_777_777_777},
			{500_000, 0, 0},
		})
	})
	t.Run("issuance above final supply", func(t *testing.T) {
		checkCompute[arith.U128](t, policy, 77_777_777, 10_000_000_000, []expected{
			{0, 77_795_921, 10_002_332_780},
			{1, 77_792_032, 10_001_832_664},
			{2, 77_788_142, 10_001_332_567},
			{3, 77_784_253, 10_000_832_491},
			{4, 77_780_363, 10_000_332_444},
			{5, 77_776_474, 9_999_832_417},
			{6, 77_772_585, 9_999_332_421},
			{7, 77_768_697, 9_998_832_444},
			{8, 77_764_808, 9_998_332_498},
			{9, 77_760_920, 9_997_832_571},
			{10, 77_757_032, 9_997_332_674},
			{500, 75_875_066, 9_755_365_672},
			{1_000, 74_001_639, 9_514_496_416},
			{10_000, 47_184_716, 6_066_606_296},
			{60_000, 3_872_201, 497_854_322},
			{100_000, 523_347, 67_287_464},
			{120_000, 192_033, 24_689_949},
			{180_000, 8_839, 1_136_406},
			{240_000, 0, 0},
			{300_000, 0, 0},
			{360_000, 0, 0},
			{500_000, 0, 0},
		})
	})
	t.Run("limit wins", func(t *testing.T) {
		checkCompute[arith.U64](t, policy, 1_000_000_000, 77_777_777, []expected{
			{0, 54_457_144, 77_795_921},
		})
	})
}

func TestComputePhases(t *testing.T) {
	policy := StandardPolicy()
	require.Equal(t, PhaseGrowth, policy.Phase(0))
	require.Equal(t, PhaseGrowth, policy.Phase(359_999))
	require.Equal(t, PhaseCutover, policy.Phase(360_000))
	require.Equal(t, PhaseTerminal, policy.Phase(360_001))
	require.Equal(t, PhaseTerminal, policy.Phase(types.MaxEra))

	legacy := LegacyPolicy()
	require.Equal(t, PhaseGrowth, legacy.Phase(360_000))
	require.Equal(t, PhaseGrowth, legacy.Phase(types.MaxEra))

	for _, era := range []types.EraIndex{0, 359_999, 360_000, 360_001} {
		got := Compute(&policy, era, arith.U64(1), arith.U64(1))
		require.Equal(t, policy.Phase(era), got.Phase)
	}
}

func TestCutoverExact(t *testing.T) {
	policy := StandardPolicy()
	target := uint64(7_777_777_777)
	for _, issuance := range []uint64{0, 1, 77_777_777, target - 1, target, target + 1, math.MaxUint64} {
		got := Compute(&policy, 360_000, arith.U64(0), arith.U64(issuance))
		want := uint64(0)
		if issuance < target {
			want = target - issuance
		}
		require.Equal(t, arith.U64(want), got.Maximum, "issuance %d", issuance)
		require.Equal(t, arith.MulFloor(policy.StakerSplit, got.Maximum), got.Staker)
		require.Equal(t, got.Maximum-got.Staker, got.Treasury())
	}
}

func TestCutoverFinalSupplyWiderThanAmount(t *testing.T) {
	policy := StandardPolicy()
	policy.Cutover.FinalSupply = uint128.Max
	got := Compute(&policy, 360_000, arith.U64(0), arith.U64(10))
	require.Equal(t, arith.U64(math.MaxUint64-10), got.Maximum)
}

func TestTerminalAbsorbs(t *testing.T) {
	policy := StandardPolicy()
	f := fuzz.New().NilChance(0)
	for i := 0; i < 1000; i++ {
		var (
			offset           uint32
			tokens, issuance uint64
		)
		f.Fuzz(&offset)
		f.Fuzz(&tokens)
		f.Fuzz(&issuance)
		era := policy.Cutover.Era.Add(1).Add(offset)
		got := Compute(&policy, era, arith.U64(tokens), arith.U64(issuance))
		require.Equal(t, Payout[arith.U64]{Phase: PhaseTerminal}, got)
	}
}

func TestStakerLimit(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for _, base := range []StakerBase{BaseIssuance, BaseTokens} {
		policy := StandardPolicy()
		policy.StakerBase = base
		for i := 0; i < 2000; i++ {
			var (
				era              uint32
				tokens, issuance uint64
			)
			f.Fuzz(&era)
			f.Fuzz(&tokens)
			f.Fuzz(&issuance)
			e := types.EraIndex(era % uint32(policy.Cutover.Era))
			got := Compute(&policy, e, arith.U64(tokens), arith.U64(issuance))
			require.LessOrEqual(t, uint64(got.Staker), uint64(arith.MulFloor(policy.StakerSplit, got.Maximum)))
			require.LessOrEqual(t, uint64(got.Staker), uint64(got.Maximum))
		}
	}
}

func TestMaximumNonIncreasing(t *testing.T) {
	policy := StandardPolicy()
	for _, issuance := range []uint64{77_777_777, 1_000_000_000_000, math.MaxUint64} {
		prev := Compute(&policy, 0, arith.U64(0), arith.U64(issuance)).Maximum
		for era := types.EraIndex(1); era < policy.Cutover.Era; era += 97 {
			cur := Compute(&policy, era, arith.U64(0), arith.U64(issuance)).Maximum
			require.LessOrEqual(t, uint64(cur), uint64(prev), "era %d issuance %d", era, issuance)
			prev = cur
		}
	}
}

func noPanics[T arith.Amount[T]](t *testing.T, policy Policy, amounts []T) {
	t.Helper()
	limit := policy.Cutover.Era * 2
	for era := types.EraIndex(0); era <= limit; era += 1_009 {
		for _, tokens := range amounts {
			for _, issuance := range amounts {
				require.NotPanics(t, func() {
					out := Compute(&policy, era, tokens, issuance)
					require.LessOrEqual(t, out.Staker.Cmp(out.Maximum), 0)
					ComputeTokens(&policy, era, tokens)
				})
			}
		}
	}
}

func TestNoPanics(t *testing.T) {
	for _, base := range []StakerBase{BaseIssuance, BaseTokens} {
		policy := StandardPolicy()
		policy.StakerBase = base
		t.Run(string(base), func(t *testing.T) {
			noPanics(t, policy, []arith.U64{0, 1, 77_777_777, math.MaxUint64 / 2, math.MaxUint64})
			noPanics(t, policy, []arith.U128{
				arith.U128{},
				arith.U128From64(math.MaxUint64),
				arith.U128{}.Max(),
			})
			noPanics(t, policy, []arith.U256{
				arith.U256{},
				arith.FromUint64[arith.U256](77_777_777),
				arith.U256{}.Max(),
			})
		})
	}
}

func TestComputeSaturatesAtMax(t *testing.T) {
	policy := StandardPolicy()
	got := Compute(&policy, 0, arith.U64(0), arith.U64(math.MaxUint64))
	require.Equal(t, arith.U64(math.MaxUint64), got.Maximum)
	require.Equal(t, arith.U64(12_912_720_851_596_686_130), got.Staker)
}

func TestComputeTokensOnly(t *testing.T) {
	policy := StandardPolicy()
	for _, tc := range []struct {
		era     types.EraIndex
		tokens  uint64
		staker  uint64
		maximum uint64
	}{
		{0, 77_777_777, 54_457_144, 77_795_921},
		{360_000, 77_777_777, 1, 2},
		{400_000, 77_777_777, 0, 1},
		{0, 1_000_000_000_000_000, 700_163_294_600_000, 1_000_233_278_000_000},
		{360_000, 1_000_000_000_000_000, 10_502_450, 15_003_500},
		{400_000, 1_000_000_000_000_000, 1_400_326, 2_000_467},
	} {
		got := ComputeTokens(&policy, tc.era, arith.U64(tc.tokens))
		require.Equal(t, PhaseGrowth, got.Phase)
		require.Equal(t, arith.U64(tc.staker), got.Staker, "era %d", tc.era)
		require.Equal(t, arith.U64(tc.maximum), got.Maximum, "era %d", tc.era)
	}
}
