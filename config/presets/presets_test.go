package presets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/common/types"
	"github.com/social-network/DAO/config"
	"github.com/social-network/DAO/inflation"
)

func TestOptions(t *testing.T) {
	require.Equal(t, []string{"legacy", "replay", "standard"}, Options())
	_, err := Get("fastnet")
	require.ErrorContains(t, err, "doesn't exist")
}

func TestPresetsProduceValidSchedules(t *testing.T) {
	for _, name := range Options() {
		t.Run(name, func(t *testing.T) {
			conf, err := Get(name)
			require.NoError(t, err)
			_, err = conf.Inflation.Schedule()
			require.NoError(t, err)
		})
	}
}

func TestPresetPayouts(t *testing.T) {
	for _, tc := range []struct {
		preset  string
		phase   inflation.Phase
		staker  uint64
		maximum uint64
	}{
		{"standard", inflation.PhaseCutover, 4_744_444_443, 6_777_777_777},
		{"legacy", inflation.PhaseGrowth, 11, 16},
		{"replay", inflation.PhaseCutover, 4_744_444_443, 6_777_777_777},
	} {
		t.Run(tc.preset, func(t *testing.T) {
			conf, err := Get(tc.preset)
			require.NoError(t, err)
			s, err := conf.Inflation.Schedule()
			require.NoError(t, err)
			ev, err := inflation.NewEvaluator[arith.U64](s, conf.Inflation.Options()...)
			require.NoError(t, err)
			out := ev.Payout(360_000, 77_777_777, 1_000_000_000)
			require.Equal(t, tc.phase, out.Phase)
			require.Equal(t, arith.U64(tc.staker), out.Staker)
			require.Equal(t, arith.U64(tc.maximum), out.Maximum)
		})
	}
}

func TestReplayPresetMatchesMintedEras(t *testing.T) {
	conf, err := Get("replay")
	require.NoError(t, err)
	s, err := conf.Inflation.Schedule()
	require.NoError(t, err)
	ev, err := inflation.NewEvaluator[arith.U128](s, conf.Inflation.Options()...)
	require.NoError(t, err)
	for _, tc := range []struct {
		era     uint32
		staker  uint64
		maximum uint64
	}{
		{10, 77_757_032, 999_733_268},
		{500, 75_875_066, 975_536_568},
		{180_000, 8_839, 113_641},
		{240_000, 0, 0},
	} {
		out := ev.Payout(types.EraIndex(tc.era), arith.U128From64(77_777_777), arith.U128From64(1_000_000_000))
		require.Equal(t, arith.U128From64(tc.staker), out.Staker, "era %d", tc.era)
		require.Equal(t, arith.U128From64(tc.maximum), out.Maximum, "era %d", tc.era)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	conf, err := Get("standard")
	require.NoError(t, err)
	conf.Inflation.Versions[0].Name = "changed"
	again, err := Get("standard")
	require.NoError(t, err)
	require.Equal(t, "standard", again.Inflation.Versions[0].Name)
	require.Equal(t, config.DefaultConfig(), again)
}
