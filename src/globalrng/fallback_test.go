package globalrng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lost-woods/rngfacade/src/globalrng"
	"github.com/lost-woods/rngfacade/src/source"
)

func TestFallbackOnly_DrawsWithoutInstall(t *testing.T) {
	f := globalrng.NewFallbackOnly()

	for i := 0; i < 3; i++ {
		_, err := f.NextU32()
		require.NoError(t, err)
	}

	_, err := f.NextU64()
	require.NoError(t, err)

	buf := make([]byte, 64)
	require.NoError(t, f.TryFillBytes(buf))
	require.NotEqual(t, make([]byte, 64), buf)
}

func TestFallbackOnly_InstallKeepsHostSource(t *testing.T) {
	f := globalrng.NewFallbackOnly()

	require.ErrorIs(t, f.Install(source.NewSeeded(1, 2)), globalrng.ErrAlreadyInitialized)
	require.ErrorIs(t, f.Install(nil), globalrng.ErrNilGenerator)

	// draws never come from the discarded generator
	seeded := source.NewSeeded(1, 2)
	matches := 0
	for i := 0; i < 8; i++ {
		v, err := f.NextU64()
		require.NoError(t, err)
		if v == seeded.Uint64() {
			matches++
		}
	}
	require.Less(t, matches, 8)
}

func TestFallbackOnly_Stats(t *testing.T) {
	f := globalrng.NewFallbackOnly()
	_, _ = f.NextU32()

	st := f.Stats()
	require.Equal(t, "fallback-only", st.Mode)
	require.True(t, st.Initialized)
	require.Zero(t, st.Draws)
	require.False(t, st.Poisoned)
}

func TestNewReader_AllOrNothing(t *testing.T) {
	s := globalrng.NewSlot(globalrng.NewMutexStrategy())
	r := globalrng.NewReader(s)

	n, err := r.Read(make([]byte, 4))
	require.ErrorIs(t, err, globalrng.ErrNotInitialized)
	require.Zero(t, n)

	require.NoError(t, s.Install(source.NewSeeded(5, 6)))
	buf := make([]byte, 13)
	n, err = r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 13, n)

	want := make([]byte, 13)
	_, _ = source.NewSeeded(5, 6).Read(want)
	require.Equal(t, want, buf)
}
