package stress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/darkforge/stress"
	"github.com/KirkDiggler/darkforge/value"
)

func TestLevel(t *testing.T) {
	t.Run("starts unstressed", func(t *testing.T) {
		l := stress.NewLevel()
		assert.Equal(t, uint8(0), l.Get())
		assert.Equal(t, stress.MaxStress, l.Max())
		assert.False(t, l.HasPendingTrauma())
	})

	t.Run("set within range", func(t *testing.T) {
		for v := uint8(0); v <= stress.MaxStress; v++ {
			l := stress.NewLevel()
			got, err := l.Set(v)
			require.NoError(t, err)
			assert.Equal(t, v, got)
			assert.Equal(t, v == stress.MaxStress, l.HasPendingTrauma())
		}
	})

	t.Run("set above max clamps to max", func(t *testing.T) {
		for _, v := range []uint8{11, 12, 100, 255} {
			l := stress.NewLevel()
			got, err := l.Set(v)
			assert.ErrorIs(t, err, value.ErrClampedHigh)
			assert.Equal(t, stress.MaxStress, got)
			assert.True(t, l.HasPendingTrauma())
		}
	})

	t.Run("increment past max clamps to max", func(t *testing.T) {
		for start := uint8(0); start <= stress.MaxStress; start++ {
			l := stress.NewLevel()
			_, err := l.Set(start)
			require.NoError(t, err)

			_, err = l.Increment(stress.MaxStress + 1 - start)
			assert.ErrorIs(t, err, value.ErrClampedHigh)
			assert.Equal(t, stress.MaxStress, l.Get())
		}
	})

	t.Run("nine is not pending", func(t *testing.T) {
		l := stress.NewLevel()
		_, err := l.Set(9)
		require.NoError(t, err)
		assert.False(t, l.HasPendingTrauma())
	})

	t.Run("clear", func(t *testing.T) {
		l := stress.NewLevel()
		_, _ = l.Set(10)
		l.Clear()
		assert.True(t, l.AtMin())
	})
}
