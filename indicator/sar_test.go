package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSarUptrend(t *testing.T) {
	high := risingSeries(10, 8)
	low := risingSeries(9, 8)

	out, err := Sar(high, low, 0.02, 0.2)
	require.NoError(t, err)
	require.Len(t, out, 8)

	assert.True(t, IsUndefined(out[0]))
	assert.InDelta(t, low[0], out[1], 1e-9)

	// The stop trails a rising market from below.
	for i := 1; i < 8; i++ {
		assert.False(t, IsUndefined(out[i]))
		assert.LessOrEqual(t, out[i], low[i])
		if i > 1 {
			assert.GreaterOrEqual(t, out[i], out[i-1])
		}
	}
}

func TestSarDowntrend(t *testing.T) {
	high := make([]float64, 8)
	low := make([]float64, 8)
	for i := range high {
		high[i] = 15 - float64(i)
		low[i] = 14 - float64(i)
	}

	out, err := Sar(high, low, 0.02, 0.2)
	require.NoError(t, err)

	assert.True(t, IsUndefined(out[0]))
	assert.InDelta(t, high[0], out[1], 1e-9)

	for i := 1; i < 8; i++ {
		assert.GreaterOrEqual(t, out[i], high[i])
		if i > 1 {
			assert.LessOrEqual(t, out[i], out[i-1])
		}
	}
}

func TestSarReversal(t *testing.T) {
	// Five rising bars, then a collapse through the stop.
	high := []float64{10, 11, 12, 13, 14, 9}
	low := []float64{9, 10, 11, 12, 13, 5}

	out, err := Sar(high, low, 0.02, 0.2)
	require.NoError(t, err)

	// Before the break the stop sits below the lows.
	for i := 1; i < 5; i++ {
		assert.LessOrEqual(t, out[i], low[i])
	}

	// On reversal the stop restarts at the old trend's extreme, above the
	// recent highs.
	assert.GreaterOrEqual(t, out[5], high[4])
}

func TestSarErrors(t *testing.T) {
	high := []float64{10, 11}
	low := []float64{9, 10}

	_, err := Sar(high, low, 0, 0.2)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Sar(high, low, 0.02, -1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Sar(high[:1], low[:1], 0.02, 0.2)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Sar(high, low[:1], 0.02, 0.2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
