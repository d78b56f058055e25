package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatBars repeats one bar n times: high 12, low 10, close 11. The true
// range of every bar after the first is 2.
func flatBars(n int) (high, low, close []float64) {
	return constantSeries(12, n), constantSeries(10, n), constantSeries(11, n)
}

func TestTRange(t *testing.T) {
	high := []float64{10, 12, 11}
	low := []float64{8, 9, 10.5}
	close := []float64{9, 11, 10.8}

	out, err := TRange(high, low, close)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.True(t, IsUndefined(out[0]))
	assert.InDelta(t, 3.0, out[1], 1e-9)
	assert.InDelta(t, 0.5, out[2], 1e-9)
}

func TestTRangeGap(t *testing.T) {
	// An opening gap above the prior close dominates the high-low span.
	high := []float64{10, 15}
	low := []float64{8, 14}
	close := []float64{9, 14.5}

	out, err := TRange(high, low, close)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, out[1], 1e-9)
}

func TestTRangeErrors(t *testing.T) {
	_, err := TRange([]float64{1, 2}, []float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = TRange([]float64{1}, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestAtr(t *testing.T) {
	high, low, close := flatBars(8)

	out, err := Atr(high, low, close, 3)
	require.NoError(t, err)
	assertWarmup(t, out, 3)
	for i := 3; i < 8; i++ {
		assert.InDelta(t, 2.0, out[i], 1e-9)
	}
}

func TestAtrErrors(t *testing.T) {
	high, low, close := flatBars(3)
	_, err := Atr(high, low, close, 3)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Atr(high, low, close, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNatr(t *testing.T) {
	high, low, close := flatBars(8)

	out, err := Natr(high, low, close, 3)
	require.NoError(t, err)
	assertWarmup(t, out, 3)
	for i := 3; i < 8; i++ {
		assert.InDelta(t, 100*2.0/11.0, out[i], 1e-9)
	}
}

func TestNatrZeroClose(t *testing.T) {
	high, low, close := flatBars(8)
	close[5] = 0

	out, err := Natr(high, low, close, 3)
	require.NoError(t, err)
	assert.True(t, IsUndefined(out[5]))
	assert.False(t, IsUndefined(out[6]))
}
