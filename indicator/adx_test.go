package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steadyUptrend advances high, low and close by 1 per bar. Every bar
// produces +DM of 1, -DM of 0 and a true range of 1.5.
func steadyUptrend(n int) (high, low, close []float64) {
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)
	for i := range high {
		high[i] = 10 + float64(i)
		low[i] = 9 + float64(i)
		close[i] = 9.5 + float64(i)
	}
	return high, low, close
}

func TestPlusDIUptrend(t *testing.T) {
	high, low, close := steadyUptrend(12)

	out, err := PlusDI(high, low, close, 3)
	require.NoError(t, err)
	assertWarmup(t, out, 3)
	for i := 3; i < 12; i++ {
		assert.InDelta(t, 100.0/1.5, out[i], 1e-9)
	}
}

func TestMinusDIUptrend(t *testing.T) {
	high, low, close := steadyUptrend(12)

	out, err := MinusDI(high, low, close, 3)
	require.NoError(t, err)
	assertWarmup(t, out, 3)
	for i := 3; i < 12; i++ {
		assert.InDelta(t, 0.0, out[i], 1e-9)
	}
}

func TestDxUptrend(t *testing.T) {
	high, low, close := steadyUptrend(12)

	out, err := Dx(high, low, close, 3)
	require.NoError(t, err)
	assertWarmup(t, out, 3)
	for i := 3; i < 12; i++ {
		assert.InDelta(t, 100.0, out[i], 1e-9)
	}
}

func TestAdxUptrend(t *testing.T) {
	high, low, close := steadyUptrend(12)

	out, err := Adx(high, low, close, 3)
	require.NoError(t, err)
	assertWarmup(t, out, 2*3-1)
	for i := 5; i < 12; i++ {
		assert.InDelta(t, 100.0, out[i], 1e-9)
	}
}

func TestAdxBounds(t *testing.T) {
	high := []float64{12, 14, 13, 16, 15, 18, 17, 20, 19, 22, 21, 24, 23, 26}
	low := []float64{10, 11, 11, 13, 12, 15, 14, 17, 16, 19, 18, 21, 20, 23}
	close := []float64{11, 13, 12, 15, 13, 17, 15, 19, 17, 21, 19, 23, 21, 25}

	out, err := Adx(high, low, close, 3)
	require.NoError(t, err)
	for i := 5; i < len(close); i++ {
		assert.GreaterOrEqual(t, out[i], 0.0)
		assert.LessOrEqual(t, out[i], 100.0)
	}
}

func TestAdxFlat(t *testing.T) {
	// No directional movement and no range: every DX is 0.
	flat := constantSeries(10, 10)

	out, err := Adx(flat, flat, flat, 3)
	require.NoError(t, err)
	for i := 5; i < 10; i++ {
		assert.InDelta(t, 0.0, out[i], 1e-9)
	}
}

func TestAdxErrors(t *testing.T) {
	high, low, close := steadyUptrend(5)

	_, err := Adx(high, low, close, 3)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Adx(high, low, close, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Dx(high[:3], low, close, 3)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
