package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObv(t *testing.T) {
	close := []float64{10, 11, 10.5, 10.5, 12}
	volume := []float64{100, 200, 150, 50, 300}

	out, err := Obv(close, volume)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 300, 150, 150, 450}, out)
}

func TestObvRisingCloses(t *testing.T) {
	close := risingSeries(1, 5)
	volume := []float64{10, 20, 30, 40, 50}

	out, err := Obv(close, volume)
	require.NoError(t, err)

	// Strictly rising closes accumulate every bar's volume.
	sum := 0.0
	for i, v := range volume {
		sum += v
		assert.InDelta(t, sum, out[i], 1e-9)
	}
}

func TestObvErrors(t *testing.T) {
	_, err := Obv([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Obv([]float64{}, []float64{})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestAd(t *testing.T) {
	high := []float64{10, 10}
	low := []float64{8, 8}
	close := []float64{10, 8}
	volume := []float64{5, 7}

	out, err := Ad(high, low, close, volume)
	require.NoError(t, err)

	// Close at the high accumulates full volume, close at the low
	// distributes it.
	assert.InDelta(t, 5.0, out[0], 1e-9)
	assert.InDelta(t, -2.0, out[1], 1e-9)
}

func TestAdZeroRange(t *testing.T) {
	flat := constantSeries(10, 4)
	volume := constantSeries(100, 4)

	out, err := Ad(flat, flat, flat, volume)
	require.NoError(t, err)
	for _, v := range out {
		assert.InDelta(t, 0.0, v, 1e-9)
	}
}

func TestAdOscFlat(t *testing.T) {
	flat := constantSeries(10, 15)
	volume := constantSeries(100, 15)

	out, err := AdOsc(flat, flat, flat, volume, 3, 10)
	require.NoError(t, err)
	assertWarmup(t, out, 9)
	for i := 9; i < 15; i++ {
		assert.InDelta(t, 0.0, out[i], 1e-9)
	}
}

func TestAdOscErrors(t *testing.T) {
	flat := constantSeries(10, 15)
	volume := constantSeries(100, 15)

	_, err := AdOsc(flat, flat, flat, volume, 10, 3)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = AdOsc(flat, flat, flat, volume, 3, 3)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = AdOsc(flat[:5], flat[:5], flat[:5], volume[:5], 3, 10)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestMfiAllPositiveFlow(t *testing.T) {
	high, low, close := steadyUptrend(10)
	volume := constantSeries(100, 10)

	out, err := Mfi(high, low, close, volume, 3)
	require.NoError(t, err)
	assertWarmup(t, out, 3)
	for i := 3; i < 10; i++ {
		assert.InDelta(t, 100.0, out[i], 1e-9)
	}
}

func TestMfiBounds(t *testing.T) {
	high := []float64{12, 14, 13, 16, 15, 18, 17, 20, 19, 22}
	low := []float64{10, 11, 11, 13, 12, 15, 14, 17, 16, 19}
	close := []float64{11, 13, 12, 15, 13, 17, 15, 19, 17, 21}
	volume := []float64{100, 150, 120, 200, 90, 250, 110, 300, 130, 280}

	out, err := Mfi(high, low, close, volume, 3)
	require.NoError(t, err)
	for i := 3; i < len(close); i++ {
		assert.GreaterOrEqual(t, out[i], 0.0)
		assert.LessOrEqual(t, out[i], 100.0)
	}
}

func TestMfiErrors(t *testing.T) {
	high, low, close := steadyUptrend(3)
	volume := constantSeries(100, 3)

	_, err := Mfi(high, low, close, volume, 3)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Mfi(high, low, close, volume[:2], 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
