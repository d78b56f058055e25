package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantSeries(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func risingSeries(start float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

// assertWarmup checks that exactly the first n positions are undefined.
func assertWarmup(t *testing.T, values []float64, n int) {
	t.Helper()
	for i, v := range values {
		if i < n {
			assert.True(t, IsUndefined(v), "index %d should be undefined", i)
		} else {
			assert.False(t, IsUndefined(v), "index %d should be defined", i)
		}
	}
}

func TestSma(t *testing.T) {
	out, err := Sma(constantSeries(10, 5), 3)
	require.NoError(t, err)
	require.Len(t, out, 5)
	assertWarmup(t, out, 2)
	for i := 2; i < 5; i++ {
		assert.InDelta(t, 10.0, out[i], 1e-9)
	}

	values := append(constantSeries(10, 10), 11)
	out, err = Sma(values, 5)
	require.NoError(t, err)
	assert.InDelta(t, 10.2, out[len(out)-1], 1e-9)
}

func TestSmaErrors(t *testing.T) {
	_, err := Sma([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Sma([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestEma(t *testing.T) {
	out, err := Ema([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assertWarmup(t, out, 2)
	assert.InDelta(t, 2.0, out[2], 1e-9)
	assert.InDelta(t, 3.0, out[3], 1e-9)
	assert.InDelta(t, 4.0, out[4], 1e-9)
}

func TestEmaSeededWithSma(t *testing.T) {
	values := []float64{3, 8, 1, 9, 4, 6, 2, 7}
	period := 4

	ema, err := Ema(values, period)
	require.NoError(t, err)
	sma, err := Sma(values, period)
	require.NoError(t, err)

	assert.InDelta(t, sma[period-1], ema[period-1], 1e-9)
}

func TestWma(t *testing.T) {
	out, err := Wma([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assertWarmup(t, out, 2)
	assert.InDelta(t, 14.0/6.0, out[2], 1e-9)
	assert.InDelta(t, 20.0/6.0, out[3], 1e-9)
	assert.InDelta(t, 26.0/6.0, out[4], 1e-9)
}

func TestDemaConstant(t *testing.T) {
	out, err := Dema(constantSeries(7, 10), 3)
	require.NoError(t, err)
	assertWarmup(t, out, 4)
	for i := 4; i < 10; i++ {
		assert.InDelta(t, 7.0, out[i], 1e-9)
	}
}

func TestTemaConstant(t *testing.T) {
	out, err := Tema(constantSeries(7, 12), 3)
	require.NoError(t, err)
	assertWarmup(t, out, 6)
	for i := 6; i < 12; i++ {
		assert.InDelta(t, 7.0, out[i], 1e-9)
	}
}

func TestKamaConstant(t *testing.T) {
	out, err := Kama(constantSeries(42, 10), 3)
	require.NoError(t, err)
	assertWarmup(t, out, 3)
	for i := 3; i < 10; i++ {
		assert.InDelta(t, 42.0, out[i], 1e-9)
	}
}

func TestKamaTrending(t *testing.T) {
	values := risingSeries(1, 10)
	out, err := Kama(values, 3)
	require.NoError(t, err)
	assertWarmup(t, out, 3)

	// The adaptive average trails a rising series from below, increasing
	// at each step.
	for i := 3; i < 10; i++ {
		assert.Less(t, out[i], values[i])
		if i > 3 {
			assert.Greater(t, out[i], out[i-1])
		}
	}
}

func TestKamaErrors(t *testing.T) {
	_, err := Kama(constantSeries(1, 3), 3)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Kama(constantSeries(1, 10), 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestMaDispatch(t *testing.T) {
	values := []float64{3, 8, 1, 9, 4, 6, 2, 7, 5, 8, 3, 9}

	cases := []struct {
		maType MaType
		direct func([]float64, int) ([]float64, error)
	}{
		{TypeSMA, Sma},
		{TypeEMA, Ema},
		{TypeWMA, Wma},
		{TypeDEMA, Dema},
		{TypeTEMA, Tema},
		{TypeKAMA, Kama},
	}

	for _, tc := range cases {
		viaMa, err := Ma(values, 3, tc.maType)
		require.NoError(t, err)
		direct, err := tc.direct(values, 3)
		require.NoError(t, err)
		require.Len(t, viaMa, len(direct))
		for i := range viaMa {
			if IsUndefined(direct[i]) {
				assert.True(t, IsUndefined(viaMa[i]))
				continue
			}
			assert.InDelta(t, direct[i], viaMa[i], 1e-9)
		}
	}
}

func TestMaUnsupportedType(t *testing.T) {
	_, err := Ma([]float64{1, 2, 3}, 2, MaType(5))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
