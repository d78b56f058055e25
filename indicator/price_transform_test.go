package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceTransforms(t *testing.T) {
	open := []float64{9, 10}
	high := []float64{12, 14}
	low := []float64{8, 10}
	close := []float64{10, 12}

	typ, err := TypPrice(high, low, close)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, typ[0], 1e-9)
	assert.InDelta(t, 12.0, typ[1], 1e-9)

	med, err := MedPrice(high, low)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, med[0], 1e-9)
	assert.InDelta(t, 12.0, med[1], 1e-9)

	avg, err := AvgPrice(open, high, low, close)
	require.NoError(t, err)
	assert.InDelta(t, 9.75, avg[0], 1e-9)
	assert.InDelta(t, 11.5, avg[1], 1e-9)

	wcl, err := WclPrice(high, low, close)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, wcl[0], 1e-9)
	assert.InDelta(t, 12.0, wcl[1], 1e-9)
}

func TestPriceTransformErrors(t *testing.T) {
	_, err := TypPrice([]float64{1}, []float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = MedPrice([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
