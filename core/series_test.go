package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeriesAccessors(t *testing.T) {
	s := Series[float64]{1, 2, 3, 4, 5}

	assert.Equal(t, 5, s.Length())
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Values())
	assert.Equal(t, 5.0, s.Last(0))
	assert.Equal(t, 4.0, s.Last(1))
	assert.Equal(t, Series[float64]{4, 5}, s.LastValues(2))
	assert.Equal(t, s, s.LastValues(10))
}

func TestSeriesCrossover(t *testing.T) {
	s := Series[float64]{1, 3}
	ref := Series[float64]{2, 2}

	assert.True(t, s.Crossover(ref))
	assert.False(t, s.Crossunder(ref))
	assert.True(t, s.Cross(ref))
}

func TestSeriesCrossunder(t *testing.T) {
	s := Series[float64]{3, 1}
	ref := Series[float64]{2, 2}

	assert.True(t, s.Crossunder(ref))
	assert.False(t, s.Crossover(ref))
	assert.True(t, s.Cross(ref))
}

func TestSeriesNoCross(t *testing.T) {
	s := Series[float64]{3, 4}
	ref := Series[float64]{2, 2}

	assert.False(t, s.Crossover(ref))
	assert.False(t, s.Crossunder(ref))
	assert.False(t, s.Cross(ref))
}
