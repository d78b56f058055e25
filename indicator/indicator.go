// Package indicator implements batch technical-analysis computations over
// ordered price and volume series.
//
// Every function is a pure transform: it takes one or more equal-length
// input slices plus numeric parameters, validates them, and returns output
// series of the same length as the input. Positions inside an indicator's
// warm-up span hold the undefined sentinel (see Undefined); candlestick
// recognizers return 0 instead, since "no signal" is a legitimate value for
// them. No state is shared between calls, so any number of computations may
// run concurrently over the same read-only inputs.
package indicator

import "math"

// MaType selects the moving average used by indicators that accept one.
// The numeric codes follow the TA-Lib MA_Type values.
type MaType int

// Moving average type constants
const (
	TypeSMA  MaType = 0 // Simple Moving Average
	TypeEMA  MaType = 1 // Exponential Moving Average
	TypeWMA  MaType = 2 // Weighted Moving Average
	TypeDEMA MaType = 3 // Double Exponential Moving Average
	TypeTEMA MaType = 4 // Triple Exponential Moving Average
	TypeKAMA MaType = 6 // Kaufman Adaptive Moving Average
)

// Undefined returns the warm-up sentinel. Indicator outputs hold it at every
// index before enough trailing history exists. Guarded divisions never
// produce it as a legitimate value, so the sentinel is unambiguous.
func Undefined() float64 { return math.NaN() }

// IsUndefined reports whether v is the warm-up sentinel.
func IsUndefined(v float64) bool { return math.IsNaN(v) }

// Ma calculates a moving average of the specified type.
func Ma(values []float64, period int, maType MaType) ([]float64, error) {
	switch maType {
	case TypeSMA:
		return Sma(values, period)
	case TypeEMA:
		return Ema(values, period)
	case TypeWMA:
		return Wma(values, period)
	case TypeDEMA:
		return Dema(values, period)
	case TypeTEMA:
		return Tema(values, period)
	case TypeKAMA:
		return Kama(values, period)
	default:
		return nil, errInvalidParameterf("unsupported moving average type %d", int(maType))
	}
}

// maLookback returns the warm-up length of a moving average of the given
// type and period.
func maLookback(period int, maType MaType) int {
	switch maType {
	case TypeDEMA:
		return 2 * (period - 1)
	case TypeTEMA:
		return 3 * (period - 1)
	case TypeKAMA:
		return period
	default:
		return period - 1
	}
}

// nanSlice returns a slice of n undefined values.
func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// firstDefined returns the index of the first defined value, or -1 when the
// whole series is undefined.
func firstDefined(values []float64) int {
	for i, v := range values {
		if !math.IsNaN(v) {
			return i
		}
	}
	return -1
}

// overDefined applies fn to the defined suffix of a NaN-padded series and
// re-pads the result to the original length.
func overDefined(values []float64, fn func([]float64) ([]float64, error)) ([]float64, error) {
	start := firstDefined(values)
	if start < 0 {
		return nil, errInsufficientf("series holds no defined values")
	}

	tail, err := fn(values[start:])
	if err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	copy(out[start:], tail)
	return out, nil
}
