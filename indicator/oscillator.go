package indicator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// WilliamsR calculates Williams' %R: the distance of the close from the
// trailing highest high, scaled to [-100, 0]. A zero high-low range emits
// the neutral midpoint -50, mirroring the stochastic guard. Defined from
// index period-1.
func WilliamsR(high, low, close []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateAligned(high, low, close); err != nil {
		return nil, err
	}
	if err := validateLen(len(close), period); err != nil {
		return nil, err
	}

	out := nanSlice(len(close))
	for i := period - 1; i < len(close); i++ {
		hh, ll := high[i], low[i]
		for j := i - period + 1; j < i; j++ {
			if high[j] > hh {
				hh = high[j]
			}
			if low[j] < ll {
				ll = low[j]
			}
		}
		if hh == ll {
			out[i] = -neutralStochK
			continue
		}
		out[i] = -100 * (hh - close[i]) / (hh - ll)
	}
	return out, nil
}

// Cci calculates the Commodity Channel Index over the typical price, using
// the mean absolute deviation as the scale. A zero mean deviation emits 0.
// Defined from index period-1.
func Cci(high, low, close []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateAligned(high, low, close); err != nil {
		return nil, err
	}
	if err := validateLen(len(close), period); err != nil {
		return nil, err
	}

	tp := make([]float64, len(close))
	for i := range close {
		tp[i] = (high[i] + low[i] + close[i]) / 3
	}

	out := nanSlice(len(close))
	for i := period - 1; i < len(tp); i++ {
		window := tp[i-period+1 : i+1]
		mean := stat.Mean(window, nil)

		meanDev := 0.0
		for _, v := range window {
			meanDev += math.Abs(v - mean)
		}
		meanDev /= float64(period)

		if meanDev == 0 {
			out[i] = 0
			continue
		}
		out[i] = (tp[i] - mean) / (0.015 * meanDev)
	}
	return out, nil
}

// Mom calculates Momentum: the difference between the value and the value
// period bars earlier. Defined from index period.
func Mom(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), period+1); err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	for i := period; i < len(values); i++ {
		out[i] = values[i] - values[i-period]
	}
	return out, nil
}

// Roc calculates the Rate of Change as a percentage of the value period
// bars earlier. Undefined where that reference value is zero. Defined from
// index period.
func Roc(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), period+1); err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	for i := period; i < len(values); i++ {
		if values[i-period] == 0 {
			continue
		}
		out[i] = 100 * (values[i] - values[i-period]) / values[i-period]
	}
	return out, nil
}

// Ppo calculates the Percentage Price Oscillator: the spread between the
// fast and slow moving averages as a percentage of the slow one. Undefined
// where the slow average is zero.
func Ppo(values []float64, fastPeriod, slowPeriod int, maType MaType) ([]float64, error) {
	if err := validatePeriod("fast_period", fastPeriod); err != nil {
		return nil, err
	}
	if err := validatePeriod("slow_period", slowPeriod); err != nil {
		return nil, err
	}
	if fastPeriod >= slowPeriod {
		return nil, errInvalidParameterf("fast_period %d must be below slow_period %d", fastPeriod, slowPeriod)
	}
	if err := validateLen(len(values), maLookback(slowPeriod, maType)+1); err != nil {
		return nil, err
	}

	maFast, err := Ma(values, fastPeriod, maType)
	if err != nil {
		return nil, err
	}
	maSlow, err := Ma(values, slowPeriod, maType)
	if err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	for i := range values {
		if IsUndefined(maFast[i]) || IsUndefined(maSlow[i]) || maSlow[i] == 0 {
			continue
		}
		out[i] = 100 * (maFast[i] - maSlow[i]) / maSlow[i]
	}
	return out, nil
}

// Trix calculates the one-bar rate of change of a triple-smoothed EMA.
// Warm-up is 3*(period-1) for the smoothing plus one bar for the rate of
// change; undefined where the prior smoothed value is zero.
func Trix(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), 3*(period-1)+2); err != nil {
		return nil, err
	}

	ema3, err := Ema(values, period)
	if err != nil {
		return nil, err
	}
	for pass := 0; pass < 2; pass++ {
		ema3, err = overDefined(ema3, func(v []float64) ([]float64, error) {
			return Ema(v, period)
		})
		if err != nil {
			return nil, err
		}
	}

	out := nanSlice(len(values))
	start := firstDefined(ema3)
	for i := start + 1; i < len(values); i++ {
		if ema3[i-1] == 0 {
			continue
		}
		out[i] = 100 * (ema3[i] - ema3[i-1]) / ema3[i-1]
	}
	return out, nil
}
