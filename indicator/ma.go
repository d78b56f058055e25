package indicator

import "math"

// Sma calculates the Simple Moving Average: the arithmetic mean of the
// trailing period values. Defined from index period-1.
func Sma(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), period); err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out, nil
}

// Ema calculates the Exponential Moving Average with smoothing factor
// k = 2/(period+1). The first value, at index period-1, is seeded with the
// simple average of the first period inputs; downstream composites (MACD,
// DEMA, TEMA, PPO) depend on this seed convention.
func Ema(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), period); err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	k := 2.0 / float64(period+1)

	seed := 0.0
	for _, v := range values[:period] {
		seed += v
	}
	prev := seed / float64(period)
	out[period-1] = prev

	for i := period; i < len(values); i++ {
		prev = values[i]*k + prev*(1-k)
		out[i] = prev
	}
	return out, nil
}

// Wma calculates the Weighted Moving Average with linearly decreasing
// weights over the trailing window. Defined from index period-1.
func Wma(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), period); err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	weightSum := float64(period*(period+1)) / 2

	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		for j := 0; j < period; j++ {
			sum += values[i-j] * float64(period-j)
		}
		out[i] = sum / weightSum
	}
	return out, nil
}

// wilderSmooth smooths values with factor 1/period, the variant used by
// RSI, ATR and the ADX chain. The seed at index period-1 is the simple
// average of the first period inputs.
func wilderSmooth(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if len(values) < period {
		return out
	}

	seed := 0.0
	for _, v := range values[:period] {
		seed += v
	}
	prev := seed / float64(period)
	out[period-1] = prev

	for i := period; i < len(values); i++ {
		prev = (prev*float64(period-1) + values[i]) / float64(period)
		out[i] = prev
	}
	return out
}

// Dema calculates the Double Exponential Moving Average:
// 2*EMA - EMA(EMA). Warm-up is additive, 2*(period-1).
func Dema(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), 2*period-1); err != nil {
		return nil, err
	}

	ema1, err := Ema(values, period)
	if err != nil {
		return nil, err
	}
	ema2, err := overDefined(ema1, func(v []float64) ([]float64, error) {
		return Ema(v, period)
	})
	if err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	for i := range out {
		if !IsUndefined(ema2[i]) {
			out[i] = 2*ema1[i] - ema2[i]
		}
	}
	return out, nil
}

// Tema calculates the Triple Exponential Moving Average:
// 3*EMA1 - 3*EMA2 + EMA3 where each EMA smooths the previous one.
// Warm-up is 3*(period-1).
func Tema(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), 3*period-2); err != nil {
		return nil, err
	}

	ema1, err := Ema(values, period)
	if err != nil {
		return nil, err
	}
	ema2, err := overDefined(ema1, func(v []float64) ([]float64, error) {
		return Ema(v, period)
	})
	if err != nil {
		return nil, err
	}
	ema3, err := overDefined(ema2, func(v []float64) ([]float64, error) {
		return Ema(v, period)
	})
	if err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	for i := range out {
		if !IsUndefined(ema3[i]) {
			out[i] = 3*ema1[i] - 3*ema2[i] + ema3[i]
		}
	}
	return out, nil
}

// Kaufman adaptive smoothing constants, equivalent to fast and slow EMA
// periods of 2 and 30.
const (
	kamaFastSC = 2.0 / (2.0 + 1.0)
	kamaSlowSC = 2.0 / (30.0 + 1.0)
)

// Kama calculates Kaufman's Adaptive Moving Average. The smoothing constant
// per bar derives from the efficiency ratio of directional change to total
// price movement over the trailing window; a flat window is treated as an
// efficiency ratio of zero. Defined from index period.
func Kama(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), period+1); err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	prev := values[period-1]

	for i := period; i < len(values); i++ {
		volatility := 0.0
		for j := i - period + 1; j <= i; j++ {
			volatility += math.Abs(values[j] - values[j-1])
		}

		er := 0.0
		if volatility != 0 {
			er = math.Abs(values[i]-values[i-period]) / volatility
		}

		sc := er*(kamaFastSC-kamaSlowSC) + kamaSlowSC
		sc *= sc

		prev += sc * (values[i] - prev)
		out[i] = prev
	}
	return out, nil
}
