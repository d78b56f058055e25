package indicator

import "math"

// TRange calculates the True Range per bar: the greatest of the high-low
// span, the distance from high to the prior close and the distance from low
// to the prior close. Undefined at index 0, which has no prior close.
func TRange(high, low, close []float64) ([]float64, error) {
	if err := validateAligned(high, low, close); err != nil {
		return nil, err
	}
	if err := validateLen(len(high), 2); err != nil {
		return nil, err
	}

	out := nanSlice(len(high))
	for i := 1; i < len(high); i++ {
		out[i] = trueRange(high[i], low[i], close[i-1])
	}
	return out, nil
}

func trueRange(high, low, prevClose float64) float64 {
	tr := high - low
	if hc := math.Abs(high - prevClose); hc > tr {
		tr = hc
	}
	if lc := math.Abs(low - prevClose); lc > tr {
		tr = lc
	}
	return tr
}

// Atr calculates the Average True Range: Wilder-smoothed True Range over
// the period. Defined from index period.
func Atr(high, low, close []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateAligned(high, low, close); err != nil {
		return nil, err
	}
	if err := validateLen(len(high), period+1); err != nil {
		return nil, err
	}

	tr, err := TRange(high, low, close)
	if err != nil {
		return nil, err
	}
	return overDefined(tr, func(v []float64) ([]float64, error) {
		return wilderSmooth(v, period), nil
	})
}

// Natr calculates the Normalized Average True Range, the ATR expressed as a
// percentage of the close. Undefined where the close is zero.
func Natr(high, low, close []float64, period int) ([]float64, error) {
	atr, err := Atr(high, low, close, period)
	if err != nil {
		return nil, err
	}

	out := nanSlice(len(close))
	for i := range close {
		if IsUndefined(atr[i]) || close[i] == 0 {
			continue
		}
		out[i] = 100 * atr[i] / close[i]
	}
	return out, nil
}
