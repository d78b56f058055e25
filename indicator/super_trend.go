package indicator

// SuperTrend calculates the SuperTrend indicator: ATR bands around the
// median price whose active side flips when the close crosses it. Undefined
// while the underlying ATR is still warming up.
func SuperTrend(high, low, close []float64, atrPeriod int, factor float64) ([]float64, error) {
	if factor <= 0 {
		return nil, errInvalidParameterf("factor must be positive, got %v", factor)
	}

	atr, err := Atr(high, low, close, atrPeriod)
	if err != nil {
		return nil, err
	}

	n := len(close)
	out := nanSlice(n)
	start := firstDefined(atr)

	var finalUpper, finalLower, prev float64
	downtrend := true

	for i := start; i < n; i++ {
		median := (high[i] + low[i]) / 2
		basicUpper := median + atr[i]*factor
		basicLower := median - atr[i]*factor

		if i == start {
			finalUpper, finalLower = basicUpper, basicLower
			prev = finalUpper
			out[i] = prev
			continue
		}

		if basicUpper < finalUpper || close[i-1] > finalUpper {
			finalUpper = basicUpper
		}
		if basicLower > finalLower || close[i-1] < finalLower {
			finalLower = basicLower
		}

		if downtrend {
			if close[i] > finalUpper {
				downtrend = false
				prev = finalLower
			} else {
				prev = finalUpper
			}
		} else {
			if close[i] < finalLower {
				downtrend = true
				prev = finalUpper
			} else {
				prev = finalLower
			}
		}
		out[i] = prev
	}
	return out, nil
}
