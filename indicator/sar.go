package indicator

// Sar calculates the Parabolic Stop and Reverse. The stop trails the trend
// by the recurrence sar += af*(ep-sar), where ep is the running extreme
// point of the trend and af the acceleration factor, increased by
// acceleration on every new extreme up to maximum. When price crosses the
// stop, direction flips, af resets and the stop restarts at the old trend's
// extreme. The stop is always clamped outside the high-low range of the two
// most recent bars. Undefined at index 0.
//
// The starting direction is taken from the directional movement of the
// first two bars: a dominant down-move starts the series in a short trend,
// anything else in a long trend.
func Sar(high, low []float64, acceleration, maximum float64) ([]float64, error) {
	if acceleration <= 0 {
		return nil, errInvalidParameterf("acceleration must be positive, got %v", acceleration)
	}
	if maximum <= 0 {
		return nil, errInvalidParameterf("maximum must be positive, got %v", maximum)
	}
	if err := validateAligned(high, low); err != nil {
		return nil, err
	}
	if err := validateLen(len(high), 2); err != nil {
		return nil, err
	}

	afInit := acceleration
	if afInit > maximum {
		afInit = maximum
	}
	af := afInit

	// Initial trend from the first bar pair's directional movement.
	upMove := high[1] - high[0]
	downMove := low[0] - low[1]
	isLong := !(downMove > upMove && downMove > 0)

	var sar, ep float64
	if isLong {
		ep = high[1]
		sar = low[0]
	} else {
		ep = low[1]
		sar = high[0]
	}

	out := nanSlice(len(high))
	for i := 1; i < len(high); i++ {
		prevHigh, prevLow := high[i-1], low[i-1]

		if isLong {
			if low[i] <= sar {
				// Reversal: restart at the prior extreme, clamped above
				// the last two highs.
				isLong = false
				sar = ep
				if sar < prevHigh {
					sar = prevHigh
				}
				if sar < high[i] {
					sar = high[i]
				}
				out[i] = sar

				af = afInit
				ep = low[i]
				sar += af * (ep - sar)
				if sar < prevHigh {
					sar = prevHigh
				}
				if sar < high[i] {
					sar = high[i]
				}
				continue
			}

			out[i] = sar
			if high[i] > ep {
				ep = high[i]
				af += acceleration
				if af > maximum {
					af = maximum
				}
			}
			sar += af * (ep - sar)
			if sar > prevLow {
				sar = prevLow
			}
			if sar > low[i] {
				sar = low[i]
			}
			continue
		}

		if high[i] >= sar {
			// Reversal into a long trend, clamped below the last two lows.
			isLong = true
			sar = ep
			if sar > prevLow {
				sar = prevLow
			}
			if sar > low[i] {
				sar = low[i]
			}
			out[i] = sar

			af = afInit
			ep = high[i]
			sar += af * (ep - sar)
			if sar > prevLow {
				sar = prevLow
			}
			if sar > low[i] {
				sar = low[i]
			}
			continue
		}

		out[i] = sar
		if low[i] < ep {
			ep = low[i]
			af += acceleration
			if af > maximum {
				af = maximum
			}
		}
		sar += af * (ep - sar)
		if sar < prevHigh {
			sar = prevHigh
		}
		if sar < high[i] {
			sar = high[i]
		}
	}
	return out, nil
}
