package indicator

// Obv calculates On Balance Volume: a running sum that adds the bar's
// volume when the close rose, subtracts it when it fell and holds when it
// is unchanged. Defined from index 0, seeded with the first volume.
func Obv(close, volume []float64) ([]float64, error) {
	if err := validateAligned(close, volume); err != nil {
		return nil, err
	}
	if err := validateLen(len(close), 1); err != nil {
		return nil, err
	}

	out := make([]float64, len(close))
	out[0] = volume[0]
	for i := 1; i < len(close); i++ {
		switch {
		case close[i] > close[i-1]:
			out[i] = out[i-1] + volume[i]
		case close[i] < close[i-1]:
			out[i] = out[i-1] - volume[i]
		default:
			out[i] = out[i-1]
		}
	}
	return out, nil
}

// Ad calculates the Chaikin Accumulation/Distribution line: the running sum
// of the close location value weighted by volume. A zero-range bar
// contributes nothing (CLV of 0). Defined from index 0.
func Ad(high, low, close, volume []float64) ([]float64, error) {
	if err := validateAligned(high, low, close, volume); err != nil {
		return nil, err
	}
	if err := validateLen(len(high), 1); err != nil {
		return nil, err
	}

	out := make([]float64, len(high))
	sum := 0.0
	for i := range high {
		if rng := high[i] - low[i]; rng != 0 {
			clv := ((close[i] - low[i]) - (high[i] - close[i])) / rng
			sum += clv * volume[i]
		}
		out[i] = sum
	}
	return out, nil
}

// AdOsc calculates the Chaikin A/D Oscillator: the spread between a fast
// and a slow EMA of the A/D line. Both EMAs are seeded with the first A/D
// value, the TA-Lib seeding convention for this oscillator.
// Defined from index slowPeriod-1.
func AdOsc(high, low, close, volume []float64, fastPeriod, slowPeriod int) ([]float64, error) {
	if err := validatePeriod("fast_period", fastPeriod); err != nil {
		return nil, err
	}
	if err := validatePeriod("slow_period", slowPeriod); err != nil {
		return nil, err
	}
	if fastPeriod >= slowPeriod {
		return nil, errInvalidParameterf("fast_period %d must be below slow_period %d", fastPeriod, slowPeriod)
	}
	if err := validateAligned(high, low, close, volume); err != nil {
		return nil, err
	}
	if err := validateLen(len(high), slowPeriod); err != nil {
		return nil, err
	}

	ad, err := Ad(high, low, close, volume)
	if err != nil {
		return nil, err
	}

	kFast := 2.0 / float64(fastPeriod+1)
	kSlow := 2.0 / float64(slowPeriod+1)
	emaFast, emaSlow := ad[0], ad[0]

	out := nanSlice(len(high))
	for i := 1; i < len(ad); i++ {
		emaFast = ad[i]*kFast + emaFast*(1-kFast)
		emaSlow = ad[i]*kSlow + emaSlow*(1-kSlow)
		if i >= slowPeriod-1 {
			out[i] = emaFast - emaSlow
		}
	}
	return out, nil
}

// Mfi calculates the Money Flow Index: positive and negative money flow
// (typical price times volume, split by the direction of the typical price
// move) accumulated over the trailing window and scaled to [0, 100]. Zero
// negative flow yields 100 rather than a division by zero. Defined from
// index period.
func Mfi(high, low, close, volume []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateAligned(high, low, close, volume); err != nil {
		return nil, err
	}
	if err := validateLen(len(high), period+1); err != nil {
		return nil, err
	}

	n := len(high)
	posFlow := make([]float64, n)
	negFlow := make([]float64, n)
	prevTP := (high[0] + low[0] + close[0]) / 3

	for i := 1; i < n; i++ {
		tp := (high[i] + low[i] + close[i]) / 3
		raw := tp * volume[i]
		if tp > prevTP {
			posFlow[i] = raw
		} else if tp < prevTP {
			negFlow[i] = raw
		}
		prevTP = tp
	}

	out := nanSlice(n)
	var sumPos, sumNeg float64
	for i := 1; i < n; i++ {
		sumPos += posFlow[i]
		sumNeg += negFlow[i]
		if i > period {
			sumPos -= posFlow[i-period]
			sumNeg -= negFlow[i-period]
		}
		if i < period {
			continue
		}
		if sumNeg == 0 {
			out[i] = 100
			continue
		}
		mfr := sumPos / sumNeg
		out[i] = 100 - 100/(1+mfr)
	}
	return out, nil
}
