package indicator

// neutralStochK is emitted when the high-low range of a stochastic window
// is zero and %K is otherwise indeterminate.
const neutralStochK = 50.0

// rawStochK computes fast %K: the position of the close inside the trailing
// high-low range, scaled to [0, 100]. A zero range emits the neutral
// midpoint. Inputs may carry leading undefined values; the output is
// undefined until a full window of defined bars is available.
func rawStochK(high, low, close []float64, period int) []float64 {
	out := nanSlice(len(close))
	start := firstDefined(close)
	if start < 0 {
		return out
	}

	for i := start + period - 1; i < len(close); i++ {
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
			out[i] = neutralStochK
			continue
		}
		out[i] = 100 * (close[i] - ll) / (hh - ll)
	}
	return out
}

// stochFast smooths raw %K into the fast %K/%D pair and masks both outputs
// to the combined warm-up, so a defined %K is always paired with a defined
// %D at the same index.
func stochFast(high, low, close []float64, fastKPeriod, fastDPeriod int, fastDMAType MaType) (fastK, fastD []float64, err error) {
	fastK = rawStochK(high, low, close, fastKPeriod)

	fastD, err = overDefined(fastK, func(v []float64) ([]float64, error) {
		return Ma(v, fastDPeriod, fastDMAType)
	})
	if err != nil {
		return nil, nil, err
	}

	for i := range fastK {
		if IsUndefined(fastD[i]) {
			fastK[i] = Undefined()
		}
	}
	return fastK, fastD, nil
}

// StochF calculates the Fast Stochastic Oscillator, returning fast %K and
// its moving average fast %D.
func StochF(high, low, close []float64, fastKPeriod, fastDPeriod int, fastDMAType MaType) (fastK, fastD []float64, err error) {
	if err = validatePeriod("fastk_period", fastKPeriod); err != nil {
		return nil, nil, err
	}
	if err = validatePeriod("fastd_period", fastDPeriod); err != nil {
		return nil, nil, err
	}
	if err = validateAligned(high, low, close); err != nil {
		return nil, nil, err
	}

	lookback := fastKPeriod - 1 + maLookback(fastDPeriod, fastDMAType)
	if err = validateLen(len(close), lookback+1); err != nil {
		return nil, nil, err
	}

	return stochFast(high, low, close, fastKPeriod, fastDPeriod, fastDMAType)
}

// Stoch calculates the Slow Stochastic Oscillator: raw %K smoothed once
// into slow %K and again into slow %D, each by a moving average of the
// chosen type. Both outputs share the combined warm-up.
func Stoch(high, low, close []float64, fastKPeriod, slowKPeriod int, slowKMAType MaType, slowDPeriod int, slowDMAType MaType) (slowK, slowD []float64, err error) {
	if err = validatePeriod("fastk_period", fastKPeriod); err != nil {
		return nil, nil, err
	}
	if err = validatePeriod("slowk_period", slowKPeriod); err != nil {
		return nil, nil, err
	}
	if err = validatePeriod("slowd_period", slowDPeriod); err != nil {
		return nil, nil, err
	}
	if err = validateAligned(high, low, close); err != nil {
		return nil, nil, err
	}

	lookback := fastKPeriod - 1 + maLookback(slowKPeriod, slowKMAType) + maLookback(slowDPeriod, slowDMAType)
	if err = validateLen(len(close), lookback+1); err != nil {
		return nil, nil, err
	}

	fastK := rawStochK(high, low, close, fastKPeriod)

	slowK, err = overDefined(fastK, func(v []float64) ([]float64, error) {
		return Ma(v, slowKPeriod, slowKMAType)
	})
	if err != nil {
		return nil, nil, err
	}

	slowD, err = overDefined(slowK, func(v []float64) ([]float64, error) {
		return Ma(v, slowDPeriod, slowDMAType)
	})
	if err != nil {
		return nil, nil, err
	}

	for i := range slowK {
		if IsUndefined(slowD[i]) {
			slowK[i] = Undefined()
		}
	}
	return slowK, slowD, nil
}
