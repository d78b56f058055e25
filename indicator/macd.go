package indicator

// Macd calculates the Moving Average Convergence/Divergence: the spread
// between the fast and slow EMAs, its signal-line EMA, and the histogram
// macd-signal. All three outputs share the slow EMA warm-up plus the signal
// EMA's own warm-up, so histogram[i] == macd[i]-signal[i] wherever defined.
func Macd(values []float64, fastPeriod, slowPeriod, signalPeriod int) (macd, signal, histogram []float64, err error) {
	if err = validatePeriod("fast_period", fastPeriod); err != nil {
		return nil, nil, nil, err
	}
	if err = validatePeriod("slow_period", slowPeriod); err != nil {
		return nil, nil, nil, err
	}
	if err = validatePeriod("signal_period", signalPeriod); err != nil {
		return nil, nil, nil, err
	}
	if fastPeriod >= slowPeriod {
		return nil, nil, nil, errInvalidParameterf("fast_period %d must be below slow_period %d", fastPeriod, slowPeriod)
	}
	if err = validateLen(len(values), slowPeriod+signalPeriod-1); err != nil {
		return nil, nil, nil, err
	}

	emaFast, err := Ema(values, fastPeriod)
	if err != nil {
		return nil, nil, nil, err
	}
	emaSlow, err := Ema(values, slowPeriod)
	if err != nil {
		return nil, nil, nil, err
	}

	macd = nanSlice(len(values))
	for i := slowPeriod - 1; i < len(values); i++ {
		macd[i] = emaFast[i] - emaSlow[i]
	}

	signal, err = overDefined(macd, func(v []float64) ([]float64, error) {
		return Ema(v, signalPeriod)
	})
	if err != nil {
		return nil, nil, nil, err
	}

	histogram = nanSlice(len(values))
	for i := range values {
		if IsUndefined(signal[i]) {
			// The macd line shares the signal line's warm-up.
			macd[i] = Undefined()
			continue
		}
		histogram[i] = macd[i] - signal[i]
	}
	return macd, signal, histogram, nil
}
