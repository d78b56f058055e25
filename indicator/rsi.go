package indicator

// Rsi calculates the Relative Strength Index: the Wilder-smoothed average
// gain over the sum of Wilder-smoothed average gain and loss, scaled to
// [0, 100]. A zero average loss yields 100 rather than a division by zero.
// Defined from index period; a series of exactly period values is accepted
// and yields an all-undefined output.
func Rsi(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), period); err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	if len(values) == period {
		return out, nil
	}

	avgGain, avgLoss := 0.0, 0.0
	for i := 1; i <= period; i++ {
		diff := values[i] - values[i-1]
		if diff > 0 {
			avgGain += diff
		} else {
			avgLoss -= diff
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < len(values); i++ {
		gain, loss := 0.0, 0.0
		if diff := values[i] - values[i-1]; diff > 0 {
			gain = diff
		} else {
			loss = -diff
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// StochRsi calculates the Stochastic RSI: the stochastic %K formula applied
// to the RSI series itself, with the fast %D smoothed by a moving average
// of the chosen type. Both outputs share the compounded warm-up of the RSI
// and the stochastic windows.
func StochRsi(values []float64, period, fastKPeriod, fastDPeriod int, fastDMAType MaType) (fastK, fastD []float64, err error) {
	if err = validatePeriod("period", period); err != nil {
		return nil, nil, err
	}
	if err = validatePeriod("fastk_period", fastKPeriod); err != nil {
		return nil, nil, err
	}
	if err = validatePeriod("fastd_period", fastDPeriod); err != nil {
		return nil, nil, err
	}

	lookback := period + fastKPeriod - 1 + maLookback(fastDPeriod, fastDMAType)
	if err = validateLen(len(values), lookback+1); err != nil {
		return nil, nil, err
	}

	rsi, err := Rsi(values, period)
	if err != nil {
		return nil, nil, err
	}
	return stochFast(rsi, rsi, rsi, fastKPeriod, fastDPeriod, fastDMAType)
}
