package indicator

import (
	"gonum.org/v1/gonum/stat"
)

// StdDev calculates the population standard deviation over the trailing
// window, scaled by nbdev. Defined from index period-1.
func StdDev(values []float64, period int, nbdev float64) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), period); err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]
		out[i] = stat.PopStdDev(window, nil) * nbdev
	}
	return out, nil
}

// BBands calculates Bollinger Bands. The middle band is a moving average of
// the chosen type; the upper and lower bands offset it by nbdevup and
// nbdevdn population standard deviations. All three outputs share the
// middle band's warm-up.
func BBands(values []float64, period int, nbdevup, nbdevdn float64, maType MaType) (upper, middle, lower []float64, err error) {
	if err = validatePeriod("period", period); err != nil {
		return nil, nil, nil, err
	}
	if err = validateLen(len(values), maLookback(period, maType)+1); err != nil {
		return nil, nil, nil, err
	}

	middle, err = Ma(values, period, maType)
	if err != nil {
		return nil, nil, nil, err
	}
	dev, err := StdDev(values, period, 1.0)
	if err != nil {
		return nil, nil, nil, err
	}

	upper = nanSlice(len(values))
	lower = nanSlice(len(values))
	for i := range values {
		if IsUndefined(middle[i]) || IsUndefined(dev[i]) {
			continue
		}
		upper[i] = middle[i] + nbdevup*dev[i]
		lower[i] = middle[i] - nbdevdn*dev[i]
	}
	return upper, middle, lower, nil
}
