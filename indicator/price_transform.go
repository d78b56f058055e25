package indicator

// TypPrice calculates the Typical Price per bar: (high+low+close)/3.
func TypPrice(high, low, close []float64) ([]float64, error) {
	if err := validateAligned(high, low, close); err != nil {
		return nil, err
	}

	out := make([]float64, len(high))
	for i := range high {
		out[i] = (high[i] + low[i] + close[i]) / 3
	}
	return out, nil
}

// MedPrice calculates the Median Price per bar: (high+low)/2.
func MedPrice(high, low []float64) ([]float64, error) {
	if err := validateAligned(high, low); err != nil {
		return nil, err
	}

	out := make([]float64, len(high))
	for i := range high {
		out[i] = (high[i] + low[i]) / 2
	}
	return out, nil
}

// AvgPrice calculates the Average Price per bar: (open+high+low+close)/4.
func AvgPrice(open, high, low, close []float64) ([]float64, error) {
	if err := validateAligned(open, high, low, close); err != nil {
		return nil, err
	}

	out := make([]float64, len(open))
	for i := range open {
		out[i] = (open[i] + high[i] + low[i] + close[i]) / 4
	}
	return out, nil
}

// WclPrice calculates the Weighted Close Price per bar: (high+low+2*close)/4.
func WclPrice(high, low, close []float64) ([]float64, error) {
	if err := validateAligned(high, low, close); err != nil {
		return nil, err
	}

	out := make([]float64, len(high))
	for i := range high {
		out[i] = (high[i] + low[i] + 2*close[i]) / 4
	}
	return out, nil
}
