package indicator

// Vector helpers for composing indicator outputs, e.g. spreads between
// bands or custom band offsets. Undefined values propagate through the
// arithmetic.

// Add calculates the element-wise sum of two series.
func Add(a, b []float64) ([]float64, error) {
	if err := validateAligned(a, b); err != nil {
		return nil, err
	}

	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Sub calculates the element-wise difference of two series.
func Sub(a, b []float64) ([]float64, error) {
	if err := validateAligned(a, b); err != nil {
		return nil, err
	}

	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// Mult calculates the element-wise product of two series.
func Mult(a, b []float64) ([]float64, error) {
	if err := validateAligned(a, b); err != nil {
		return nil, err
	}

	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out, nil
}

// Div calculates the element-wise quotient of two series. Positions with a
// zero divisor are undefined.
func Div(a, b []float64) ([]float64, error) {
	if err := validateAligned(a, b); err != nil {
		return nil, err
	}

	out := nanSlice(len(a))
	for i := range a {
		if b[i] == 0 {
			continue
		}
		out[i] = a[i] / b[i]
	}
	return out, nil
}

// Max calculates the highest value over the trailing period. Defined from
// index period-1.
func Max(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), period); err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	for i := period - 1; i < len(values); i++ {
		max := values[i]
		for j := i - period + 1; j < i; j++ {
			if values[j] > max {
				max = values[j]
			}
		}
		out[i] = max
	}
	return out, nil
}

// Min calculates the lowest value over the trailing period. Defined from
// index period-1.
func Min(values []float64, period int) ([]float64, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}
	if err := validateLen(len(values), period); err != nil {
		return nil, err
	}

	out := nanSlice(len(values))
	for i := period - 1; i < len(values); i++ {
		min := values[i]
		for j := i - period + 1; j < i; j++ {
			if values[j] < min {
				min = values[j]
			}
		}
		out[i] = min
	}
	return out, nil
}

// Sum calculates the rolling sum over the trailing period. Defined from
// index period-1.
func Sum(values []float64, period int) ([]float64, error) {
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
			out[i] = sum
		}
	}
	return out, nil
}
