package indicator

import "math"

// directionalMovement computes the per-bar +DM and -DM deltas with the
// standard exclusivity rule: only the larger of the up-move and down-move
// counts, only when positive, and equal moves count as zero for both.
// Index 0 is zero for both.
func directionalMovement(high, low []float64) (plusDM, minusDM []float64) {
	plusDM = make([]float64, len(high))
	minusDM = make([]float64, len(high))

	for i := 1; i < len(high); i++ {
		up := high[i] - high[i-1]
		down := low[i-1] - low[i]

		if up > down && up > 0 {
			plusDM[i] = up
		} else if down > up && down > 0 {
			minusDM[i] = down
		}
	}
	return plusDM, minusDM
}

// smoothedDirectional returns the Wilder-smoothed running sums of +DM, -DM
// and True Range, each seeded with the sum over the first period bars of
// movement and decayed by 1/period thereafter. Values are valid from index
// period onward.
func smoothedDirectional(high, low, close []float64, period int) (plusDM, minusDM, tr []float64) {
	rawPlus, rawMinus := directionalMovement(high, low)

	plusDM = make([]float64, len(high))
	minusDM = make([]float64, len(high))
	tr = make([]float64, len(high))

	var sumPlus, sumMinus, sumTR float64
	for i := 1; i <= period; i++ {
		sumPlus += rawPlus[i]
		sumMinus += rawMinus[i]
		sumTR += trueRange(high[i], low[i], close[i-1])
	}
	plusDM[period] = sumPlus
	minusDM[period] = sumMinus
	tr[period] = sumTR

	for i := period + 1; i < len(high); i++ {
		sumPlus += rawPlus[i] - sumPlus/float64(period)
		sumMinus += rawMinus[i] - sumMinus/float64(period)
		sumTR += trueRange(high[i], low[i], close[i-1]) - sumTR/float64(period)
		plusDM[i] = sumPlus
		minusDM[i] = sumMinus
		tr[i] = sumTR
	}
	return plusDM, minusDM, tr
}

func validateDirectionalInput(high, low, close []float64, period, minLen int) error {
	if err := validatePeriod("period", period); err != nil {
		return err
	}
	if err := validateAligned(high, low, close); err != nil {
		return err
	}
	return validateLen(len(high), minLen)
}

// PlusDI calculates the Plus Directional Indicator: Wilder-smoothed +DM as
// a percentage of the Wilder-smoothed True Range. A zero smoothed range
// emits 0. Defined from index period.
func PlusDI(high, low, close []float64, period int) ([]float64, error) {
	if err := validateDirectionalInput(high, low, close, period, period+1); err != nil {
		return nil, err
	}

	plusDM, _, tr := smoothedDirectional(high, low, close, period)
	out := nanSlice(len(high))
	for i := period; i < len(high); i++ {
		out[i] = directionalIndex(plusDM[i], tr[i])
	}
	return out, nil
}

// MinusDI calculates the Minus Directional Indicator, the -DM counterpart
// of PlusDI.
func MinusDI(high, low, close []float64, period int) ([]float64, error) {
	if err := validateDirectionalInput(high, low, close, period, period+1); err != nil {
		return nil, err
	}

	_, minusDM, tr := smoothedDirectional(high, low, close, period)
	out := nanSlice(len(high))
	for i := period; i < len(high); i++ {
		out[i] = directionalIndex(minusDM[i], tr[i])
	}
	return out, nil
}

func directionalIndex(dm, tr float64) float64 {
	if tr == 0 {
		return 0
	}
	return 100 * dm / tr
}

// Dx calculates the Directional Movement Index: the spread of +DI and -DI
// as a percentage of their sum. A zero sum emits 0. Defined from index
// period.
func Dx(high, low, close []float64, period int) ([]float64, error) {
	if err := validateDirectionalInput(high, low, close, period, period+1); err != nil {
		return nil, err
	}

	plusDM, minusDM, tr := smoothedDirectional(high, low, close, period)
	out := nanSlice(len(high))
	for i := period; i < len(high); i++ {
		out[i] = dxValue(plusDM[i], minusDM[i], tr[i])
	}
	return out, nil
}

func dxValue(plusDM, minusDM, tr float64) float64 {
	plusDI := directionalIndex(plusDM, tr)
	minusDI := directionalIndex(minusDM, tr)
	if sum := plusDI + minusDI; sum != 0 {
		return 100 * math.Abs(plusDI-minusDI) / sum
	}
	return 0
}

// Adx calculates the Average Directional Movement Index: DX smoothed by a
// Wilder average over the period. The first value, at index 2*period-1, is
// the simple average of the first period DX values.
func Adx(high, low, close []float64, period int) ([]float64, error) {
	if err := validateDirectionalInput(high, low, close, period, 2*period); err != nil {
		return nil, err
	}

	dx, err := Dx(high, low, close, period)
	if err != nil {
		return nil, err
	}

	out := nanSlice(len(high))

	sum := 0.0
	for i := period; i < 2*period; i++ {
		sum += dx[i]
	}
	prev := sum / float64(period)
	out[2*period-1] = prev

	for i := 2 * period; i < len(high); i++ {
		prev = (prev*float64(period-1) + dx[i]) / float64(period)
		out[i] = prev
	}
	return out, nil
}
