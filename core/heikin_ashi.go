package core

import "math"

// HeikinAshi computes Heikin-Ashi candles, a smoothing of regular candles
// that filters out market noise. It keeps the previous smoothed candle as
// recurrence state.
type HeikinAshi struct {
	previous Candle
}

// NewHeikinAshi creates a new HeikinAshi calculator.
func NewHeikinAshi() *HeikinAshi {
	return &HeikinAshi{}
}

// Calculate transforms a standard candle into a Heikin-Ashi candle.
// Formula:
//   - HA_Close = (Open + High + Low + Close) / 4
//   - HA_Open  = (Previous HA_Open + Previous HA_Close) / 2
//   - HA_High  = Max(High, HA_Open, HA_Close)
//   - HA_Low   = Min(Low, HA_Open, HA_Close)
func (ha *HeikinAshi) Calculate(c Candle) Candle {
	var out Candle

	openValue := ha.previous.Open
	closeValue := ha.previous.Close

	// The first HA candle is seeded from the candle itself.
	if ha.previous.IsEmpty() {
		openValue = c.Open
		closeValue = c.Close
	}

	out.Open = (openValue + closeValue) / 2
	out.Close = (c.Open + c.High + c.Low + c.Close) / 4
	out.High = math.Max(c.High, math.Max(out.Open, out.Close))
	out.Low = math.Min(c.Low, math.Min(out.Open, out.Close))

	ha.previous = out

	return out
}
