package core

import "time"

// Candle represents one OHLCV observation for a pair at a point in time.
type Candle struct {
	Pair     string
	Time     time.Time
	Open     float64
	Close    float64
	Low      float64
	High     float64
	Volume   float64
	Complete bool

	// Additional columns carried from CSV inputs
	Metadata map[string]float64
}

// IsEmpty checks if the candle contains no significant data.
func (c Candle) IsEmpty() bool {
	return c.Pair == "" && c.Close == 0 && c.Open == 0 && c.Volume == 0
}

// ToHeikinAshi transforms a regular candle into a Heikin-Ashi candle.
func (c Candle) ToHeikinAshi(ha *HeikinAshi) Candle {
	haCandle := ha.Calculate(c)

	return Candle{
		Pair:     c.Pair,
		Open:     haCandle.Open,
		High:     haCandle.High,
		Low:      haCandle.Low,
		Close:    haCandle.Close,
		Volume:   c.Volume,
		Complete: c.Complete,
		Time:     c.Time,
		Metadata: c.Metadata,
	}
}
