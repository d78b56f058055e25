package indicator

import "math"

// Candlestick recognizers classify each bar (or small trailing window of
// bars) by its OHLC geometry and return a per-bar signal: 100 for bullish,
// -100 for bearish, 0 for no pattern. Indices without enough trailing
// history always yield 0.

// Pattern signal values
const (
	SignalBullish = 100
	SignalBearish = -100
	SignalNone    = 0
)

// Geometric thresholds, as fractions of the bar range or of the body they
// are compared against.
const (
	dojiBodyRatio    = 0.1 // body at most this fraction of the range
	smallBodyRatio   = 0.3 // "small body" for hammer and shooting star
	shadowNoiseRatio = 0.1 // a shadow this small counts as negligible
	starBodyRatio    = 0.3 // star body at most this fraction of the first body
)

func realBody(open, close float64) float64 { return math.Abs(close - open) }

func bodyTop(open, close float64) float64 { return math.Max(open, close) }

func bodyBottom(open, close float64) float64 { return math.Min(open, close) }

func isBullishBar(open, close float64) bool { return close > open }

func isBearishBar(open, close float64) bool { return close < open }

func validatePatternInput(open, high, low, close []float64) error {
	return validateAligned(open, high, low, close)
}

// CdlDoji detects the Doji pattern: a bar whose body is negligible relative
// to its range. The signal is directionless and emitted as the single
// informational value 100.
func CdlDoji(open, high, low, close []float64) ([]int, error) {
	if err := validatePatternInput(open, high, low, close); err != nil {
		return nil, err
	}

	out := make([]int, len(open))
	for i := range open {
		if realBody(open[i], close[i]) <= dojiBodyRatio*(high[i]-low[i]) {
			out[i] = SignalBullish
		}
	}
	return out, nil
}

// CdlEngulfing detects the Engulfing pattern: a body of opposite colour
// that fully contains the prior body. Bullish when a rising body engulfs a
// falling one, bearish when reversed.
func CdlEngulfing(open, high, low, close []float64) ([]int, error) {
	if err := validatePatternInput(open, high, low, close); err != nil {
		return nil, err
	}

	out := make([]int, len(open))
	for i := 1; i < len(open); i++ {
		switch {
		case isBullishBar(open[i], close[i]) && isBearishBar(open[i-1], close[i-1]) &&
			close[i] > open[i-1] && open[i] < close[i-1]:
			out[i] = SignalBullish
		case isBearishBar(open[i], close[i]) && isBullishBar(open[i-1], close[i-1]) &&
			close[i] < open[i-1] && open[i] > close[i-1]:
			out[i] = SignalBearish
		}
	}
	return out, nil
}

// CdlHammer detects the Hammer pattern: a small body near the top of the
// range with a long lower shadow and negligible upper shadow, after a
// falling close. Bullish.
func CdlHammer(open, high, low, close []float64) ([]int, error) {
	if err := validatePatternInput(open, high, low, close); err != nil {
		return nil, err
	}

	out := make([]int, len(open))
	for i := 2; i < len(open); i++ {
		rng := high[i] - low[i]
		if rng <= 0 {
			continue
		}
		body := realBody(open[i], close[i])
		lowerShadow := bodyBottom(open[i], close[i]) - low[i]
		upperShadow := high[i] - bodyTop(open[i], close[i])

		if body <= smallBodyRatio*rng &&
			lowerShadow >= 2*body &&
			upperShadow <= shadowNoiseRatio*rng &&
			bodyBottom(open[i], close[i]) >= low[i]+0.6*rng &&
			close[i-1] < close[i-2] {
			out[i] = SignalBullish
		}
	}
	return out, nil
}

// CdlShootingStar detects the Shooting Star pattern, the mirror of the
// Hammer: a small body near the bottom of the range with a long upper
// shadow, after a rising close. Bearish.
func CdlShootingStar(open, high, low, close []float64) ([]int, error) {
	if err := validatePatternInput(open, high, low, close); err != nil {
		return nil, err
	}

	out := make([]int, len(open))
	for i := 2; i < len(open); i++ {
		rng := high[i] - low[i]
		if rng <= 0 {
			continue
		}
		body := realBody(open[i], close[i])
		lowerShadow := bodyBottom(open[i], close[i]) - low[i]
		upperShadow := high[i] - bodyTop(open[i], close[i])

		if body <= smallBodyRatio*rng &&
			upperShadow >= 2*body &&
			lowerShadow <= shadowNoiseRatio*rng &&
			bodyTop(open[i], close[i]) <= low[i]+0.4*rng &&
			close[i-1] > close[i-2] {
			out[i] = SignalBearish
		}
	}
	return out, nil
}

// CdlHarami detects the Harami pattern: a smaller body fully contained
// within the prior bar's body. The signal takes the opposite polarity of
// the prior bar, a weaker reversal than the Engulfing containment.
func CdlHarami(open, high, low, close []float64) ([]int, error) {
	if err := validatePatternInput(open, high, low, close); err != nil {
		return nil, err
	}

	out := make([]int, len(open))
	for i := 1; i < len(open); i++ {
		prevBody := realBody(open[i-1], close[i-1])
		body := realBody(open[i], close[i])
		if prevBody == 0 || body >= prevBody {
			continue
		}
		if bodyTop(open[i], close[i]) > bodyTop(open[i-1], close[i-1]) ||
			bodyBottom(open[i], close[i]) < bodyBottom(open[i-1], close[i-1]) {
			continue
		}
		if isBearishBar(open[i-1], close[i-1]) {
			out[i] = SignalBullish
		} else {
			out[i] = SignalBearish
		}
	}
	return out, nil
}

// CdlMorningStar detects the three-bar Morning Star: a large falling bar, a
// small star body gapping below its close, then a rising bar that closes
// back above the first body by at least the penetration fraction. Bullish
// at the third bar.
func CdlMorningStar(open, high, low, close []float64, penetration float64) ([]int, error) {
	if penetration < 0 {
		return nil, errInvalidParameterf("penetration must be non-negative, got %v", penetration)
	}
	if err := validatePatternInput(open, high, low, close); err != nil {
		return nil, err
	}

	out := make([]int, len(open))
	for i := 2; i < len(open); i++ {
		firstBody := realBody(open[i-2], close[i-2])
		starBody := realBody(open[i-1], close[i-1])

		if isBearishBar(open[i-2], close[i-2]) && firstBody > 0 &&
			starBody <= starBodyRatio*firstBody &&
			bodyTop(open[i-1], close[i-1]) < close[i-2] &&
			isBullishBar(open[i], close[i]) &&
			close[i] > close[i-2]+penetration*firstBody {
			out[i] = SignalBullish
		}
	}
	return out, nil
}

// CdlEveningStar detects the three-bar Evening Star, the bearish mirror of
// the Morning Star: a large rising bar, a star gapping above its close,
// then a falling bar closing back below the first body by the penetration
// fraction.
func CdlEveningStar(open, high, low, close []float64, penetration float64) ([]int, error) {
	if penetration < 0 {
		return nil, errInvalidParameterf("penetration must be non-negative, got %v", penetration)
	}
	if err := validatePatternInput(open, high, low, close); err != nil {
		return nil, err
	}

	out := make([]int, len(open))
	for i := 2; i < len(open); i++ {
		firstBody := realBody(open[i-2], close[i-2])
		starBody := realBody(open[i-1], close[i-1])

		if isBullishBar(open[i-2], close[i-2]) && firstBody > 0 &&
			starBody <= starBodyRatio*firstBody &&
			bodyBottom(open[i-1], close[i-1]) > close[i-2] &&
			isBearishBar(open[i], close[i]) &&
			close[i] < close[i-2]-penetration*firstBody {
			out[i] = SignalBearish
		}
	}
	return out, nil
}
