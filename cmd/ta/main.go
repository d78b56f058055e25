package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/quantforge/ta/core"
	"github.com/quantforge/ta/feed"
	"github.com/quantforge/ta/indicator"
	"github.com/quantforge/ta/logger"
	logrusadapter "github.com/quantforge/ta/logger/logrus"
	"github.com/quantforge/ta/logger/zerolog"
	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04:05"

// Command line flags
var (
	file       string
	pair       string
	timeframe  string
	sourceTf   string
	heikinAshi bool
	tail       int
	logLevel   string
	logBackend string
	jsonLog    bool

	period       int
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
	fastKPeriod  int
	slowKPeriod  int
	slowDPeriod  int
	fastDPeriod  int
	nbDev        float64
	acceleration float64
	maximum      float64
	penetration  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ta",
		Short:   "Technical-analysis indicator computations over CSV candle data",
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logBackend, "log-backend", "zerolog", "Log backend (zerolog, logrus)")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Emit logs as JSON")

	rootCmd.AddCommand(buildComputeCmd())
	rootCmd.AddCommand(buildListCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildComputeCmd() *cobra.Command {
	computeCmd := &cobra.Command{
		Use:   "compute [indicator]",
		Short: "Compute an indicator over a CSV candle file",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompute,
	}

	computeCmd.Flags().StringVarP(&file, "file", "f", "", "Candle CSV file path (e.g. ./btc.csv)")
	computeCmd.Flags().StringVarP(&pair, "pair", "p", "", "Pair label for the data (e.g. BTCUSDT)")
	computeCmd.Flags().StringVarP(&timeframe, "timeframe", "t", "1d", "Target timeframe (e.g. 1h)")
	computeCmd.Flags().StringVar(&sourceTf, "source-timeframe", "", "CSV timeframe when it differs from the target")
	computeCmd.Flags().BoolVar(&heikinAshi, "heikin-ashi", false, "Convert candles to Heikin-Ashi")
	computeCmd.Flags().IntVarP(&tail, "tail", "n", 10, "Number of trailing rows to print")

	computeCmd.Flags().IntVar(&period, "period", 0, "Time period (indicator-specific default)")
	computeCmd.Flags().IntVar(&fastPeriod, "fast", 0, "Fast period")
	computeCmd.Flags().IntVar(&slowPeriod, "slow", 0, "Slow period")
	computeCmd.Flags().IntVar(&signalPeriod, "signal", 9, "Signal period (macd)")
	computeCmd.Flags().IntVar(&fastKPeriod, "fastk", 5, "Fast %K period (stoch, stochrsi)")
	computeCmd.Flags().IntVar(&slowKPeriod, "slowk", 3, "Slow %K period (stoch)")
	computeCmd.Flags().IntVar(&slowDPeriod, "slowd", 3, "Slow %D period (stoch)")
	computeCmd.Flags().IntVar(&fastDPeriod, "fastd", 3, "Fast %D period (stochrsi)")
	computeCmd.Flags().Float64Var(&nbDev, "dev", 2.0, "Deviation multiplier (bbands, stddev)")
	computeCmd.Flags().Float64Var(&acceleration, "acceleration", 0.02, "Acceleration factor (sar)")
	computeCmd.Flags().Float64Var(&maximum, "maximum", 0.2, "Maximum acceleration factor (sar)")
	computeCmd.Flags().Float64Var(&penetration, "penetration", 0.3, "Penetration fraction (morningstar, eveningstar)")

	computeCmd.MarkFlagRequired("file")

	return computeCmd
}

func buildListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available indicators",
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Indicator", "Inputs", "Defaults"})

			names := make([]string, 0, len(catalog))
			for name := range catalog {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				entry := catalog[name]
				table.Append([]string{name, entry.inputs, entry.defaults})
			}
			table.Render()
		},
	}
}

type catalogEntry struct {
	inputs   string
	defaults string
}

var catalog = map[string]catalogEntry{
	"sma":          {"close", "period=30"},
	"ema":          {"close", "period=30"},
	"wma":          {"close", "period=30"},
	"dema":         {"close", "period=30"},
	"tema":         {"close", "period=30"},
	"kama":         {"close", "period=30"},
	"stddev":       {"close", "period=5 dev=2.0"},
	"bbands":       {"close", "period=5 dev=2.0"},
	"trange":       {"high low close", ""},
	"atr":          {"high low close", "period=14"},
	"natr":         {"high low close", "period=14"},
	"rsi":          {"close", "period=14"},
	"stochrsi":     {"close", "period=14 fastk=5 fastd=3"},
	"macd":         {"close", "fast=12 slow=26 signal=9"},
	"stoch":        {"high low close", "fastk=5 slowk=3 slowd=3"},
	"willr":        {"high low close", "period=14"},
	"cci":          {"high low close", "period=14"},
	"mom":          {"close", "period=10"},
	"roc":          {"close", "period=10"},
	"ppo":          {"close", "fast=12 slow=26"},
	"trix":         {"close", "period=30"},
	"adx":          {"high low close", "period=14"},
	"obv":          {"close volume", ""},
	"ad":           {"high low close volume", ""},
	"adosc":        {"high low close volume", "fast=3 slow=10"},
	"mfi":          {"high low close volume", "period=14"},
	"sar":          {"high low", "acceleration=0.02 maximum=0.2"},
	"supertrend":   {"high low close", "period=10 dev=2.0"},
	"doji":         {"open high low close", ""},
	"engulfing":    {"open high low close", ""},
	"hammer":       {"open high low close", ""},
	"shootingstar": {"open high low close", ""},
	"harami":       {"open high low close", ""},
	"morningstar":  {"open high low close", "penetration=0.3"},
	"eveningstar":  {"open high low close", "penetration=0.3"},
}

// column is one named output series of a computation.
type column struct {
	name   string
	values []float64
}

// newLogger builds the backend selected by --log-backend.
func newLogger() (logger.Logger, error) {
	switch logBackend {
	case "zerolog":
		return zerolog.New(logLevel, timeLayout, true, jsonLog)
	case "logrus":
		return logrusadapter.New(logLevel)
	default:
		return nil, fmt.Errorf("unknown log backend %q, want zerolog or logrus", logBackend)
	}
}

func runCompute(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	name := args[0]
	if _, ok := catalog[name]; !ok {
		return fmt.Errorf("unknown indicator %q, see 'ta list'", name)
	}

	if pair == "" {
		pair = file
	}
	if sourceTf == "" {
		sourceTf = timeframe
	}

	csvFeed, err := feed.NewCSVFeed(timeframe, feed.PairFeed{
		Pair:       pair,
		File:       file,
		Timeframe:  sourceTf,
		HeikinAshi: heikinAshi,
	})
	if err != nil {
		return err
	}

	df, err := csvFeed.Dataframe(pair, timeframe)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"pair":      pair,
		"timeframe": timeframe,
		"bars":      df.Close.Length(),
	}).Infof("computing %s", name)

	columns, err := compute(name, df)
	if err != nil {
		log.WithError(err).Error("computation failed")
		return err
	}

	printTable(df, columns, tail, log)
	return nil
}

// pick returns the flag value when set, otherwise the indicator default.
func pick(value, def int) int {
	if value > 0 {
		return value
	}
	return def
}

func compute(name string, df *core.Dataframe) ([]column, error) {
	open, high, low := df.Open.Values(), df.High.Values(), df.Low.Values()
	close, volume := df.Close.Values(), df.Volume.Values()

	single := func(label string, values []float64, err error) ([]column, error) {
		if err != nil {
			return nil, err
		}
		return []column{{label, values}}, nil
	}

	switch name {
	case "sma":
		out, err := indicator.Sma(close, pick(period, 30))
		return single(name, out, err)
	case "ema":
		out, err := indicator.Ema(close, pick(period, 30))
		return single(name, out, err)
	case "wma":
		out, err := indicator.Wma(close, pick(period, 30))
		return single(name, out, err)
	case "dema":
		out, err := indicator.Dema(close, pick(period, 30))
		return single(name, out, err)
	case "tema":
		out, err := indicator.Tema(close, pick(period, 30))
		return single(name, out, err)
	case "kama":
		out, err := indicator.Kama(close, pick(period, 30))
		return single(name, out, err)
	case "stddev":
		out, err := indicator.StdDev(close, pick(period, 5), nbDev)
		return single(name, out, err)
	case "bbands":
		upper, middle, lower, err := indicator.BBands(close, pick(period, 5), nbDev, nbDev, indicator.TypeSMA)
		if err != nil {
			return nil, err
		}
		return []column{{"upper", upper}, {"middle", middle}, {"lower", lower}}, nil
	case "trange":
		out, err := indicator.TRange(high, low, close)
		return single(name, out, err)
	case "atr":
		out, err := indicator.Atr(high, low, close, pick(period, 14))
		return single(name, out, err)
	case "natr":
		out, err := indicator.Natr(high, low, close, pick(period, 14))
		return single(name, out, err)
	case "rsi":
		out, err := indicator.Rsi(close, pick(period, 14))
		return single(name, out, err)
	case "stochrsi":
		fastK, fastD, err := indicator.StochRsi(close, pick(period, 14), fastKPeriod, fastDPeriod, indicator.TypeSMA)
		if err != nil {
			return nil, err
		}
		return []column{{"fastk", fastK}, {"fastd", fastD}}, nil
	case "macd":
		macd, signal, histogram, err := indicator.Macd(close, pick(fastPeriod, 12), pick(slowPeriod, 26), signalPeriod)
		if err != nil {
			return nil, err
		}
		return []column{{"macd", macd}, {"signal", signal}, {"histogram", histogram}}, nil
	case "stoch":
		slowK, slowD, err := indicator.Stoch(high, low, close, fastKPeriod, slowKPeriod, indicator.TypeSMA, slowDPeriod, indicator.TypeSMA)
		if err != nil {
			return nil, err
		}
		return []column{{"slowk", slowK}, {"slowd", slowD}}, nil
	case "willr":
		out, err := indicator.WilliamsR(high, low, close, pick(period, 14))
		return single(name, out, err)
	case "cci":
		out, err := indicator.Cci(high, low, close, pick(period, 14))
		return single(name, out, err)
	case "mom":
		out, err := indicator.Mom(close, pick(period, 10))
		return single(name, out, err)
	case "roc":
		out, err := indicator.Roc(close, pick(period, 10))
		return single(name, out, err)
	case "ppo":
		out, err := indicator.Ppo(close, pick(fastPeriod, 12), pick(slowPeriod, 26), indicator.TypeSMA)
		return single(name, out, err)
	case "trix":
		out, err := indicator.Trix(close, pick(period, 30))
		return single(name, out, err)
	case "adx":
		out, err := indicator.Adx(high, low, close, pick(period, 14))
		return single(name, out, err)
	case "obv":
		out, err := indicator.Obv(close, volume)
		return single(name, out, err)
	case "ad":
		out, err := indicator.Ad(high, low, close, volume)
		return single(name, out, err)
	case "adosc":
		out, err := indicator.AdOsc(high, low, close, volume, pick(fastPeriod, 3), pick(slowPeriod, 10))
		return single(name, out, err)
	case "mfi":
		out, err := indicator.Mfi(high, low, close, volume, pick(period, 14))
		return single(name, out, err)
	case "sar":
		out, err := indicator.Sar(high, low, acceleration, maximum)
		return single(name, out, err)
	case "supertrend":
		out, err := indicator.SuperTrend(high, low, close, pick(period, 10), nbDev)
		return single(name, out, err)
	case "doji":
		out, err := indicator.CdlDoji(open, high, low, close)
		return signalColumn(name, out, err)
	case "engulfing":
		out, err := indicator.CdlEngulfing(open, high, low, close)
		return signalColumn(name, out, err)
	case "hammer":
		out, err := indicator.CdlHammer(open, high, low, close)
		return signalColumn(name, out, err)
	case "shootingstar":
		out, err := indicator.CdlShootingStar(open, high, low, close)
		return signalColumn(name, out, err)
	case "harami":
		out, err := indicator.CdlHarami(open, high, low, close)
		return signalColumn(name, out, err)
	case "morningstar":
		out, err := indicator.CdlMorningStar(open, high, low, close, penetration)
		return signalColumn(name, out, err)
	case "eveningstar":
		out, err := indicator.CdlEveningStar(open, high, low, close, penetration)
		return signalColumn(name, out, err)
	default:
		return nil, fmt.Errorf("unknown indicator %q", name)
	}
}

func signalColumn(label string, signals []int, err error) ([]column, error) {
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(signals))
	for i, s := range signals {
		values[i] = float64(s)
	}
	return []column{{label, values}}, nil
}

func printTable(df *core.Dataframe, columns []column, tail int, log logger.Logger) {
	size := len(df.Time)
	start := size - tail
	if start < 0 {
		start = 0
	}

	header := []string{"time", "close"}
	for _, col := range columns {
		header = append(header, col.name)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)

	for i := start; i < size; i++ {
		row := []string{
			df.Time[i].Format(timeLayout),
			strconv.FormatFloat(df.Close[i], 'f', -1, 64),
		}
		for _, col := range columns {
			row = append(row, formatValue(col.values[i]))
		}
		table.Append(row)
	}
	table.Render()

	log.Debugf("printed %d of %d rows", size-start, size)
}

func formatValue(v float64) string {
	if indicator.IsUndefined(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
