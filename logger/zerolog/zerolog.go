// Package zerolog adapts rs/zerolog to the logger.Logger interface, with a
// colored console writer for CLI use.
package zerolog

import (
	"os"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
)

// New creates a zerolog-backed logger. With jsonFormat the raw JSON stream
// is emitted; otherwise a colored console writer is used.
func New(level, dateTimeLayout string, colored, jsonFormat bool) (*Adapter, error) {
	logMode, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var logger zerolog.Logger
	if jsonFormat {
		logger = zerolog.New(os.Stdout).Level(logMode).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			NoColor:    !colored,
			TimeFormat: dateTimeLayout,
		}
		if colored {
			output.FormatLevel = formatLevel
			output.FormatTimestamp = func(i interface{}) string {
				return formatTimestamp(i, dateTimeLayout)
			}
		}
		logger = zerolog.New(output).Level(logMode).With().Timestamp().Logger()
	}

	return NewAdapter(&logger), nil
}

func formatLevel(i interface{}) string {
	levelStr, ok := i.(string)
	if !ok {
		return "[UNK]"
	}

	switch levelStr {
	case zerolog.LevelDebugValue:
		return term.Cyanf("[DBG]")
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WAR]")
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue:
		return term.Redf("[%s]", strings.ToUpper(levelStr[:3]))
	default:
		return term.Whitef("[UNK]")
	}
}

func formatTimestamp(i interface{}, timeLayout string) string {
	strTime, ok := i.(string)
	if !ok {
		return term.Cyanf("[%v]", i)
	}

	ts, err := time.ParseInLocation(time.RFC3339, strTime, time.Local)
	if err == nil {
		strTime = ts.In(time.Local).Format(timeLayout)
	}
	return term.Cyanf("[%s]", strTime)
}
