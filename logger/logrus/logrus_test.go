package logrus

import (
	"bytes"
	"errors"
	"testing"

	"github.com/quantforge/ta/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAdapter() (*Adapter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	return NewAdapter(logrus.NewEntry(l)), buf
}

func TestNew(t *testing.T) {
	a, err := New("warn")
	require.NoError(t, err)
	assert.Equal(t, logger.WarnLevel, a.GetLevel())
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("bogus")
	assert.Error(t, err)
}

func TestAdapterLevelRoundTrip(t *testing.T) {
	levels := []logger.Level{
		logger.DebugLevel,
		logger.InfoLevel,
		logger.WarnLevel,
		logger.ErrorLevel,
		logger.FatalLevel,
	}

	a, _ := newBufferedAdapter()
	for _, level := range levels {
		a.SetLevel(level)
		assert.Equal(t, level, a.GetLevel())
	}
}

func TestLevelConversions(t *testing.T) {
	// Levels without a direct counterpart collapse onto the nearest one.
	assert.Equal(t, logger.DebugLevel, toLevel(logrus.TraceLevel))
	assert.Equal(t, logger.FatalLevel, toLevel(logrus.PanicLevel))

	for _, level := range []logrus.Level{
		logrus.DebugLevel,
		logrus.InfoLevel,
		logrus.WarnLevel,
		logrus.ErrorLevel,
		logrus.FatalLevel,
	} {
		assert.Equal(t, level, toLogrusLevel(toLevel(level)))
	}
}

func TestAdapterWithField(t *testing.T) {
	a, buf := newBufferedAdapter()

	a.WithField("pair", "BTCUSDT").Info("computing")

	out := buf.String()
	assert.Contains(t, out, `"pair":"BTCUSDT"`)
	assert.Contains(t, out, `"msg":"computing"`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestAdapterWithFields(t *testing.T) {
	a, buf := newBufferedAdapter()

	a.WithFields(map[string]any{"pair": "BTCUSDT", "bars": 42}).Warnf("%d rows", 3)

	out := buf.String()
	assert.Contains(t, out, `"pair":"BTCUSDT"`)
	assert.Contains(t, out, `"bars":42`)
	assert.Contains(t, out, `"msg":"3 rows"`)
}

func TestAdapterWithError(t *testing.T) {
	a, buf := newBufferedAdapter()

	a.WithError(errors.New("series holds no defined values")).Error("computation failed")

	out := buf.String()
	assert.Contains(t, out, `"error":"series holds no defined values"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestAdapterLevelFiltering(t *testing.T) {
	a, buf := newBufferedAdapter()

	a.SetLevel(logger.WarnLevel)
	a.Debug("dropped")
	a.Info("dropped")
	assert.Empty(t, buf.String())

	a.Warn("kept")
	assert.Contains(t, buf.String(), `"level":"warning"`)
}
