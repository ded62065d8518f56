package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newCapturedAdapter() (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(base), &buf
}

func TestLogrusAdapterFields(t *testing.T) {
	logger, buf := newCapturedAdapter()

	logger.Info("processing", Field{Key: "rows", Value: 42})

	output := buf.String()
	assert.Contains(t, output, "processing")
	assert.Contains(t, output, "rows=42")
}

func TestLogrusAdapterWithError(t *testing.T) {
	logger, buf := newCapturedAdapter()

	logger.WithError(errors.New("boom")).Error("failed")

	output := buf.String()
	assert.Contains(t, output, "failed")
	assert.Contains(t, output, "boom")
}

func TestLogrusAdapterWithFieldsChaining(t *testing.T) {
	logger, buf := newCapturedAdapter()

	logger.WithField("component", "Session").WithField("rows", 2).Info("loaded")

	output := buf.String()
	assert.Contains(t, output, "component=Session")
	assert.Contains(t, output, "rows=2")
}

func TestDefaultLogger(t *testing.T) {
	original := GetLogger()
	defer SetDefaultLogger(original)

	mock := &MockLogger{}
	SetDefaultLogger(mock)
	assert.Equal(t, Logger(mock), GetLogger())

	// A nil logger never replaces the default.
	SetDefaultLogger(nil)
	assert.Equal(t, Logger(mock), GetLogger())
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("hello", Field{Key: "n", Value: 1})
	mock.Warn("careful")

	assert.True(t, mock.HasEntry("INFO", "hello"))
	assert.True(t, mock.HasEntry("WARN", "careful"))
	assert.False(t, mock.HasEntry("ERROR", "hello"))
}
