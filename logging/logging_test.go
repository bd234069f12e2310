package logging

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "debug", want: LogLevelDebug},
		{in: "INFO", want: LogLevelInfo},
		{in: "", want: LogLevelInfo},
		{in: "warning", want: LogLevelWarn},
		{in: "warn", want: LogLevelWarn},
		{in: "error", want: LogLevelError},
		{in: "loud", want: LogLevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelWarn}, &buf)
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(DefaultLogConfig(), &buf)
	logger := base.WithSession("abc").WithCommand("dir")

	logger.Info(context.Background(), "hello", "extra", 1)
	out := buf.String()
	assert.Contains(t, out, "session=abc")
	assert.Contains(t, out, "command=dir")
	assert.Contains(t, out, "extra=1")

	buf.Reset()
	base.Info(context.Background(), "plain")
	assert.NotContains(t, buf.String(), "session=")
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	assert.Same(t, logger, logger.With("k", "v"))
	assert.NotPanics(t, func() {
		logger.Error(context.Background(), "ignored")
	})

	var nilLogger *Logger
	assert.NotPanics(t, func() {
		nilLogger.Info(context.Background(), "ignored")
		_ = nilLogger.With("k", "v")
	})
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(DefaultLogConfig(), &buf)
	ctx := context.Background()

	LogCommand(ctx, logger, "dir", 3*time.Millisecond, nil)
	assert.Contains(t, buf.String(), "command completed")
	assert.Contains(t, buf.String(), "success=true")

	buf.Reset()
	LogCommand(ctx, logger, "type", time.Millisecond, errors.New(errors.CodeNotFound, "File not found"))
	assert.Contains(t, buf.String(), "command failed")
	assert.Contains(t, buf.String(), "code=NOT_FOUND")

	assert.NotPanics(t, func() { LogCommand(ctx, nil, "x", 0, nil) })
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "debug", LogLevelDebug.String())
	assert.Equal(t, "warn", LogLevelWarn.String())
}
