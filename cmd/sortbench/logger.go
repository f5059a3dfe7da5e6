package main

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console logger writing to w at the given level.
// "off" and "none" disable logging.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	switch strings.ToLower(level) {
	case "off", "none":
		return zap.NewNop(), nil
	}

	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(l),
	)
	return zap.New(core), nil
}
