package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel falls back to info for anything it does not recognise.
func ParseLevel(logLevel string) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(logLevel)))
	if err != nil {
		return zap.InfoLevel
	}
	return level
}

// NewLogger builds a JSON logger writing to stderr and, when fileSyncer is not nil, to the file too.
func NewLogger(logLevel string, fileSyncer zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	sink := zapcore.Lock(os.Stderr)
	if fileSyncer != nil {
		sink = zapcore.NewMultiWriteSyncer(fileSyncer, zapcore.Lock(os.Stderr))
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, ParseLevel(logLevel))
	return zap.New(core, zap.AddCaller())
}
