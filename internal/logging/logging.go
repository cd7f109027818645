// Package logging configures the process-wide logger. It stays a nop until
// Init runs, so library code can log unconditionally.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	base  *zap.Logger
	sugar *zap.SugaredLogger
)

func init() {
	base = zap.NewNop()
	sugar = base.Sugar()
}

// InitFromEnv builds the logger from LOG_LEVEL and LOG_FORMAT.
func InitFromEnv() error {
	return Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// Init builds the logger. Level defaults to info; format is "console"
// (default) or "json".
func Init(level, format string) error {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "console"
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return fmt.Errorf("invalid LOG_FORMAT: %s", format)
	}

	atomLevel := zap.NewAtomicLevel()
	if err := atomLevel.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %s", level)
	}
	cfg.Level = atomLevel

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	base = logger
	sugar = logger.Sugar()
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = base.Sync()
}

func Debugf(format string, args ...interface{}) {
	sugar.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	sugar.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	sugar.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	sugar.Errorf(format, args...)
}
