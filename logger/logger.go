// Package logger holds the process-wide structured logger used by every
// constellation package.
//
// Library code never constructs its own zap core. It asks for a named child of
// Logger (logger.Named("constellation")) or accepts one through a WithLogger
// option. Until Initialize is called, Logger is a no-op.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global sugared logger.
	Logger *zap.SugaredLogger
	// JSONOutput reports whether Initialize selected the JSON encoder.
	JSONOutput bool
)

func init() {
	// Safe default so packages can log before main wires anything.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger.
// jsonOutput selects zap's production JSON config; otherwise a console
// encoder writes to stderr. level is one of debug, info, warn, error; an
// empty or unknown level means info.
func Initialize(jsonOutput bool, level string) error {
	JSONOutput = jsonOutput
	lvl := parseLevel(level)

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)
		config.OutputPaths = []string{"stderr"}
		zapLogger, err := config.Build()
		if err != nil {
			return err
		}
		Logger = zapLogger.Sugar()
		return nil
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	zapLogger := zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stderr),
			lvl,
		),
	)
	Logger = zapLogger.Sugar()
	return nil
}

// Named returns a child of the global logger tagged with name.
func Named(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
