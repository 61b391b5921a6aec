package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sugared zap logger shared by the CLI commands
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger writes human readable records to stderr so stdout stays free
// for rendered subtitles. verbose lowers the level to debug.
func NewLogger(verbose bool) *Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return newLogger(zapcore.Lock(os.Stderr), level)
}

// Nop discards everything. The CLI starts with it until flags are parsed.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

func newLogger(out zapcore.WriteSyncer, level zapcore.Level) *Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		out,
		zap.NewAtomicLevelAt(level),
	)
	return &Logger{zap.New(core).Sugar()}
}
