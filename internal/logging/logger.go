// Package logging builds the zap logger used by the runner.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the verbosity of the logger.
type Options struct {
	// Verbose enables per-file debug entries.
	Verbose bool
	// Quiet suppresses everything below warnings. Quiet wins over Verbose.
	Quiet bool
}

// Level returns the minimum level enabled by o.
func (o Options) Level() zapcore.Level {
	switch {
	case o.Quiet:
		return zapcore.WarnLevel
	case o.Verbose:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a console logger writing to w. Timestamps are omitted so
// output stays stable between runs.
func New(w io.Writer, opts Options) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		opts.Level(),
	)
	return zap.New(core).Named("doccompress")
}
