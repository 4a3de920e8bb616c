// Package logging configures the zap logger used across the command-line
// tool, replacing the fmt.Println/log.Fatalf console narration the
// original tool used with structured, leveled logging.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap.Logger, or a development one (console
// encoding, caller line, debug level) when debug is true.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return cfg.Build()
	}
	return zap.NewProduction()
}
