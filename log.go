package aoc

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevel is raised to debug by the -debug flag.
var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// Logger returns the logger used for diagnostics. Puzzle answers are
// printed to stdout and never go through it.
var Logger = sync.OnceValue(func() *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	config.Level = logLevel
	config.DisableStacktrace = true
	config.DisableCaller = true
	return zap.Must(config.Build()).Sugar()
})
