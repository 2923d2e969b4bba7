package carta

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	log   zerolog.Logger
	logMu sync.Mutex
)

func init() {
	log = newDefaultLogger(GetGlobalConfig().LogLevel)
}

func newDefaultLogger(level string) zerolog.Logger {
	return zerolog.New(os.Stderr).
		Level(parseLogLevel(level)).
		With().Timestamp().Str("component", "carta").
		Logger()
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// SetLogger replaces the package logger. Callers embedding the engine in a
// larger application use this to route engine logs into their own sink.
func SetLogger(logger zerolog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	log = logger
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	return log
}

func updateLoggerFromConfig() {
	logMu.Lock()
	defer logMu.Unlock()
	log = log.Level(parseLogLevel(GetGlobalConfig().LogLevel))
}
