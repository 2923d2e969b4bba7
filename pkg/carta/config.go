package carta

import (
	"errors"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config contains the configuration options of the engine.
type Config struct {
	// CacheMaxSize is the maximum number of templates to cache. 0 disables
	// caching.
	CacheMaxSize int
	// CacheTTL is the time-to-live for cached templates. 0 means no
	// expiration.
	CacheTTL time.Duration
	// LogLevel controls log verbosity (debug, info, warn, error, off).
	LogLevel string
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		CacheMaxSize: 16,
		CacheTTL:     0,
		LogLevel:     "warn",
	}
}

// ConfigFromEnvironment creates a configuration from CARTA_* environment
// variables, falling back to the defaults.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("CARTA_CACHE_MAX_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			config.CacheMaxSize = size
		}
	}
	if val := os.Getenv("CARTA_CACHE_TTL"); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.CacheTTL = duration
		}
	}
	if val := os.Getenv("CARTA_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	return config
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.CacheMaxSize < 0 {
		return errors.New("cache max size cannot be negative")
	}
	if c.CacheTTL < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error", "off":
	default:
		return errors.New("invalid log level: " + c.LogLevel)
	}
	return nil
}

// GetGlobalConfig returns a copy of the global configuration.
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration and reconfigures the
// package logger to match.
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	updateLoggerFromConfig()
}
