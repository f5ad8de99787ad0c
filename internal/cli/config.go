package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mcoot/connectfour/internal/factory"
	"github.com/mcoot/connectfour/internal/services/search"
	redisstorage "github.com/mcoot/connectfour/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	Depth    int
	Seed     string // empty for an unseeded game
	Cache    string
	RedisURL string
	LogLevel string
	Output   string
}

// DefaultConfig returns a Config with defaults taken from the environment
func DefaultConfig() *Config {
	return &Config{
		Depth:    getEnvAsInt("CONNECTFOUR_DEPTH", search.DefaultDepth),
		Seed:     os.Getenv("CONNECTFOUR_SEED"),
		Cache:    getEnvOrDefault("CONNECTFOUR_CACHE", factory.CacheTypeNone),
		RedisURL: getEnvOrDefault("CONNECTFOUR_REDIS_URL", redisstorage.DefaultConfig().URL),
		LogLevel: getEnvOrDefault("CONNECTFOUR_LOG_LEVEL", "warn"),
		Output:   getEnvOrDefault("CONNECTFOUR_OUTPUT", "text"),
	}
}

// FactoryConfig converts the CLI settings into an application config
func (c *Config) FactoryConfig(logger *slog.Logger) (factory.Config, error) {
	if c.Depth < 1 {
		return factory.Config{}, fmt.Errorf("depth must be at least 1, got %d", c.Depth)
	}

	fc := factory.Config{
		Logger:    logger,
		CacheType: c.Cache,
		Search:    search.Config{Depth: c.Depth},
	}

	if c.Seed != "" {
		seed, err := strconv.ParseUint(c.Seed, 10, 64)
		if err != nil {
			return factory.Config{}, fmt.Errorf("invalid seed %q: %w", c.Seed, err)
		}
		fc.Seed = &seed
	}

	if c.Cache == factory.CacheTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}

	return fc, nil
}

// SlogLevel parses the configured log level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return level, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		slog.Warn("invalid integer in environment, using default",
			slog.String("key", key),
			slog.String("value", val),
			slog.Int("default", defaultVal),
		)
		return defaultVal
	}
	return n
}
