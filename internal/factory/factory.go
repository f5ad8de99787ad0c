package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/connectfour/internal/dependencies/clock"
	"github.com/mcoot/connectfour/internal/dependencies/random"
	"github.com/mcoot/connectfour/internal/services/game"
	"github.com/mcoot/connectfour/internal/services/search"
	"github.com/mcoot/connectfour/internal/storage"
	"github.com/mcoot/connectfour/internal/storage/memory"
	redisstorage "github.com/mcoot/connectfour/internal/storage/redis"
)

// Cache type constants
const (
	CacheTypeNone   = "none"
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Score cache, nil when caching is disabled
	Cache storage.ScoreCache

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Engine         *search.Engine
	GameController *game.Controller

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// CacheType selects the root score cache ("none", "memory" or "redis")
	// If empty, defaults to "none"
	CacheType string
	// RedisConfig holds Redis connection settings (required if CacheType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes move selection reproducible when set
	// If nil, tie-breaks draw from crypto/rand
	Seed *uint64
	// Search holds search settings
	// If Depth is zero, defaults to search.DefaultConfig()
	Search search.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var cache storage.ScoreCache
	var closers []io.Closer
	cacheType := cfg.CacheType
	if cacheType == "" {
		cacheType = CacheTypeNone
	}

	switch cacheType {
	case CacheTypeNone:
	case CacheTypeMemory:
		cache = memory.New()
	case CacheTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when CacheType is redis")
		}
		redisCache, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		cache = redisCache
		closers = append(closers, redisCache)
	default:
		return nil, errors.New("invalid CacheType: must be 'none', 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	searchCfg := cfg.Search
	if searchCfg.Depth == 0 {
		searchCfg = search.DefaultConfig()
	}

	app := newWithDependencies(cache, clk, rnd, searchCfg, logger)
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cache storage.ScoreCache, clk clock.Clock, rnd random.Random, searchCfg search.Config, logger *slog.Logger) *App {
	engine := search.NewEngine(cache, rnd, clk, searchCfg, logger)
	gameController := game.NewController(engine, clk, rnd, logger)

	return &App{
		Cache:          cache,
		Clock:          clk,
		Random:         rnd,
		Engine:         engine,
		GameController: gameController,
	}
}

// Close releases connections held by the app
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
