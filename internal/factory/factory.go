package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/bosjol/tactical-ops/internal/dependencies/clock"
	"github.com/bosjol/tactical-ops/internal/dependencies/random"
	"github.com/bosjol/tactical-ops/internal/services/auth"
	"github.com/bosjol/tactical-ops/internal/services/availability"
	"github.com/bosjol/tactical-ops/internal/services/event"
	"github.com/bosjol/tactical-ops/internal/services/gamification"
	"github.com/bosjol/tactical-ops/internal/services/inventory"
	"github.com/bosjol/tactical-ops/internal/services/ledger"
	"github.com/bosjol/tactical-ops/internal/services/roster"
	"github.com/bosjol/tactical-ops/internal/services/settlement"
	"github.com/bosjol/tactical-ops/internal/services/voucher"
	"github.com/bosjol/tactical-ops/internal/storage"
	"github.com/bosjol/tactical-ops/internal/storage/memory"
	redisstorage "github.com/bosjol/tactical-ops/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService         *auth.Service
	RosterService       *roster.Service
	AvailabilityService *availability.Service
	InventoryService    *inventory.Service
	VoucherService      *voucher.Service
	SettlementService   *settlement.Service
	GamificationService *gamification.Service
	LedgerService       *ledger.Service
	EventController     *event.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	// Create services
	authService := auth.New(store, clk, authCfg)
	rosterService := roster.New(store, clk, rnd, logger)
	availabilityService := availability.New(store)
	inventoryService := inventory.New(store, rnd, logger)
	voucherService := voucher.New(store, clk, logger)
	settlementService := settlement.New(store, clk, logger)
	gamificationService := gamification.New(store, logger)
	ledgerService := ledger.New(store, clk, rnd, logger)
	eventController := event.NewController(store, availabilityService, voucherService, settlementService, clk, rnd, logger)

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		AuthService:         authService,
		RosterService:       rosterService,
		AvailabilityService: availabilityService,
		InventoryService:    inventoryService,
		VoucherService:      voucherService,
		SettlementService:   settlementService,
		GamificationService: gamificationService,
		LedgerService:       ledgerService,
		EventController:     eventController,
	}
}
