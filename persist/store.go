// Package persist maps live gameplay entities to relational storage and
// back: accounts, characters with their child collections, guilds, and
// the item-mall order ledger.
package persist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lunaria-games/mmoserver/game/content"
	"github.com/lunaria-games/mmoserver/game/guild"
	"github.com/lunaria-games/mmoserver/game/player"
	"github.com/lunaria-games/mmoserver/game/world"
	"github.com/lunaria-games/mmoserver/model"
	"github.com/lunaria-games/mmoserver/plugin/hook"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Config carries the store's tunables.
type Config struct {
	// SpawnTolerance is how far off the walkable surface a persisted
	// position may be before the character falls back to a spawn point.
	SpawnTolerance float64
	// BcryptCost is the work factor for password hashes on auto-register.
	BcryptCost int
	// LoginRatePeriod/LoginRateBurst bound login attempts per account.
	LoginRatePeriod time.Duration
	LoginRateBurst  int
}

func (c *Config) applyDefaults() {
	if c.SpawnTolerance <= 0 {
		c.SpawnTolerance = 0.1
	}
	if c.BcryptCost <= 0 {
		c.BcryptCost = 12
	}
	if c.LoginRatePeriod <= 0 {
		c.LoginRatePeriod = time.Second
	}
	if c.LoginRateBurst <= 0 {
		c.LoginRateBurst = 5
	}
}

// Store is the persistence entry point. All public operations are
// synchronous; storage failures are logged with statement context and
// returned to the caller, never swallowed or retried here.
type Store struct {
	db       *gorm.DB
	clock    GameClock
	catalog  *content.Catalog
	terrain  world.Terrain
	registry *player.Registry
	guilds   *guild.Cache
	hooks    *hook.Center
	cfg      Config
	logger   *zap.Logger

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
}

// NewStore wires the store to its collaborators: the content catalog,
// walkable terrain, online registry, guild cache and hook center.
func NewStore(db *gorm.DB, clock GameClock, catalog *content.Catalog, terrain world.Terrain,
	registry *player.Registry, guilds *guild.Cache, hooks *hook.Center,
	cfg Config, logger *zap.Logger) *Store {

	cfg.applyDefaults()
	return &Store{
		db:       db,
		clock:    clock,
		catalog:  catalog,
		terrain:  terrain,
		registry: registry,
		guilds:   guilds,
		hooks:    hooks,
		cfg:      cfg,
		logger:   logger,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Init provisions any missing tables and fires the schema-init and
// connect hooks. Hook failures are operator warnings, not startup
// failures.
func (s *Store) Init(ctx context.Context) error {
	if err := model.AutoMigrate(s.db); err != nil {
		return fmt.Errorf("persist: schema init: %w", err)
	}
	if err := s.hooks.Trigger(ctx, hook.SchemaInit, nil); err != nil {
		s.logger.Warn("schema-init hook failed", zap.Error(err))
	}
	if err := s.hooks.Trigger(ctx, hook.Connect, nil); err != nil {
		s.logger.Warn("connect hook failed", zap.Error(err))
	}
	s.logger.Info("schema initialized")
	return nil
}
