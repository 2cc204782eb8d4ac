package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lunaria-games/mmoserver/config"
	dbadapter "github.com/lunaria-games/mmoserver/db"
	"github.com/lunaria-games/mmoserver/game/content"
	"github.com/lunaria-games/mmoserver/game/guild"
	"github.com/lunaria-games/mmoserver/game/player"
	"github.com/lunaria-games/mmoserver/game/world"
	"github.com/lunaria-games/mmoserver/persist"
	"github.com/lunaria-games/mmoserver/plugin/hook"
	"github.com/lunaria-games/mmoserver/presence"
	"github.com/lunaria-games/mmoserver/scheduler"
	"go.uber.org/zap"
)

func main() {
	cfgPath := "config/config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Server.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	// ---- Database ----
	db, err := dbadapter.Open(cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	// ---- Content catalog ----
	catalog, err := content.LoadDir(cfg.Content.DataPath)
	if err != nil {
		log.Fatalf("content: %v", err)
	}
	logger.Info("content catalog loaded", zap.Int("classes", len(catalog.Classes())))

	// ---- Presence / registry ----
	pres, err := presence.New(presence.Config{
		Addr:     cfg.Presence.RedisAddr,
		Password: cfg.Presence.RedisPassword,
		DB:       cfg.Presence.RedisDB,
	})
	if err != nil {
		log.Fatalf("presence: %v", err)
	}
	registry := player.NewRegistry(pres, logger)

	// ---- Terrain ----
	// Dev terrain; a production shard wires its navmesh here.
	terrain := &world.BoxTerrain{
		MinX: -500, MaxX: 500, MinZ: -500, MaxZ: 500,
		Spawns: []world.Vector3{{X: 0, Y: 0, Z: 0}},
	}

	// ---- Persistence ----
	hooks := hook.NewCenter()
	store := persist.NewStore(db, persist.NewUptimeClock(), catalog, terrain,
		registry, guild.NewCache(), hooks,
		persist.Config{
			SpawnTolerance:  cfg.Game.SpawnTolerance,
			BcryptCost:      cfg.Security.BcryptCost,
			LoginRatePeriod: cfg.Security.LoginRatePeriod,
			LoginRateBurst:  cfg.Security.LoginRateBurst,
		}, logger)

	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		log.Fatalf("persist: %v", err)
	}
	// A crash leaves stale online flags behind; clear them before anyone
	// logs in.
	if err := store.SetAllOffline(); err != nil {
		log.Fatalf("persist: reset online flags: %v", err)
	}

	// ---- Periodic world checkpoint ----
	sched := scheduler.New(logger)
	defer sched.Stop()
	sched.Every("world_checkpoint", cfg.Game.SaveInterval, func() {
		if err := store.CharacterSaveMany(ctx, registry.All(), true); err != nil {
			logger.Error("world checkpoint failed", zap.Error(err))
		}
	})

	logger.Info("persistence layer up",
		zap.String("db_mode", cfg.Database.Mode),
		zap.Duration("save_interval", cfg.Game.SaveInterval))

	// ---- Shutdown ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("shutting down, final checkpoint")
	sched.Stop()
	if err := store.CharacterSaveMany(ctx, registry.All(), false); err != nil {
		logger.Error("final checkpoint failed", zap.Error(err))
	}
	if err := store.SetAllOffline(); err != nil {
		logger.Error("reset online flags failed", zap.Error(err))
	}
}
