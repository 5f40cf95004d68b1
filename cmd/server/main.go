package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/g1tyx/idle-dungeon-runner/internal/engine"
	"github.com/g1tyx/idle-dungeon-runner/internal/infrastructure/storage"
	"github.com/g1tyx/idle-dungeon-runner/internal/network"
	"github.com/g1tyx/idle-dungeon-runner/internal/server"
	"github.com/g1tyx/idle-dungeon-runner/internal/version"
	"github.com/g1tyx/idle-dungeon-runner/pkg/logger"
)

// telemetryPeriod — как часто забег пишется в SQLite.
const telemetryPeriod = 5 * time.Second

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var class string
	flag.Int64Var(&seed, "seed", 0, "Run seed (0 for random)")
	flag.StringVar(&class, "class", "", "Player class: warrior/ranger/mage")
	flag.Parse()

	logger.Log.Info("Starting Idle Dungeon Runner...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}
	if class != "" {
		cfg.ClassName = class
	}

	// 2. Хранилище
	store, err := storage.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Log.Fatal("Failed to open storage:", err)
	}
	defer store.Close()

	// 3. Ядро симуляции
	game := engine.NewGame(cfg)
	hub := network.NewHub()
	game.SetBroadcaster(hub)

	if err := store.StartSession(game.RunID(), cfg.Seed, cfg.ClassName); err != nil {
		logger.Log.WithError(err).Warn("Failed to register session")
	}

	ctx, cancel := context.WithCancel(context.Background())
	go game.Run(ctx)
	go telemetryLoop(ctx, game, store)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. HTTP/WebSocket сервер
	srv := server.New(game, hub, cfg.Port)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	cancel()

	// Финальный снимок забега
	snap := game.RunSnapshot()
	if err := store.SaveSnapshot(snap); err != nil {
		logger.Log.WithError(err).Warn("Failed to save final snapshot")
	}
	if err := store.EndSession(game.RunID(), snap.Floor, snap.Level, snap.Gold, false); err != nil {
		logger.Log.WithError(err).Warn("Failed to close session")
	}

	logger.Log.Info("Done.")
}

// telemetryLoop периодически пишет состояние забега в хранилище.
func telemetryLoop(ctx context.Context, game *engine.Game, store *storage.SQLiteStore) {
	ticker := time.NewTicker(telemetryPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := game.RunSnapshot()
			floor, clock, monsters, phase := game.Stats()
			rec := &storage.TickRecord{
				SessionID: game.RunID(),
				Clock:     clock,
				Floor:     floor,
				Level:     snap.Level,
				HP:        snap.HP,
				MaxHP:     snap.MaxHP,
				Gold:      snap.Gold,
				Monsters:  monsters,
				Phase:     phase,
			}
			if err := store.LogTick(rec); err != nil {
				logger.Log.WithError(err).Debug("Telemetry write failed")
			}
		}
	}
}
