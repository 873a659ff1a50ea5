package main

import (
	"context"
	"embed"

	"karltracker/internal/application"
	"karltracker/internal/delivery/discord"
	httpdelivery "karltracker/internal/delivery/http"
	"karltracker/internal/repository"
	"karltracker/pkg/config"
	"karltracker/pkg/logger"
	"karltracker/pkg/metrics"
	"karltracker/pkg/riot"
	service "karltracker/pkg/services"

	"github.com/joho/godotenv"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func main() {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := newRepository(ctx, &cfg, log)
	if err != nil {
		log.Error("failed to init marker store", "backend", cfg.MarkerBackend, "error", err)
		return
	}
	defer repos.Close()

	m := metrics.Default()

	riotClient := riot.NewHTTPClient(cfg.RiotAPIKey, cfg.RegionalRouting, cfg.PlatformRouting,
		riot.WithTimeout(cfg.RiotHTTPTimeout),
		riot.WithDefaultTagLine(cfg.RiotTagLine),
		riot.WithRequestObserver(m.RecordRiotRequest),
	)

	bot, err := discord.NewBot(&cfg, log.With("component", "discord"), m)
	if err != nil {
		log.Error("failed to init bot", "error", err)
		return
	}

	services := application.NewService(cfg.SummonerName, riotClient, repos, bot, log.With("component", "tracker"),
		application.WithRecorder(m),
	)

	poller := application.NewPoller(services.TrackerService, cfg.PollInterval, bot.Ready(), log.With("component", "poller"))
	server := httpdelivery.NewServer(cfg.Port, metrics.GetRegistry(), log.With("component", "http"))

	manager := service.NewManager(log)
	manager.AddService(server, bot, poller)

	if err := manager.Run(ctx); err != nil {
		log.Error("failed to start services", "error", err)
		return
	}
	log.Info("Bot Stopped")
}

func newRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repository.Repository, error) {
	switch cfg.MarkerBackend {
	case config.MarkerBackendPostgres:
		db, err := repository.NewPostgresDB(ctx, &cfg.Repo)
		if err != nil {
			return nil, err
		}

		log.Info("Running migrations...")
		if err := repository.RunMigrations(db, migrationFS); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("Migrations applied successfully")

		return repository.NewPostgresRepository(db), nil
	case config.MarkerBackendSQLite:
		return repository.NewSQLiteRepository(ctx, cfg.SQLitePath)
	default:
		return repository.NewFileRepository(cfg.MarkerFile), nil
	}
}
