package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gonum.org/v1/gonum/spatial/r2"

	"triangulator/internal/config"
	m "triangulator/internal/mosquitto"
	"triangulator/internal/position"
	"triangulator/internal/recorder"
	"triangulator/internal/storage"
)

var configPath = flag.String("config", "config.yaml", "path to the YAML config")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	// Настройка логгера
	level, _ := cfg.SlogLevel()
	log := setupLogger(level)

	landmarks := make([]position.Landmark, 0, len(cfg.Landmarks))
	for _, l := range cfg.Landmarks {
		landmarks = append(landmarks, position.Landmark{ID: l.ID, Position: r2.Vec{X: l.X, Y: l.Y}})
	}

	storage := storage.NewStorage()
	ps := position.NewPositionService(storage, landmarks, cfg.EpsDeg, cfg.MaxBearingAge)

	// Клиент MQTT брокера, по сути это как консьюмер для кафки
	mcfg := m.Config{
		Broker:   cfg.Broker.Address,
		ClientId: cfg.Broker.ClientID,
		Username: cfg.Broker.Username,
		Password: cfg.Broker.Password,
		Topics:   cfg.Broker.Topics,
	}
	handler := m.NewHandler(storage, log)
	client, err := m.NewClient(mcfg, handler, log)
	if err != nil {
		log.Error("creating broker client error", "err", err)
		os.Exit(1)
	}
	defer client.Close()
	log.Info("service connected to broker", "broker", mcfg.Broker)

	rec, err := recorder.NewRecorder(ps, cfg.Recorder.Path, log)
	if err != nil {
		log.Error("creating recorder", "err", err)
		os.Exit(1)
	}
	defer rec.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec.Start(ctx, cfg.Recorder.Interval)
	log.Info("shutting down")
}

func setupLogger(level slog.Level) (log *slog.Logger) {
	log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	return
}
