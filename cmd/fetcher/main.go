package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"curvewatch/db"
	"curvewatch/internal/model"
	"curvewatch/internal/repository"
	"curvewatch/pkg/fred"
)

func main() {

	schedule := flag.String("schedule", "", "cron expression; when set, run ingestion on that schedule instead of once")
	flag.Parse()

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.ConnectRedis(); err != nil {
		slog.Warn("redis unavailable, skipping cache invalidation", "error", err)
	} else {
		defer db.CloseRedis()
	}

	series, err := fred.LoadSeries(os.Getenv("CURVEWATCH_SERIES_CONFIG"))
	if err != nil {
		log.Fatalf("error loading series config: %v", err)
	}

	var source fred.Source
	if key := os.Getenv("FRED_API_KEY"); key != "" {
		source = fred.NewClient(key, series)
	} else {
		slog.Warn("FRED_API_KEY not set, using fixed fallback dataset")
		source = fred.NewFallbackSource()
	}

	repo := repository.NewSnapshotRepository(db.DB)

	run := func() error { return ingest(source, repo) }

	if *schedule == "" {
		if err := run(); err != nil {
			log.Fatalf("ingestion failed: %v", err)
		}
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(*schedule, func() {
		if err := run(); err != nil {
			slog.Error("scheduled ingestion failed", "error", err)
		}
	}); err != nil {
		log.Fatalf("invalid schedule %q: %v", *schedule, err)
	}
	c.Start()
	slog.Info("scheduler started", "schedule", *schedule)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	<-c.Stop().Done()
	slog.Info("scheduler stopped")
}

// ingest runs one fetch-assemble-persist cycle. An empty curve or a
// store write failure aborts the run so the trigger can retry it.
func ingest(source fred.Source, repo *repository.SnapshotRepository) error {
	today := time.Now().UTC().Format("2006-01-02")

	points, err := source.FetchCurve(context.Background())
	if err != nil {
		return fmt.Errorf("fetching curve from %s: %w", source.Name(), err)
	}

	snapshot, err := model.NewSnapshot(today, points)
	if err != nil {
		return fmt.Errorf("assembling curve for %s: %w", today, err)
	}

	if err := repo.SaveYieldCurve(snapshot); err != nil {
		return fmt.Errorf("saving snapshot for %s: %w", today, err)
	}

	if err := db.InvalidateCurve(today); err != nil {
		slog.Error("error invalidating curve cache", "date", today, "error", err)
	}

	slog.Info("yield curve updated",
		"source", source.Name(),
		"date", today,
		"points", len(snapshot.Points),
		"condition", string(snapshot.Classify()),
	)
	return nil
}
