package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"curvewatch/db"
	"curvewatch/internal/model"
	"curvewatch/internal/repository"
	"curvewatch/pkg/news"
)

const topResults = 5

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var client news.Client
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		client = news.NewFinnhubClient(key)
	} else {
		client = news.NewDuckDuckGoClient()
	}

	items, err := client.Fetch(topResults)
	if err != nil {
		log.Fatalf("error fetching news from %s: %v", client.Name(), err)
	}

	if len(items) == 0 {
		slog.Info("no news found", "source", client.Name(), "count", 0)
		return
	}

	bundle := &model.NewsBundle{
		Date:      time.Now().UTC().Format("2006-01-02"),
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}

	repo := repository.NewSnapshotRepository(db.DB)
	if err := repo.SaveNewsBundle(bundle); err != nil {
		log.Fatalf("error saving news bundle: %v", err)
	}

	slog.Info("news updated", "source", client.Name(), "date", bundle.Date, "count", len(bundle.Items))
}
