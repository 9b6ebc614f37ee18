package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"curvewatch/db"
	"curvewatch/internal/handler"
	"curvewatch/internal/repository"
	"curvewatch/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var cache handler.CurveCache
	if err := db.ConnectRedis(); err != nil {
		slog.Warn("redis unavailable, serving without cache", "error", err)
	} else {
		cache = db.Cache{}
		defer db.CloseRedis()
	}

	repo := repository.NewSnapshotRepository(db.DB)

	yieldHandler := handler.NewYieldHandler(repo, cache)
	newsHandler := handler.NewNewsHandler(repo)
	summaryHandler := handler.NewSummaryHandler(newSummarizer(), repo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/treasury/yields", yieldHandler.GetYields)
	r.GET("/treasury/yields/:date", yieldHandler.GetYieldsByDate)
	r.POST("/ai/summarize", summaryHandler.Summarize)
	r.GET("/news", newsHandler.GetNews)
	r.GET("/health", yieldHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newSummarizer() llm.Summarizer {
	modelID := os.Getenv("LLM_MODEL_ID")

	if os.Getenv("LLM_PROVIDER") == "openai" {
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			log.Fatalf("OPENAI_API_KEY environment variable is not set")
		}
		return llm.NewOpenAIClient(key, modelID)
	}

	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		log.Fatalf("ANTHROPIC_API_KEY environment variable is not set")
	}
	return llm.NewAnthropicClient(key, modelID)
}
