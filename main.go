package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ytsummarizer/apikey"
	"ytsummarizer/config"
	"ytsummarizer/handlers/api"
	"ytsummarizer/llm"
	"ytsummarizer/logger"
	"ytsummarizer/services/chat"
	"ytsummarizer/services/summary"
	"ytsummarizer/services/video"
	"ytsummarizer/transcript"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env first so config sees its values. Missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.LogDir, cfg.Debug); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Shared process state: the default API key, replaced when a key passes
	// validation.
	keys := apikey.NewStore(cfg.OpenAI.APIKey)

	completions := llm.NewOpenAI()
	fetcher := transcript.NewClient()

	summarySvc := summary.NewService(keys, completions, summary.DefaultConfig(cfg.OpenAI.Model))
	videoSvc := video.NewService(fetcher, summarySvc)
	chatSvc := chat.NewService(keys, completions, chat.DefaultConfig(cfg.OpenAI.Model))
	validator := apikey.NewValidator(keys, completions)

	server := api.NewServer(cfg, api.WithServices(videoSvc, chatSvc, validator))

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("Server shutdown error")
		}
	}()

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
