package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/g4brie11e/chatbot-backend/internal/api"
	"github.com/g4brie11e/chatbot-backend/internal/chatbot"
	"github.com/g4brie11e/chatbot-backend/internal/config"
	"github.com/g4brie11e/chatbot-backend/internal/engine"
	"github.com/g4brie11e/chatbot-backend/internal/llm"
	"github.com/g4brie11e/chatbot-backend/internal/logger"
	"github.com/g4brie11e/chatbot-backend/internal/metrics"
	"github.com/g4brie11e/chatbot-backend/internal/report"
	"github.com/g4brie11e/chatbot-backend/internal/session"
	"github.com/g4brie11e/chatbot-backend/internal/storage"
)

const rulesFile = "rules.yaml"

func main() {
	// Load .env if present; deployed environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := logger.Init(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules, err := config.LoadRules(rulesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load keyword rules")
	}
	classifier := chatbot.NewClassifier(rules.Intents)

	store := session.NewStore(cfg.Session.TTL)
	go store.Run(ctx, cfg.Session.SweepInterval)

	registry := metrics.NewRegistry()

	leads, err := storage.NewLeadLog(cfg.Storage.LeadsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open lead log")
	}

	reports, err := report.NewGenerator(cfg.Report)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up report generator")
	}
	reports.Start(ctx)

	// The fallback model and the transcript archive are optional: without
	// them the bot still answers, falling back to the canned apology.
	var fallback engine.Fallback
	if client, err := llm.New(ctx, cfg.LLM); err != nil {
		log.Warn().Err(err).Msg("fallback model unavailable, continuing without it")
	} else {
		fallback = client
	}

	var (
		archive     engine.Archiver
		transcripts api.TranscriptStore
	)
	if cfg.Storage.RedisURL != "" {
		redisArchive, err := storage.NewRedisArchive(ctx, cfg.Storage.RedisURL, cfg.Storage.ArchiveTTL)
		if err != nil {
			log.Warn().Err(err).Msg("transcript archive unavailable, continuing without it")
		} else {
			archive = redisArchive
			transcripts = redisArchive
		}
	}

	eng := engine.New(classifier, store, registry, fallback, leads, reports, archive)

	server := api.NewServer(cfg.Server, eng, leads, registry, transcripts)
	if err := server.Run(ctx, cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
