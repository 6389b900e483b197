package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vigil-srv/config"
	configMinio "vigil-srv/config/minio"
	configPostgre "vigil-srv/config/postgre"
	"vigil-srv/internal/consumer"
	"vigil-srv/pkg/discord"
	"vigil-srv/pkg/gemini"
	"vigil-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Vigil Scan Worker...")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// Gemini (optional, scans fall back to deterministic verdicts)
	var geminiClient gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		temperature := cfg.Gemini.Temperature
		geminiClient, err = gemini.NewGemini(gemini.GeminiConfig{
			APIKey:          cfg.Gemini.APIKey,
			Model:           cfg.Gemini.Model,
			Temperature:     &temperature,
			MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		})
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Gemini client, scans run in fallback mode: %v", err)
			geminiClient = nil
		} else {
			logger.Info(ctx, "Gemini client initialized")
		}
	} else {
		logger.Warn(ctx, "Gemini API key not configured, scans run in fallback mode")
	}

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Consumer server. No producer: the worker only consumes scan jobs.
	srv, err := consumer.New(consumer.Config{
		Logger:       logger,
		KafkaConfig:  cfg.Kafka,
		MinIOBucket:  cfg.MinIO.Bucket,
		PostgresDB:   postgresDB,
		MinIOClient:  minioClient,
		GeminiClient: geminiClient,
		Discord:      discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
