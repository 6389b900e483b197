package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vigil-srv/config"
	configKafka "vigil-srv/config/kafka"
	configMinio "vigil-srv/config/minio"
	configPostgre "vigil-srv/config/postgre"
	configRedis "vigil-srv/config/redis"
	"vigil-srv/internal/httpserver"
	"vigil-srv/pkg/discord"
	"vigil-srv/pkg/gemini"
	"vigil-srv/pkg/hibp"
	pkgJWT "vigil-srv/pkg/jwt"
	"vigil-srv/pkg/log"
	"vigil-srv/pkg/otx"
)

// @title       Vigil Risk & Threat Scoring API
// @description Security text analysis, LLM-backed threat assessment, threat-intel aggregation and breach risk scoring.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 7. Initialize Kafka producer (optional)
	// Without it scan submissions are processed inline instead of queued.
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer not available, scans will be processed inline: %v", err)
		kafkaProducer = nil
	} else {
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)
	}

	// 8. Initialize external providers
	geminiClient := initGeminiClient(ctx, logger, cfg)
	otxClient := otx.NewOTX(otx.OTXConfig{
		APIKey:  cfg.OTX.APIKey,
		BaseURL: cfg.OTX.BaseURL,
	})
	hibpClient := hibp.NewHIBP(hibp.HIBPConfig{
		APIKey:  cfg.HIBP.APIKey,
		BaseURL: cfg.HIBP.BaseURL,
	})

	// 9. Initialize Discord (optional)
	discordClient := initDiscordClient(ctx, logger, cfg)

	// 10. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 11. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Infrastructure clients
		PostgresDB:    postgresDB,
		RedisClient:   redisClient,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,

		// External providers
		GeminiClient: geminiClient,
		OTXClient:    otxClient,
		OTXHasKey:    cfg.OTX.APIKey != "",
		HIBPClient:   hibpClient,

		// Authentication & Security Configuration
		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initGeminiClient builds the Gemini client. A missing API key is a supported
// mode; assessments fall back to the deterministic verdict table.
func initGeminiClient(ctx context.Context, logger log.Logger, cfg *config.Config) gemini.IGemini {
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "Gemini API key not configured, assessments run in fallback mode")
		return nil
	}

	temperature := cfg.Gemini.Temperature
	client, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey:          cfg.Gemini.APIKey,
		Model:           cfg.Gemini.Model,
		Temperature:     &temperature,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
	})
	if err != nil {
		logger.Warnf(ctx, "Failed to initialize Gemini client, assessments run in fallback mode: %v", err)
		return nil
	}

	logger.Infof(ctx, "Gemini client initialized with model %s", cfg.Gemini.Model)
	return client
}

// initDiscordClient builds the Discord notifier. Optional.
func initDiscordClient(ctx context.Context, logger log.Logger, cfg *config.Config) discord.IDiscord {
	if cfg.Discord.WebhookID == "" || cfg.Discord.WebhookToken == "" {
		return nil
	}

	client, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		return nil
	}

	logger.Infof(ctx, "Discord webhook initialized successfully")
	return client
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
