package httpserver

import (
	"database/sql"
	"errors"

	"vigil-srv/config"
	"vigil-srv/internal/analysis"
	"vigil-srv/pkg/discord"
	"vigil-srv/pkg/gemini"
	"vigil-srv/pkg/hibp"
	pkgJWT "vigil-srv/pkg/jwt"
	pkgKafka "vigil-srv/pkg/kafka"
	"vigil-srv/pkg/log"
	"vigil-srv/pkg/minio"
	"vigil-srv/pkg/otx"
	pkgRedis "vigil-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Infrastructure clients
	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// External providers. geminiClient may be nil (assessments fall back to
	// the deterministic table); otx and hibp work without an API key.
	geminiClient gemini.IGemini
	otxClient    otx.IOTX
	otxHasKey    bool
	hibpClient   hibp.IHIBP

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   pkgJWT.IManager
	cookieConfig config.CookieConfig

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared usecases, populated by mapHandlers
	analysisUC analysis.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Infrastructure clients
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer

	// External providers
	GeminiClient gemini.IGemini
	OTXClient    otx.IOTX
	OTXHasKey    bool
	HIBPClient   hibp.IHIBP

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   pkgJWT.IManager
	CookieConfig config.CookieConfig

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Infrastructure clients
		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,

		// External providers
		geminiClient: cfg.GeminiClient,
		otxClient:    cfg.OTXClient,
		otxHasKey:    cfg.OTXHasKey,
		hibpClient:   cfg.HIBPClient,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
// Gemini, MinIO, Kafka and Discord are optional; the matching features
// run in their degraded modes when absent.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// External providers
	if srv.otxClient == nil {
		return errors.New("otxClient is required")
	}
	if srv.hibpClient == nil {
		return errors.New("hibpClient is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
