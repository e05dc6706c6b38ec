package httpserver

import (
	"database/sql"
	"errors"

	"auth-srv/config"
	"auth-srv/internal/audit"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/encrypter"
	pkgJWT "auth-srv/pkg/jwt"
	"auth-srv/pkg/kafka"
	"auth-srv/pkg/log"
	pkgRedis "auth-srv/pkg/redis"

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

	// Database Configuration
	postgresDB *sql.DB

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   pkgJWT.IManager
	redisClient  pkgRedis.IRedis
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Event stream Configuration (optional)
	kafkaProducer kafka.IProducer

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// auditUC is built in mapHandlers and shared by middleware and routes
	auditUC audit.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   pkgJWT.IManager
	RedisClient  pkgRedis.IRedis
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Event stream Configuration (optional)
	KafkaProducer kafka.IProducer

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

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		redisClient:  cfg.RedisClient,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		// Event stream Configuration
		kafkaProducer: cfg.KafkaProducer,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
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

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// Kafka, Discord are optional

	return nil
}
