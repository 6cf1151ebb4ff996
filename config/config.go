package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Bundles, snapshots, intents, preferences
	Postgres PostgresConfig

	// Redis - Snapshot and risk summary caching
	Redis RedisConfig

	// MinIO - CSV export storage
	MinIO MinIOConfig

	// Kafka - Event streaming
	Kafka KafkaConfig

	// Upstream services
	Debank  DebankConfig
	Quant   QuantConfig
	Account AccountConfig
	Intent  IntentConfig
	Notify  NotifyConfig

	// JWT - Authentication
	JWT       JWTConfig
	Encrypter EncrypterConfig

	// CORS
	CORS CORSConfig

	// Consumer - Background event processing
	Consumer ConsumerConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UseSSL       bool
	Region       string
	ExportBucket string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// DebankConfig is the configuration for the DeFi portfolio aggregator.
type DebankConfig struct {
	URL       string
	AccessKey string
	Timeout   int // in seconds
}

// QuantConfig is the configuration for the quant risk engine.
type QuantConfig struct {
	URL     string
	Timeout int // in seconds
}

// AccountConfig is the configuration for the account service.
type AccountConfig struct {
	URL     string
	Timeout int // in seconds
}

// IntentConfig is the configuration for the intent execution service.
type IntentConfig struct {
	URL     string
	APIKey  string
	Timeout int // in seconds
}

// NotifyConfig is the configuration for the notification dispatch service.
type NotifyConfig struct {
	URL     string
	APIKey  string
	Timeout int // in seconds
}

// JWTConfig is used to verify tokens (same secret/issuer as auth service). This service does not issue tokens.
type JWTConfig struct {
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// EncrypterConfig is the configuration for the encrypter
type EncrypterConfig struct {
	Key string
}

// CORSConfig is the configuration for cross-origin requests.
type CORSConfig struct {
	AllowedOrigins []string
}

// ConsumerConfig is the configuration for the background consumer.
type ConsumerConfig struct {
	SnapshotRefreshInterval int // in seconds; 0 disables periodic refresh
	IntentPollInterval      int // in seconds; 0 disables status polling
	SnapshotRetentionDays   int // snapshots older than this are pruned
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("portfolio-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/portfolio/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.ExportBucket = viper.GetString("minio.export_bucket")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// Upstream services
	cfg.Debank.URL = viper.GetString("debank.url")
	cfg.Debank.AccessKey = viper.GetString("debank.access_key")
	cfg.Debank.Timeout = viper.GetInt("debank.timeout")
	cfg.Quant.URL = viper.GetString("quant.url")
	cfg.Quant.Timeout = viper.GetInt("quant.timeout")
	cfg.Account.URL = viper.GetString("account.url")
	cfg.Account.Timeout = viper.GetInt("account.timeout")
	cfg.Intent.URL = viper.GetString("intent.url")
	cfg.Intent.APIKey = viper.GetString("intent.api_key")
	cfg.Intent.Timeout = viper.GetInt("intent.timeout")
	cfg.Notify.URL = viper.GetString("notify.url")
	cfg.Notify.APIKey = viper.GetString("notify.api_key")
	cfg.Notify.Timeout = viper.GetInt("notify.timeout")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Encrypter
	cfg.Encrypter.Key = viper.GetString("encrypter.key")

	// CORS
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")

	// Consumer
	cfg.Consumer.SnapshotRefreshInterval = viper.GetInt("consumer.snapshot_refresh_interval")
	cfg.Consumer.IntentPollInterval = viper.GetInt("consumer.intent_poll_interval")
	cfg.Consumer.SnapshotRetentionDays = viper.GetInt("consumer.snapshot_retention_days")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. PostgreSQL (schema: portfolio)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "portfolio")

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 3. MinIO (bucket: portfolio-exports)
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.export_bucket", "portfolio-exports")

	// 4. Kafka (topic: portfolio.events)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "portfolio.events")
	viper.SetDefault("kafka.group_id", "portfolio-srv")

	// 5. Upstream services
	viper.SetDefault("debank.url", "https://pro-openapi.debank.com")
	viper.SetDefault("debank.timeout", 8)
	viper.SetDefault("quant.url", "http://quant-srv:8080")
	viper.SetDefault("quant.timeout", 10)
	viper.SetDefault("account.url", "http://account-srv:8080")
	viper.SetDefault("account.timeout", 8)
	viper.SetDefault("intent.url", "http://intent-srv:8080")
	viper.SetDefault("intent.timeout", 10)
	viper.SetDefault("notify.url", "http://notify-srv:8080")
	viper.SetDefault("notify.timeout", 10)

	// JWT
	viper.SetDefault("jwt.issuer", "account-srv")
	viper.SetDefault("jwt.audience", []string{"portfolio-srv"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	// CORS
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	// Consumer
	viper.SetDefault("consumer.snapshot_refresh_interval", 900) // 15 minutes
	viper.SetDefault("consumer.intent_poll_interval", 30)
	viper.SetDefault("consumer.snapshot_retention_days", 365)
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}

	// Validate Encrypter
	if cfg.Encrypter.Key == "" {
		return fmt.Errorf("encrypter.key is required")
	}
	if len(cfg.Encrypter.Key) < 32 {
		return fmt.Errorf("encrypter.key must be at least 32 characters for security")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate MinIO Configuration
	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}

	// Validate upstream services
	if cfg.Debank.URL == "" {
		return fmt.Errorf("debank.url is required")
	}
	if cfg.Debank.AccessKey == "" {
		return fmt.Errorf("debank.access_key is required")
	}
	if cfg.Quant.URL == "" {
		return fmt.Errorf("quant.url is required")
	}
	if cfg.Intent.URL == "" {
		return fmt.Errorf("intent.url is required")
	}
	if cfg.Notify.URL == "" {
		return fmt.Errorf("notify.url is required")
	}

	return nil
}
