package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Audit     AuditConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig verifies tokens minted by the external identity provider.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER"`
}

type AuditConfig struct {
	BufferSize int `envconfig:"AUDIT_BUFFER_SIZE" default:"1024"`
	Kafka      KafkaConfig
	S3         S3Config
}

// Kafka streaming is enabled when at least one broker is set.
type KafkaConfig struct {
	Brokers      []string      `envconfig:"AUDIT_KAFKA_BROKERS"`
	Topic        string        `envconfig:"AUDIT_KAFKA_TOPIC" default:"promotion-audit"`
	WriteTimeout time.Duration `envconfig:"AUDIT_KAFKA_WRITE_TIMEOUT" default:"10s"`
}

// S3 archiving is enabled when a bucket is set.
type S3Config struct {
	Bucket        string        `envconfig:"AUDIT_S3_BUCKET"`
	Prefix        string        `envconfig:"AUDIT_S3_PREFIX" default:"badge-engine"`
	FlushInterval time.Duration `envconfig:"AUDIT_S3_FLUSH_INTERVAL" default:"1m"`
}

type TelemetryConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"true"`
	Endpoint    string `envconfig:"OTEL_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"badge-promotion-engine"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

func (c S3Config) Enabled() bool { return c.Bucket != "" }

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadMigrationConfig reads only what the migration tool needs.
func LoadMigrationConfig() (DBConfig, LogConfig, error) {
	var db DBConfig
	if err := envconfig.Process("", &db); err != nil {
		return DBConfig{}, LogConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	var log LogConfig
	if err := envconfig.Process("", &log); err != nil {
		return DBConfig{}, LogConfig{}, fmt.Errorf("failed to process log env config: %w", err)
	}
	return db, log, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret-for-badge-engine",
		},
		Audit: AuditConfig{
			BufferSize: 16,
		},
	}
}
