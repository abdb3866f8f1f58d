// Package config loads the service configuration from the environment,
// optionally pre-populated from a .env style file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Seed sources
const (
	SeedStatic   = "static"
	SeedFile     = "file"
	SeedPostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Seed      SeedConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Exchanger ExchangerConfig
	Rates     RatesConfig
}

type AppConfig struct {
	Host            string        `envconfig:"APP_HOST" default:"localhost"`
	Port            string        `envconfig:"APP_PORT" default:"8080"`
	LogLevel        string        `envconfig:"APP_LOG_LEVEL" default:"info"`
	LogEncoding     string        `envconfig:"APP_LOG_ENCODING" default:"json"`
	ShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"10s"`
}

type SeedConfig struct {
	Source string `envconfig:"SEED_SOURCE" default:"static"`
	File   string `envconfig:"SEED_FILE"`
}

type PostgresConfig struct {
	Host         string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port         int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User         string `envconfig:"POSTGRES_USER" default:"user"`
	Password     string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	DB           string `envconfig:"POSTGRES_DB" default:"ledger"`
	MaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"16"`
	MaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"8"`
	Migrate      bool   `envconfig:"POSTGRES_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Enabled      bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host         string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port         int           `envconfig:"REDIS_PORT" default:"6379"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	Channel      string        `envconfig:"REDIS_CHANNEL" default:"ledger:notifications"`
	RateCacheTTL time.Duration `envconfig:"REDIS_RATE_CACHE_TTL" default:"1h"`
}

type KafkaConfig struct {
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"ledger-notifications"`
}

type ExchangerConfig struct {
	Enabled   bool          `envconfig:"GW_EXCHANGER_ENABLED" default:"false"`
	Host      string        `envconfig:"GW_EXCHANGER_HOST" default:"localhost"`
	Port      string        `envconfig:"GW_EXCHANGER_PORT" default:"50051"`
	RatePairs []string      `envconfig:"GW_EXCHANGER_RATE_PAIRS"`
	Timeout   time.Duration `envconfig:"GW_EXCHANGER_TIMEOUT" default:"5s"`
}

type RatesConfig struct {
	JitterSpread decimal.Decimal `envconfig:"RATE_JITTER_SPREAD" default:"0.01"`
	JitterSeed   uint64          `envconfig:"RATE_JITTER_SEED" default:"0"` // 0 uses an auto-seeded source
}

// Load reads path (a missing file is not an error) and then the environment.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot express.
func (c *Config) Validate() error {
	var errs []error
	switch c.Seed.Source {
	case SeedStatic, SeedPostgres:
	case SeedFile:
		if c.Seed.File == "" {
			errs = append(errs, errors.New("SEED_FILE is required when SEED_SOURCE=file"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown SEED_SOURCE %q", c.Seed.Source))
	}
	if c.Rates.JitterSpread.IsNegative() {
		errs = append(errs, errors.New("RATE_JITTER_SPREAD must not be negative"))
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED=true"))
	}
	return errors.Join(errs...)
}

// Addr is the HTTP listen address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// Addr is the Redis address.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Addr is the exchanger gRPC address.
func (e ExchangerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", e.Host, e.Port)
}
