// Package config reads the service settings from flags, falling back to
// environment variables and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverRedis    = "redis"
)

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Store           StoreConfig
	Kafka           KafkaConfig
	// Args holds the positional arguments left after the flags.
	Args []string
}

type StoreConfig struct {
	Driver   string
	Database string
	Postgres PostgresConfig
	MongoURI string
	RedisURL string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// ConnectionString returns a lib/pq URL.
func (c PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.User, c.Password, c.Host, c.Port, c.DBName)
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether vote events should be published.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// LoadEnv loads .env into the process environment. A missing file is not an error.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}

// Parse builds a Config from args. Every flag defaults to its environment variable.
func Parse(name string, args []string) (Config, error) {
	var cfg Config
	var brokers string

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&cfg.Addr, "addr", env("LISTEN_ADDR", "0.0.0.0:8080"), "HTTP listen address")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", envDuration("SHUTDOWN_TIMEOUT", 30*time.Second), "Graceful shutdown timeout")

	flags.StringVar(&cfg.Store.Driver, "store", env("STORE_DRIVER", DriverMemory), "Document store: memory, postgres, mongo or redis")
	flags.StringVar(&cfg.Store.Database, "database", env("DATABASE_NAME", "bayroudb"), "Database name")
	flags.StringVar(&cfg.Store.Postgres.Host, "db-host", os.Getenv("POSTGRES_HOST"), "Database host")
	flags.StringVar(&cfg.Store.Postgres.Port, "db-port", env("POSTGRES_PORT", "5432"), "Database port")
	flags.StringVar(&cfg.Store.Postgres.User, "db-user", os.Getenv("POSTGRES_USER"), "Database user")
	flags.StringVar(&cfg.Store.Postgres.Password, "db-pass", os.Getenv("POSTGRES_PASSWORD"), "Database password")
	flags.StringVar(&cfg.Store.Postgres.DBName, "db-name", os.Getenv("POSTGRES_DB"), "Postgres database name, defaults to -database")
	flags.StringVar(&cfg.Store.MongoURI, "mongo-uri", env("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	flags.StringVar(&cfg.Store.RedisURL, "redis-url", env("REDIS_URL", "redis://localhost:6379/0"), "Redis connection URL")

	flags.StringVar(&brokers, "kafka-brokers", os.Getenv("KAFKA_BROKERS"), "Comma separated Kafka brokers; empty disables vote events")
	flags.StringVar(&cfg.Kafka.Topic, "kafka-topic", env("KAFKA_TOPIC", "votes"), "Kafka topic for vote events")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Args = flags.Args()
	if cfg.Store.Postgres.DBName == "" {
		cfg.Store.Postgres.DBName = cfg.Store.Database
	}
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverMongo, DriverRedis:
	case DriverPostgres:
		if c.Store.Postgres.Host == "" {
			return errors.New("postgres store requires a database host")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return errors.New("kafka topic is required when brokers are set")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}
