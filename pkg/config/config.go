package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"eventhub/pkg/logger"
	"eventhub/pkg/sanitizer"
)

var (
	databaseURLRegex = regexp.MustCompile(`^mongodb(\+srv)?://`)
	credentialRegex  = regexp.MustCompile(`(mongodb(\+srv)?://)[^:/@]+:[^@]+@`)
)

type Config struct {
	DatabaseURL         string
	DatabaseName        string
	DatabaseConnTimeout time.Duration
	StorageTimeout      time.Duration

	Port     string
	LogLevel string

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	DefaultListLimit int
	MaxListLimit     int

	KafkaBrokers        []string
	KafkaTopic          string
	KafkaPublishTimeout time.Duration

	Log *logger.Logger
}

// Load reads the configuration from the environment. It does not validate;
// call Validate before using the result.
func Load(serviceName string) *Config {
	cfg := &Config{
		DatabaseURL:         getEnvStr(EnvDatabaseURL, ""),
		DatabaseName:        getEnvStr(EnvDatabaseName, DefaultDatabaseName),
		DatabaseConnTimeout: getEnvDuration(EnvDatabaseConnTimeout, DefaultDatabaseConnTimeout),
		StorageTimeout:      getEnvDuration(EnvStorageTimeout, DefaultStorageTimeout),

		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		DefaultListLimit: getEnvNum(EnvDefaultListLimit, DefaultListLimit),
		MaxListLimit:     getEnvNum(EnvMaxListLimit, DefaultMaxListLimit),

		KafkaBrokers:        getEnvList(EnvKafkaBrokers),
		KafkaTopic:          getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),
		KafkaPublishTimeout: getEnvDuration(EnvKafkaPublishTimeout, DefaultKafkaPublishTimeout),
	}

	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})

	return cfg
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	// An empty URL is allowed: the store stays disabled and requests fail closed.
	if cfg.DatabaseURL != "" && !databaseURLRegex.MatchString(cfg.DatabaseURL) {
		errors = append(errors, fmt.Sprintf("DatabaseURL must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactDatabaseURL(cfg.DatabaseURL)))
	}
	if cfg.DatabaseName == "" {
		errors = append(errors, "DatabaseName cannot be empty")
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"DatabaseConnTimeout", cfg.DatabaseConnTimeout},
		{"StorageTimeout", cfg.StorageTimeout},
		{"RequestTimeout", cfg.RequestTimeout},
		{"IdempotencyTTL", cfg.IdempotencyTTL},
		{"ReadTimeout", cfg.ReadTimeout},
		{"WriteTimeout", cfg.WriteTimeout},
		{"IdleTimeout", cfg.IdleTimeout},
		{"ShutdownTimeout", cfg.ShutdownTimeout},
		{"KafkaPublishTimeout", cfg.KafkaPublishTimeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errors = append(errors, fmt.Sprintf("%s must be positive, got: %s", d.name, d.value))
		}
	}

	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.DefaultListLimit <= 0 {
		errors = append(errors, fmt.Sprintf("DefaultListLimit must be positive, got: %d", cfg.DefaultListLimit))
	}
	if cfg.MaxListLimit < cfg.DefaultListLimit {
		errors = append(errors, fmt.Sprintf("MaxListLimit (%d) must be >= DefaultListLimit (%d)", cfg.MaxListLimit, cfg.DefaultListLimit))
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic == "" {
		errors = append(errors, "KafkaTopic cannot be empty when KafkaBrokers is set")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"database_url", redactDatabaseURL(cfg.DatabaseURL),
		"database_name", cfg.DatabaseName,
		"database_conn_timeout", cfg.DatabaseConnTimeout,
		"storage_timeout", cfg.StorageTimeout,
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"default_list_limit", cfg.DefaultListLimit,
		"max_list_limit", cfg.MaxListLimit,
		"kafka_brokers", cfg.KafkaBrokers,
		"kafka_topic", cfg.KafkaTopic,
		"kafka_publish_timeout", cfg.KafkaPublishTimeout,
	)
}

// NormalizeListLimit maps a requested limit onto [1, MaxListLimit]; a
// non-positive request falls back to DefaultListLimit.
func (cfg *Config) NormalizeListLimit(limit int) int {
	if limit <= 0 {
		return cfg.DefaultListLimit
	}
	if limit > cfg.MaxListLimit {
		return cfg.MaxListLimit
	}
	return limit
}

func redactDatabaseURL(uri string) string {
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	return sanitizer.NormalizeStringSlice(strings.Split(value, ","), strings.TrimSpace)
}
