package config

import "time"

const (
	DefaultDatabaseName        = "events_services"
	DefaultDatabaseConnTimeout = 10 * time.Second
	DefaultStorageTimeout      = 5 * time.Second

	DefaultPort     = "8000"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 10 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultListLimit    = 50
	DefaultMaxListLimit = 500

	DefaultKafkaTopic          = "catalog.changes"
	DefaultKafkaPublishTimeout = 5 * time.Second
)
