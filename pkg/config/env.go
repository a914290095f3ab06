package config

const (
	EnvDatabaseURL         = "DATABASE_URL"
	EnvDatabaseName        = "DATABASE_NAME"
	EnvDatabaseConnTimeout = "DATABASE_CONN_TIMEOUT"
	EnvStorageTimeout      = "STORAGE_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvDefaultListLimit = "DEFAULT_LIST_LIMIT"
	EnvMaxListLimit     = "MAX_LIST_LIMIT"

	EnvKafkaBrokers        = "KAFKA_BROKERS"
	EnvKafkaTopic          = "KAFKA_TOPIC"
	EnvKafkaPublishTimeout = "KAFKA_PUBLISH_TIMEOUT"
)
