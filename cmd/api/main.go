package main

import (
	"context"

	bookinghandler "eventhub/internal/bookings/handler"
	bookingrepository "eventhub/internal/bookings/repository"
	bookingservice "eventhub/internal/bookings/service"
	diagnostics "eventhub/internal/diagnostics/handler"
	eventhandler "eventhub/internal/events/handler"
	eventrepository "eventhub/internal/events/repository"
	eventservice "eventhub/internal/events/service"
	seedhandler "eventhub/internal/seed/handler"
	seedservice "eventhub/internal/seed/service"
	servicehandler "eventhub/internal/services/handler"
	servicerepository "eventhub/internal/services/repository"
	serviceservice "eventhub/internal/services/service"
	"eventhub/pkg/app"
	"eventhub/pkg/config"
	"eventhub/pkg/contracts"
	"eventhub/pkg/kafka"
	"eventhub/pkg/storage"
	"eventhub/pkg/validator"
)

const ServiceName = "events-services-api"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()

	cfg.Log.Info("Starting Events & Services API")

	gateway, err := storage.Connect(context.Background(), cfg.Log, cfg.DatabaseURL, cfg.DatabaseName, cfg.DatabaseConnTimeout, cfg.StorageTimeout)
	if err != nil {
		cfg.Log.Error("Database unavailable, requests that need storage will fail", "error", err)
	}

	publisher := initPublisher(cfg)
	notifier := kafka.NewNotifier(publisher, ServiceName, cfg.Log).WithPublishTimeout(cfg.KafkaPublishTimeout)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		diagnostics.NewHealthHandler(gateway, cfg.Log),
		initHandlers(cfg, gateway, notifier)...,
	)
	serverApp.OnShutdown("change feed", notifier.Drain)
	serverApp.OnShutdown("kafka producer", func(context.Context) error {
		return publisher.Close()
	})
	serverApp.OnShutdown("database", gateway.Disconnect)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) kafka.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, change feed disabled")
		return kafka.NoopPublisher{}
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)
	if err != nil {
		cfg.Log.Error("Failed to create Kafka producer, change feed disabled", "error", err)
		return kafka.NoopPublisher{}
	}

	cfg.Log.Info("Kafka change feed enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return producer
}

func initHandlers(cfg *config.Config, gateway *storage.Gateway, notifier *kafka.Notifier) []contracts.Handler {
	schemaValidator := validator.New(cfg.Log)

	events := eventservice.NewEventService(
		eventrepository.NewMongoEventRepository(gateway),
		schemaValidator,
		notifier,
		cfg,
	)
	services := serviceservice.NewServiceService(
		servicerepository.NewMongoServiceRepository(gateway),
		schemaValidator,
		notifier,
		cfg,
	)
	bookings := bookingservice.NewBookingService(
		bookingrepository.NewMongoBookingRepository(gateway),
		schemaValidator,
		notifier,
		cfg,
	)
	seed := seedservice.NewSeedService(gateway, notifier, cfg)

	cfg.Log.Info("Services initialized", "database", cfg.DatabaseName, "storage_available", gateway.Available())

	return []contracts.Handler{
		diagnostics.NewDiagnosticsHandler(gateway, cfg.DatabaseURL != "", cfg.Log),
		eventhandler.NewEventHandler(events, cfg),
		servicehandler.NewServiceHandler(services, cfg),
		bookinghandler.NewBookingHandler(bookings, cfg.Log),
		seedhandler.NewSeedHandler(seed, cfg.Log),
	}
}
