package service

import (
	"context"

	"eventhub/pkg/config"
	"eventhub/pkg/kafka"
	"eventhub/pkg/model"
	"eventhub/pkg/storage"
)

type Store interface {
	Count(ctx context.Context, collection string) (int64, error)
	Insert(ctx context.Context, collection string, doc storage.Document) (model.ID, error)
}

type Result struct {
	Events   int `json:"events"`
	Services int `json:"services"`
}

type SeedService interface {
	Seed(ctx context.Context) (Result, error)
}

type seedService struct {
	store    Store
	notifier *kafka.Notifier
	cfg      *config.Config
}

func NewSeedService(store Store, notifier *kafka.Notifier, cfg *config.Config) SeedService {
	return &seedService{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
	}
}

// Seed fills each of the event and service collections with sample records
// only when that collection is empty. A collection holding any document is
// left alone, so an interrupted earlier seed is never topped up.
func (s *seedService) Seed(ctx context.Context) (Result, error) {
	var result Result

	events := sampleEvents()
	docs := make([]storage.Document, len(events))
	for i, e := range events {
		docs[i] = e
	}
	n, err := s.seedCollection(ctx, model.EventCollection, docs)
	result.Events = n
	if err != nil {
		return result, err
	}

	services := sampleServices()
	docs = make([]storage.Document, len(services))
	for i, svc := range services {
		docs[i] = svc
	}
	n, err = s.seedCollection(ctx, model.ServiceCollection, docs)
	result.Services = n
	if err != nil {
		return result, err
	}

	s.cfg.Log.Info("Seed completed", "events_created", result.Events, "services_created", result.Services)
	return result, nil
}

func (s *seedService) seedCollection(ctx context.Context, collection string, docs []storage.Document) (int, error) {
	count, err := s.store.Count(ctx, collection)
	if err != nil {
		s.cfg.Log.Error("Failed to count collection for seeding", "collection", collection, "error", err)
		return 0, storage.AppError(err, "Failed to seed "+collection)
	}
	if count > 0 {
		s.cfg.Log.Debug("Collection already populated, skipping seed", "collection", collection, "count", count)
		return 0, nil
	}

	created := 0
	for _, doc := range docs {
		id, err := s.store.Insert(ctx, collection, doc)
		if err != nil {
			s.cfg.Log.Error("Failed to insert seed record", "collection", collection, "created", created, "error", err)
			return created, storage.AppError(err, "Failed to seed "+collection)
		}
		created++
		s.notifier.Created(ctx, collection, id.String(), doc)
	}
	return created, nil
}
