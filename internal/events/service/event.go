package service

import (
	"context"

	"eventhub/internal/events/repository"
	"eventhub/pkg/config"
	"eventhub/pkg/kafka"
	"eventhub/pkg/model"
	"eventhub/pkg/sanitizer"
	"eventhub/pkg/storage"
	"eventhub/pkg/validator"
)

type EventService interface {
	Create(ctx context.Context, event *model.Event) (string, error)
	List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
}

type eventService struct {
	repo      repository.EventRepository
	validator *validator.Validator
	notifier  *kafka.Notifier
	cfg       *config.Config
}

func NewEventService(
	repo repository.EventRepository,
	validator *validator.Validator,
	notifier *kafka.Notifier,
	cfg *config.Config,
) EventService {
	return &eventService{
		repo:      repo,
		validator: validator,
		notifier:  notifier,
		cfg:       cfg,
	}
}

func (s *eventService) Create(ctx context.Context, event *model.Event) (string, error) {
	s.applyDefaults(event)

	if err := s.validator.ValidateEvent(event); err != nil {
		s.cfg.Log.Warn("Event validation failed", "error", err)
		return "", validator.AppError(err)
	}

	id, err := s.repo.Create(ctx, event)
	if err != nil {
		s.cfg.Log.Error("Failed to create event", "error", err)
		return "", storage.AppError(err, "Failed to create event")
	}

	s.cfg.Log.Info("Event created successfully",
		"id", id.String(),
		"title", event.Title,
		"featured", event.Featured,
	)
	s.notifier.Created(ctx, model.EventCollection, id.String(), event)

	return id.String(), nil
}

func (s *eventService) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	filter.Query = sanitizer.NormalizeQuery(filter.Query)
	filter.Limit = s.cfg.NormalizeListLimit(filter.Limit)

	events, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list events", "error", err)
		return nil, storage.AppError(err, "Failed to retrieve events")
	}
	if events == nil {
		events = []*model.Event{}
	}

	return events, nil
}

// applyDefaults discards any client-supplied identifier or timestamps and
// gives tags an empty array instead of null.
func (s *eventService) applyDefaults(event *model.Event) {
	event.ID = ""
	event.Timestamps = model.Timestamps{}
	if event.Tags == nil {
		event.Tags = []string{}
	}
}
