package service

import (
	"context"

	"eventhub/internal/services/repository"
	"eventhub/pkg/config"
	"eventhub/pkg/kafka"
	"eventhub/pkg/model"
	"eventhub/pkg/sanitizer"
	"eventhub/pkg/storage"
	"eventhub/pkg/validator"
)

type ServiceService interface {
	Create(ctx context.Context, svc *model.Service) (string, error)
	List(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error)
}

type serviceService struct {
	repo      repository.ServiceRepository
	validator *validator.Validator
	notifier  *kafka.Notifier
	cfg       *config.Config
}

func NewServiceService(
	repo repository.ServiceRepository,
	validator *validator.Validator,
	notifier *kafka.Notifier,
	cfg *config.Config,
) ServiceService {
	return &serviceService{
		repo:      repo,
		validator: validator,
		notifier:  notifier,
		cfg:       cfg,
	}
}

func (s *serviceService) Create(ctx context.Context, svc *model.Service) (string, error) {
	svc.ID = ""
	svc.Timestamps = model.Timestamps{}

	if err := s.validator.ValidateService(svc); err != nil {
		s.cfg.Log.Warn("Service validation failed", "error", err)
		return "", validator.AppError(err)
	}

	id, err := s.repo.Create(ctx, svc)
	if err != nil {
		s.cfg.Log.Error("Failed to create service", "error", err)
		return "", storage.AppError(err, "Failed to create service")
	}

	s.cfg.Log.Info("Service created successfully",
		"id", id.String(),
		"name", svc.Name,
		"category", svc.Category,
	)
	s.notifier.Created(ctx, model.ServiceCollection, id.String(), svc)

	return id.String(), nil
}

func (s *serviceService) List(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	filter.Query = sanitizer.NormalizeQuery(filter.Query)
	filter.Category = sanitizer.NormalizeQuery(filter.Category)
	filter.Limit = s.cfg.NormalizeListLimit(filter.Limit)

	services, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list services", "error", err)
		return nil, storage.AppError(err, "Failed to retrieve services")
	}
	if services == nil {
		services = []*model.Service{}
	}

	return services, nil
}
