package repository

import (
	"context"

	"eventhub/pkg/model"
	"eventhub/pkg/storage"
)

type Store interface {
	Insert(ctx context.Context, collection string, doc storage.Document) (model.ID, error)
	Find(ctx context.Context, collection string, filter *storage.Filter, limit int, results any) error
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *model.Service) (model.ID, error)
	Find(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error)
}

type mongoServiceRepository struct {
	store Store
}

func NewMongoServiceRepository(store Store) ServiceRepository {
	return &mongoServiceRepository{store: store}
}

func (r *mongoServiceRepository) Create(ctx context.Context, svc *model.Service) (model.ID, error) {
	id, err := r.store.Insert(ctx, model.ServiceCollection, svc)
	if err != nil {
		return model.ID{}, err
	}
	svc.ID = id.String()
	return id, nil
}

// Find matches name as a case-insensitive substring and category exactly.
func (r *mongoServiceRepository) Find(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	f := storage.NewFilter().Contains("name", filter.Query)
	if filter.Category != "" {
		f.Equals("category", filter.Category)
	}

	services := []*model.Service{}
	if err := r.store.Find(ctx, model.ServiceCollection, f, filter.Limit, &services); err != nil {
		return nil, err
	}
	return services, nil
}
