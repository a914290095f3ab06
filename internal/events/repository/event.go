package repository

import (
	"context"

	"eventhub/pkg/model"
	"eventhub/pkg/storage"
)

// Store is the slice of the storage gateway this repository needs.
type Store interface {
	Insert(ctx context.Context, collection string, doc storage.Document) (model.ID, error)
	Find(ctx context.Context, collection string, filter *storage.Filter, limit int, results any) error
}

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (model.ID, error)
	Find(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
}

type mongoEventRepository struct {
	store Store
}

func NewMongoEventRepository(store Store) EventRepository {
	return &mongoEventRepository{store: store}
}

func (r *mongoEventRepository) Create(ctx context.Context, event *model.Event) (model.ID, error) {
	id, err := r.store.Insert(ctx, model.EventCollection, event)
	if err != nil {
		return model.ID{}, err
	}
	event.ID = id.String()
	return id, nil
}

func (r *mongoEventRepository) Find(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	f := storage.NewFilter().Contains("title", filter.Query)
	if filter.Featured != nil {
		f.Equals("featured", *filter.Featured)
	}

	events := []*model.Event{}
	if err := r.store.Find(ctx, model.EventCollection, f, filter.Limit, &events); err != nil {
		return nil, err
	}
	return events, nil
}
