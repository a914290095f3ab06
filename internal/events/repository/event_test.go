package repository

import (
	"context"
	"testing"

	"eventhub/pkg/model"
	"eventhub/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	id         model.ID
	insertErr  error
	inserted   []storage.Document
	collection string
	filter     *storage.Filter
	limit      int
}

func (f *fakeStore) Insert(ctx context.Context, collection string, doc storage.Document) (model.ID, error) {
	f.collection = collection
	if f.insertErr != nil {
		return model.ID{}, f.insertErr
	}
	f.inserted = append(f.inserted, doc)
	return f.id, nil
}

func (f *fakeStore) Find(ctx context.Context, collection string, filter *storage.Filter, limit int, results any) error {
	f.collection = collection
	f.filter = filter
	f.limit = limit
	return nil
}

func TestCreate_AssignsID(t *testing.T) {
	store := &fakeStore{id: model.NewID()}
	repo := NewMongoEventRepository(store)

	event := &model.Event{Title: "Summer Music Fest"}
	id, err := repo.Create(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, model.EventCollection, store.collection)
	assert.Equal(t, store.id, id)
	assert.Equal(t, id.String(), event.ID)
}

func TestFind_BuildsFilter(t *testing.T) {
	featured := true

	tests := []struct {
		name   string
		filter model.EventFilter
		want   bson.D
	}{
		{
			name:   "no parameters matches everything",
			filter: model.EventFilter{Limit: 50},
			want:   bson.D{},
		},
		{
			name:   "query matches title case-insensitively",
			filter: model.EventFilter{Query: "tech", Limit: 50},
			want:   bson.D{{Key: "title", Value: primitive.Regex{Pattern: "tech", Options: "i"}}},
		},
		{
			name:   "featured is an exact match",
			filter: model.EventFilter{Query: "fest", Featured: &featured, Limit: 10},
			want: bson.D{
				{Key: "title", Value: primitive.Regex{Pattern: "fest", Options: "i"}},
				{Key: "featured", Value: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			events, err := NewMongoEventRepository(store).Find(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.NotNil(t, events)
			assert.Empty(t, events)
			assert.Equal(t, model.EventCollection, store.collection)
			assert.Equal(t, tt.filter.Limit, store.limit)
			assert.Equal(t, tt.want, store.filter.BSON())
		})
	}
}
