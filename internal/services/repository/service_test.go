package repository

import (
	"context"
	"errors"
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
	err        error
	collection string
	filter     *storage.Filter
	limit      int
}

func (f *fakeStore) Insert(ctx context.Context, collection string, doc storage.Document) (model.ID, error) {
	f.collection = collection
	return f.id, f.err
}

func (f *fakeStore) Find(ctx context.Context, collection string, filter *storage.Filter, limit int, results any) error {
	f.collection = collection
	f.filter = filter
	f.limit = limit
	return f.err
}

func TestCreate(t *testing.T) {
	store := &fakeStore{id: model.NewID()}
	svc := &model.Service{Name: "DJ & Sound"}

	id, err := NewMongoServiceRepository(store).Create(context.Background(), svc)

	require.NoError(t, err)
	assert.Equal(t, model.ServiceCollection, store.collection)
	assert.Equal(t, id.String(), svc.ID)
}

func TestCreate_Error(t *testing.T) {
	store := &fakeStore{err: storage.ErrUnavailable}
	svc := &model.Service{Name: "DJ & Sound"}

	_, err := NewMongoServiceRepository(store).Create(context.Background(), svc)

	assert.ErrorIs(t, err, storage.ErrUnavailable)
	assert.Empty(t, svc.ID)
}

func TestFind_BuildsFilter(t *testing.T) {
	store := &fakeStore{}
	repo := NewMongoServiceRepository(store)

	_, err := repo.Find(context.Background(), model.ServiceFilter{Query: "dj", Category: "Entertainment", Limit: 50})
	require.NoError(t, err)

	assert.Equal(t, model.ServiceCollection, store.collection)
	assert.Equal(t, 50, store.limit)
	assert.Equal(t, bson.D{
		{Key: "name", Value: primitive.Regex{Pattern: "dj", Options: "i"}},
		{Key: "category", Value: "Entertainment"},
	}, store.filter.BSON())
}

func TestFind_Error(t *testing.T) {
	store := &fakeStore{err: errors.New("cursor failed")}
	services, err := NewMongoServiceRepository(store).Find(context.Background(), model.ServiceFilter{})

	assert.Error(t, err)
	assert.Nil(t, services)
}
