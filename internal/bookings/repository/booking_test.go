package repository

import (
	"context"
	"testing"

	bookingserrors "eventhub/internal/bookings/errors"
	"eventhub/pkg/model"
	"eventhub/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	existing   map[string]map[model.ID]bool
	collection string
	inserts    int
}

func (f *fakeStore) Insert(ctx context.Context, collection string, doc storage.Document) (model.ID, error) {
	f.collection = collection
	f.inserts++
	return model.NewID(), nil
}

func (f *fakeStore) Exists(ctx context.Context, collection string, id model.ID) (bool, error) {
	f.collection = collection
	return f.existing[collection][id], nil
}

func TestItemExists_UsesCollectionForType(t *testing.T) {
	eventID := model.NewID()
	serviceID := model.NewID()
	store := &fakeStore{existing: map[string]map[model.ID]bool{
		model.EventCollection:   {eventID: true},
		model.ServiceCollection: {serviceID: true},
	}}
	repo := NewMongoBookingRepository(store)
	ctx := context.Background()

	found, err := repo.ItemExists(ctx, model.ItemTypeEvent, eventID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.EventCollection, store.collection)

	found, err = repo.ItemExists(ctx, model.ItemTypeService, eventID)
	require.NoError(t, err)
	assert.False(t, found, "an event id does not satisfy a service booking")
	assert.Equal(t, model.ServiceCollection, store.collection)

	_, err = repo.ItemExists(ctx, "Event", eventID)
	assert.ErrorIs(t, err, bookingserrors.ErrInvalidItemType)
}

func TestCreate_WritesBookingCollection(t *testing.T) {
	store := &fakeStore{}
	booking := &model.Booking{ItemType: model.ItemTypeEvent}

	id, err := NewMongoBookingRepository(store).Create(context.Background(), booking)

	require.NoError(t, err)
	assert.Equal(t, model.BookingCollection, store.collection)
	assert.Equal(t, id.String(), booking.ID)
	assert.Equal(t, 1, store.inserts)
}
