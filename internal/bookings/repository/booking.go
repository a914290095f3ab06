package repository

import (
	"context"

	bookingserrors "eventhub/internal/bookings/errors"
	"eventhub/pkg/model"
	"eventhub/pkg/storage"
)

type Store interface {
	Insert(ctx context.Context, collection string, doc storage.Document) (model.ID, error)
	Exists(ctx context.Context, collection string, id model.ID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (model.ID, error)
	ItemExists(ctx context.Context, itemType string, itemID model.ID) (bool, error)
}

type mongoBookingRepository struct {
	store Store
}

func NewMongoBookingRepository(store Store) BookingRepository {
	return &mongoBookingRepository{store: store}
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) (model.ID, error) {
	id, err := r.store.Insert(ctx, model.BookingCollection, booking)
	if err != nil {
		return model.ID{}, err
	}
	booking.ID = id.String()
	return id, nil
}

// ItemExists reports whether itemID names a document in the collection for
// itemType.
func (r *mongoBookingRepository) ItemExists(ctx context.Context, itemType string, itemID model.ID) (bool, error) {
	collection, ok := model.ItemCollection(itemType)
	if !ok {
		return false, bookingserrors.ErrInvalidItemType
	}
	return r.store.Exists(ctx, collection, itemID)
}
