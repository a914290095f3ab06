package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	bookingserrors "eventhub/internal/bookings/errors"
	"eventhub/internal/bookings/repository"
	"eventhub/pkg/config"
	apperrors "eventhub/pkg/errors"
	"eventhub/pkg/kafka"
	"eventhub/pkg/model"
	"eventhub/pkg/sanitizer"
	"eventhub/pkg/storage"
	"eventhub/pkg/validator"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (string, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.Validator
	notifier  *kafka.Notifier
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.Validator,
	notifier *kafka.Notifier,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		notifier:  notifier,
		cfg:       cfg,
	}
}

// Create checks, in order: the payload schema, item_type, the item_id
// format, and that the referenced item exists. Nothing is written unless
// every check passes. The existence check and the insert are not atomic.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (string, error) {
	s.applyDefaults(booking)
	s.sanitize(booking)

	if err := s.validator.ValidateBooking(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return "", validator.AppError(err)
	}

	if _, ok := model.ItemCollection(booking.ItemType); !ok {
		return "", invalidItemType()
	}

	itemID, err := model.ParseID(booking.ItemID)
	if err != nil {
		return "", apperrors.Wrap(
			fmt.Errorf("%w: %v", bookingserrors.ErrInvalidItemID, err),
			apperrors.CodeInvalidInput,
			"Invalid item_id",
			http.StatusBadRequest,
		)
	}

	if err := s.verifyItemExists(ctx, booking.ItemType, itemID); err != nil {
		return "", err
	}

	id, err := s.repo.Create(ctx, booking)
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return "", storage.AppError(err, "Failed to create booking")
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", id.String(),
		"item_type", booking.ItemType,
		"item_id", booking.ItemID,
		"quantity", booking.Quantity,
	)
	s.notifier.Created(ctx, model.BookingCollection, id.String(), booking)

	return id.String(), nil
}

func (s *bookingService) verifyItemExists(ctx context.Context, itemType string, itemID model.ID) error {
	found, err := s.repo.ItemExists(ctx, itemType, itemID)
	if errors.Is(err, bookingserrors.ErrInvalidItemType) {
		return invalidItemType()
	}
	if err != nil {
		s.cfg.Log.Error("Failed to look up booked item", "item_type", itemType, "item_id", itemID.String(), "error", err)
		return storage.AppError(err, "Failed to verify booked item")
	}
	if !found {
		notFound := apperrors.NotFoundWithID(itemLabel(itemType), itemID.String())
		notFound.Err = bookingserrors.ErrItemNotFound
		return notFound
	}
	return nil
}

func invalidItemType() *apperrors.AppError {
	return apperrors.Wrap(
		bookingserrors.ErrInvalidItemType,
		apperrors.CodeInvalidInput,
		bookingserrors.ErrInvalidItemType.Error(),
		http.StatusBadRequest,
	)
}

func (s *bookingService) applyDefaults(b *model.Booking) {
	b.ID = ""
	b.Timestamps = model.Timestamps{}
	if b.Quantity == 0 {
		b.Quantity = 1
	}
}

// sanitize leaves item_type and item_id untouched; both are matched exactly.
func (s *bookingService) sanitize(b *model.Booking) {
	b.Name = sanitizer.TrimAndNormalize(b.Name)
	b.Email = sanitizer.NormalizeEmail(b.Email)
	b.Phone = sanitizer.NormalizePhone(b.Phone)
	b.Notes = strings.TrimSpace(b.Notes)
}

// itemLabel turns "event" into "Event" for not-found messages.
func itemLabel(itemType string) string {
	return strings.ToUpper(itemType[:1]) + itemType[1:]
}
