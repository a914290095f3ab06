package errors

import "errors"

var (
	ErrInvalidItemType = errors.New("item_type must be 'event' or 'service'")

	ErrInvalidItemID = errors.New("invalid item_id")

	ErrItemNotFound = errors.New("booked item not found")
)
