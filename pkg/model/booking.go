package model

const BookingCollection = "booking"

const (
	ItemTypeEvent   = "event"
	ItemTypeService = "service"
)

type Booking struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	ItemType string `json:"item_type" bson:"item_type" validate:"required"`
	ItemID   string `json:"item_id" bson:"item_id" validate:"required"`
	Name     string `json:"name" bson:"name" validate:"required,notblank,max=200"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Phone    string `json:"phone" bson:"phone" validate:"max=32"`
	Quantity int    `json:"quantity" bson:"quantity" validate:"gte=1,lte=1000"`
	Notes    string `json:"notes" bson:"notes" validate:"max=2000"`

	Timestamps `bson:",inline"`
}

// ItemCollection maps a booking item type onto the collection holding the
// referenced document. The second result is false for unknown types.
func ItemCollection(itemType string) (string, bool) {
	switch itemType {
	case ItemTypeEvent:
		return EventCollection, true
	case ItemTypeService:
		return ServiceCollection, true
	default:
		return "", false
	}
}
