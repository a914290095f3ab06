package model

const EventCollection = "event"

type Event struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title" validate:"required,notblank,max=200"`
	Description string   `json:"description" bson:"description" validate:"max=5000"`
	Date        string   `json:"date" bson:"date"`
	Location    string   `json:"location" bson:"location" validate:"max=300"`
	Price       float64  `json:"price" bson:"price" validate:"gte=0"`
	Featured    bool     `json:"featured" bson:"featured"`
	ImageURL    string   `json:"image_url" bson:"image_url" validate:"omitempty,url"`
	Tags        []string `json:"tags" bson:"tags" validate:"max=50,dive,max=50"`

	Timestamps `bson:",inline"`
}

// EventFilter holds the optional list-events query parameters.
type EventFilter struct {
	Query    string
	Featured *bool
	Limit    int
}
