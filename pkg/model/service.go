package model

const ServiceCollection = "service"

// Service is a bookable offering such as catering or a DJ set.
// DurationMinutes of 0 means the service is not time-boxed.
type Service struct {
	ID              string  `json:"id" bson:"_id,omitempty"`
	Name            string  `json:"name" bson:"name" validate:"required,notblank,max=200"`
	Description     string  `json:"description" bson:"description" validate:"max=5000"`
	Price           float64 `json:"price" bson:"price" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" bson:"duration_minutes" validate:"gte=0"`
	ImageURL        string  `json:"image_url" bson:"image_url" validate:"omitempty,url"`
	Category        string  `json:"category" bson:"category" validate:"max=100"`

	Timestamps `bson:",inline"`
}

type ServiceFilter struct {
	Query    string
	Category string
	Limit    int
}
