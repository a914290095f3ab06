package model

import "time"

// Timestamps is embedded by every stored record. The storage gateway stamps
// both fields on insert; nothing in this system updates them afterwards.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (t *Timestamps) Stamp(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
}
