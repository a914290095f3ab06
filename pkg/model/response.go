package model

// CreatedResponse is returned by every create operation.
type CreatedResponse struct {
	ID string `json:"id"`
}
