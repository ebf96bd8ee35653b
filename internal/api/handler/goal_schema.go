package handler

import "time"

type goalRequest struct {
	Name   string  `json:"name"   validate:"required"`
	Target float64 `json:"target" validate:"required,gt=0"`
	Unit   string  `json:"unit"   validate:"required"`
}

// goalResponse is the transport projection of a goal; it is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type goalResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Target    float64   `json:"target"`
	Unit      string    `json:"unit"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}
