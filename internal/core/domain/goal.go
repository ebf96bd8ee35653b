package domain

import "time"

// Goal is a personal fitness target, always owned by exactly one user.
type Goal struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Target    float64   `json:"target" bson:"target"`
	Unit      string    `json:"unit" bson:"unit"`
	UserID    string    `json:"user_id" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
