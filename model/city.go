package model

import "time"

// CreateCityPayload only carries the name; everything else is server-side.
type CreateCityPayload struct {
	Name string `json:"name" binding:"required"`
}

// City is a destination managed by the admin. Itineraries copy the name by
// value, so there is no foreign key back to this record.
type City struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}
