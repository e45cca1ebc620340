package model

import "time"

// Location types a trip activity can have.
const (
	LocationWisata  = "Wisata"
	LocationKuliner = "Kuliner"
	LocationHotel   = "Hotel"
	LocationLainnya = "Lainnya"
)

// Itinerary status is a two-state flag, toggled from the day detail page.
const (
	StatusPending = "Pending"
	StatusDone    = "Done"
)

// CreateItineraryPayload is the data the app sends when adding an activity
// to a specific day. Date fields are not part of the payload because the
// server derives them from the day being edited.
type CreateItineraryPayload struct {
	TimeStart    string `json:"time_start" binding:"required"`
	ActivityName string `json:"activity_name" binding:"required"`
	CityName     string `json:"city_name" binding:"required"`
	LocationType string `json:"location_type" binding:"required,oneof=Wisata Kuliner Hotel Lainnya"`
	MapsLink     string `json:"maps_link"`
	Notes        string `json:"notes"`
}

// Itinerary is one scheduled activity as stored in Firestore.
// CityName is a copy of the city's name at creation time, on purpose:
// renaming or deleting a city must not rewrite the existing schedule.
type Itinerary struct {
	ID           string    `json:"id" firestore:"-"`
	Date         time.Time `json:"date" firestore:"date"`
	DateString   string    `json:"dateString" firestore:"dateString"`
	TimeStart    string    `json:"time_start" firestore:"time_start"`
	ActivityName string    `json:"activity_name" firestore:"activity_name"`
	CityName     string    `json:"city_name" firestore:"city_name"`
	LocationType string    `json:"location_type" firestore:"location_type"`
	Status       string    `json:"status" firestore:"status"`
	MapsLink     string    `json:"maps_link" firestore:"maps_link"`
	Notes        string    `json:"notes" firestore:"notes"`
}
