package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"api-holiday-a99/aggregate"
	"api-holiday-a99/model"
)

const itineraryCollection = "itineraries"

// ItineraryStore is the CRUD accessor for the itineraries collection.
// All date-scoped queries filter on the dateString field only; sorting is
// done client-side so no compound index is needed.
type ItineraryStore struct {
	Client *firestore.Client
}

func (s *ItineraryStore) Add(ctx context.Context, it model.Itinerary) (string, error) {
	ref, _, err := s.Client.Collection(itineraryCollection).Add(ctx, it)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *ItineraryStore) Delete(ctx context.Context, id string) error {
	_, err := s.Client.Collection(itineraryCollection).Doc(id).Delete(ctx)
	return err
}

// ToggleStatus flips Pending <-> Done and returns the new status.
func (s *ItineraryStore) ToggleStatus(ctx context.Context, id, currentStatus string) (string, error) {
	newStatus := model.StatusDone
	if currentStatus == model.StatusDone {
		newStatus = model.StatusPending
	}
	_, err := s.Client.Collection(itineraryCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
	})
	return newStatus, err
}

// ListByDate returns one day's schedule sorted by start time.
func (s *ItineraryStore) ListByDate(ctx context.Context, dateString string) ([]model.Itinerary, error) {
	iter := s.Client.Collection(itineraryCollection).
		Where("dateString", "==", dateString).
		Documents(ctx)
	items, err := decodeAll(iter, itineraryID)
	if err != nil {
		return nil, err
	}
	aggregate.SortItinerariesByTime(items)
	return items, nil
}

// ListAll is the full unfiltered scan used by the dashboard timeline and the
// report.
func (s *ItineraryStore) ListAll(ctx context.Context) ([]model.Itinerary, error) {
	iter := s.Client.Collection(itineraryCollection).Documents(ctx)
	return decodeAll(iter, itineraryID)
}

// SubscribeByDate opens a live listener for one day. Every emission is the
// complete schedule for that day, sorted by start time.
func (s *ItineraryStore) SubscribeByDate(ctx context.Context, dateString string) (<-chan []model.Itinerary, func()) {
	q := s.Client.Collection(itineraryCollection).Where("dateString", "==", dateString)
	return watch(ctx, "itinerary", q, itineraryID, aggregate.SortItinerariesByTime)
}

func itineraryID(it *model.Itinerary, id string) { it.ID = id }
