package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"api-holiday-a99/aggregate"
	"api-holiday-a99/model"
)

const cityCollection = "cities"

// CityStore is the CRUD accessor for the cities collection. Cities are only
// created and deleted, never updated.
type CityStore struct {
	Client *firestore.Client
}

// Add stores a city with just its name and a creation timestamp.
func (s *CityStore) Add(ctx context.Context, name string) (string, error) {
	ref, _, err := s.Client.Collection(cityCollection).Add(ctx, map[string]interface{}{
		"name":       name,
		"created_at": time.Now(),
	})
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *CityStore) Delete(ctx context.Context, id string) error {
	_, err := s.Client.Collection(cityCollection).Doc(id).Delete(ctx)
	return err
}

// List returns all cities sorted A-Z.
func (s *CityStore) List(ctx context.Context) ([]model.City, error) {
	iter := s.Client.Collection(cityCollection).Documents(ctx)
	items, err := decodeAll(iter, cityID)
	if err != nil {
		return nil, err
	}
	aggregate.SortCities(items)
	return items, nil
}

// Subscribe opens a live listener on the whole collection, sorted A-Z.
func (s *CityStore) Subscribe(ctx context.Context) (<-chan []model.City, func()) {
	q := s.Client.Collection(cityCollection).Query
	return watch(ctx, "city", q, cityID, aggregate.SortCities)
}

func cityID(c *model.City, id string) { c.ID = id }
