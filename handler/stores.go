package handler

import (
	"context"
	"io"

	"api-holiday-a99/model"
	"api-holiday-a99/store"
)

// Store contracts consumed by the handlers. The concrete implementations
// live in the store package; tests swap in fakes.

type CityStore interface {
	Add(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.City, error)
	Subscribe(ctx context.Context) (<-chan []model.City, func())
}

type ItineraryStore interface {
	Add(ctx context.Context, it model.Itinerary) (string, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id, currentStatus string) (string, error)
	ListByDate(ctx context.Context, dateString string) ([]model.Itinerary, error)
	ListAll(ctx context.Context) ([]model.Itinerary, error)
	SubscribeByDate(ctx context.Context, dateString string) (<-chan []model.Itinerary, func())
}

type ExpenseStore interface {
	Add(ctx context.Context, e model.Expense) (string, error)
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, dateString string) ([]model.Expense, error)
	ListAll(ctx context.Context) ([]model.Expense, error)
	SubscribeByDate(ctx context.Context, dateString string) (<-chan []model.Expense, func())
}

type FileStore interface {
	Upload(ctx context.Context, r io.Reader, in store.UploadInput) (model.FileAsset, error)
	Delete(ctx context.Context, id, storagePath string) error
	ListByDate(ctx context.Context, dateString string) ([]model.FileAsset, error)
	SubscribeByDate(ctx context.Context, dateString string) (<-chan []model.FileAsset, func())
}

type ConfigStore interface {
	Get(ctx context.Context) (model.AppConfig, error)
	Set(ctx context.Context, cfg model.AppConfig) error
}

var (
	_ CityStore      = (*store.CityStore)(nil)
	_ ItineraryStore = (*store.ItineraryStore)(nil)
	_ ExpenseStore   = (*store.ExpenseStore)(nil)
	_ FileStore      = (*store.FileStore)(nil)
	_ ConfigStore    = (*store.ConfigStore)(nil)
)
