package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"api-holiday-a99/model"
)

const (
	configCollection = "config"
	configDocID      = "app_settings"
)

// ConfigStore reads and writes the singleton settings document.
type ConfigStore struct {
	Client *firestore.Client
}

// Get returns the app settings, defaulting to a zero budget when the
// document does not exist yet.
func (s *ConfigStore) Get(ctx context.Context) (model.AppConfig, error) {
	doc, err := s.Client.Collection(configCollection).Doc(configDocID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.AppConfig{}, nil
	}
	if err != nil {
		return model.AppConfig{}, err
	}
	var cfg model.AppConfig
	if err := doc.DataTo(&cfg); err != nil {
		return model.AppConfig{}, err
	}
	return cfg, nil
}

// Set upserts with merge so the first save creates the document. Writes are
// last-write-wins; two admins saving at once silently overwrite each other.
// MergeAll only accepts map data, hence the conversion.
func (s *ConfigStore) Set(ctx context.Context, cfg model.AppConfig) error {
	_, err := s.Client.Collection(configCollection).Doc(configDocID).Set(ctx, map[string]interface{}{
		"total_budget": cfg.TotalBudget,
	}, firestore.MergeAll)
	return err
}
