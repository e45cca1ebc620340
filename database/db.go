package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"api-holiday-a99/config"
)

// InitFirebase connects to the Firebase project and returns the clients the
// rest of the app needs: Firestore for records, Auth for backend session
// tokens and the default bucket for uploads.
func InitFirebase(ctx context.Context, cfg *config.Config) (*firestore.Client, *auth.Client, *storage.BucketHandle, error) {
	if cfg.CredentialsPath == "" {
		return nil, nil, nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH environment variable not set")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: cfg.StorageBucket}, opt)
	if err != nil {
		return nil, nil, nil, err
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, nil, nil, err
	}

	return firestoreClient, authClient, bucket, nil
}
