package store

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"

	"api-holiday-a99/aggregate"
	"api-holiday-a99/model"
)

const fileCollection = "files"

// FileStore pairs the blob bucket with the files metadata collection.
type FileStore struct {
	Client *firestore.Client
	Bucket *storage.BucketHandle
}

// UploadInput describes one incoming file.
type UploadInput struct {
	FileName   string
	DateString string
	Category   string
	UploadedBy string
}

// objectPath builds uploads/<dateString>/<millis>_<filename>.
func objectPath(dateString, fileName string, now time.Time) string {
	return fmt.Sprintf("uploads/%s/%d_%s", dateString, now.UnixMilli(), fileName)
}

// Upload writes the blob first, then the metadata record pointing at it.
func (s *FileStore) Upload(ctx context.Context, r io.Reader, in UploadInput) (model.FileAsset, error) {
	now := time.Now()
	path := objectPath(in.DateString, in.FileName, now)

	w := s.Bucket.Object(path).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return model.FileAsset{}, err
	}
	if err := w.Close(); err != nil {
		return model.FileAsset{}, err
	}

	asset := model.FileAsset{
		FileName:    in.FileName,
		DownloadURL: w.Attrs().MediaLink,
		StoragePath: path,
		Category:    in.Category,
		DateString:  in.DateString,
		UploadedBy:  in.UploadedBy,
		CreatedAt:   now,
	}
	ref, _, err := s.Client.Collection(fileCollection).Add(ctx, asset)
	if err != nil {
		return model.FileAsset{}, err
	}
	asset.ID = ref.ID
	return asset, nil
}

// Delete removes the blob best-effort, then the metadata record. A blob that
// is already gone (or fails to delete) only logs a warning; the record is
// removed either way.
func (s *FileStore) Delete(ctx context.Context, id, storagePath string) error {
	if storagePath != "" {
		if err := s.Bucket.Object(storagePath).Delete(ctx); err != nil {
			log.Printf("Warning: blob %s already gone or not deletable: %v", storagePath, err)
		}
	}
	_, err := s.Client.Collection(fileCollection).Doc(id).Delete(ctx)
	return err
}

// SubscribeByDate opens a live listener for one day's uploads, newest first.
func (s *FileStore) SubscribeByDate(ctx context.Context, dateString string) (<-chan []model.FileAsset, func()) {
	q := s.Client.Collection(fileCollection).Where("dateString", "==", dateString)
	return watch(ctx, "file", q, fileID, aggregate.SortFilesNewestFirst)
}

// ListByDate returns one day's uploads, newest first.
func (s *FileStore) ListByDate(ctx context.Context, dateString string) ([]model.FileAsset, error) {
	iter := s.Client.Collection(fileCollection).
		Where("dateString", "==", dateString).
		Documents(ctx)
	items, err := decodeAll(iter, fileID)
	if err != nil {
		return nil, err
	}
	aggregate.SortFilesNewestFirst(items)
	return items, nil
}

func fileID(f *model.FileAsset, id string) { f.ID = id }
