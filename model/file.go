package model

import "time"

// File categories for the day gallery.
const (
	FileCategoryFoto    = "Foto"
	FileCategoryDokumen = "Dokumen"
)

// FileAsset is the Firestore metadata record for one uploaded blob.
// StoragePath points at the object in the bucket so delete can remove both.
type FileAsset struct {
	ID          string    `json:"id" firestore:"-"`
	FileName    string    `json:"file_name" firestore:"file_name"`
	DownloadURL string    `json:"download_url" firestore:"download_url"`
	StoragePath string    `json:"storage_path" firestore:"storage_path"`
	Category    string    `json:"category" firestore:"category"`
	DateString  string    `json:"dateString" firestore:"dateString"`
	UploadedBy  string    `json:"uploaded_by" firestore:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
}
