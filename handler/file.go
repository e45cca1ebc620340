package handler

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"api-holiday-a99/model"
	"api-holiday-a99/store"
)

// FileHandler serves the per-day photo and document gallery.
type FileHandler struct {
	Files FileStore
}

// UploadHandler accepts a multipart form with the blob plus its category and
// uploader name. The blob lands in the bucket first, then the metadata
// record is written.
func (h *FileHandler) UploadHandler(c *gin.Context) {
	dateString, _, ok := parseDateParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File wajib diunggah."})
		return
	}
	category := c.PostForm("category")
	if category != model.FileCategoryFoto && category != model.FileCategoryDokumen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kategori harus Foto atau Dokumen."})
		return
	}
	uploader := c.PostForm("uploaded_by")
	if uploader == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nama pengunggah wajib diisi."})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File tidak dapat dibaca."})
		return
	}
	defer f.Close()

	asset, err := h.Files.Upload(c.Request.Context(), f, store.UploadInput{
		FileName:   filepath.Base(fileHeader.Filename),
		DateString: dateString,
		Category:   category,
		UploadedBy: uploader,
	})
	if err != nil {
		log.Printf("Error uploading file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengunggah file."})
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// DeleteHandler removes the metadata record and, best-effort, the blob. The
// client sends the storage path as a query parameter because the record is
// already in its hands.
func (h *FileHandler) DeleteHandler(c *gin.Context) {
	if err := h.Files.Delete(c.Request.Context(), c.Param("id"), c.Query("storage_path")); err != nil {
		log.Printf("Error deleting file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus file."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File berhasil dihapus"})
}

func (h *FileHandler) ListHandler(c *gin.Context) {
	dateString, _, ok := parseDateParam(c)
	if !ok {
		return
	}
	files, err := h.Files.ListByDate(c.Request.Context(), dateString)
	if err != nil {
		log.Printf("Error listing files for %s: %v", dateString, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat file."})
		return
	}
	if files == nil {
		files = []model.FileAsset{}
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

func (h *FileHandler) StreamHandler(c *gin.Context) {
	dateString, _, ok := parseDateParam(c)
	if !ok {
		return
	}
	snapshots, stop := h.Files.SubscribeByDate(c.Request.Context(), dateString)
	streamSnapshots(c, snapshots, stop)
}
