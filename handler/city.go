package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"api-holiday-a99/model"
)

// CityHandler serves the destination city list. Reading is open to every
// signed-in user (the itinerary form needs the dropdown); managing the list
// is wired admin-only in the router.
type CityHandler struct {
	Cities CityStore
}

func (h *CityHandler) ListHandler(c *gin.Context) {
	cities, err := h.Cities.List(c.Request.Context())
	if err != nil {
		log.Printf("Error listing cities: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data kota."})
		return
	}
	if cities == nil {
		cities = []model.City{}
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *CityHandler) AddHandler(c *gin.Context) {
	var payload model.CreateCityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Cities.Add(c.Request.Context(), payload.Name)
	if err != nil {
		log.Printf("Error adding city: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menambahkan kota."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Kota berhasil ditambahkan", "id": id})
}

// DeleteHandler removes a city record only. Existing itineraries keep their
// copied city_name untouched.
func (h *CityHandler) DeleteHandler(c *gin.Context) {
	if err := h.Cities.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("Error deleting city: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus kota."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Kota berhasil dihapus"})
}

func (h *CityHandler) StreamHandler(c *gin.Context) {
	snapshots, stop := h.Cities.Subscribe(c.Request.Context())
	streamSnapshots(c, snapshots, stop)
}
