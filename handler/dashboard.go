package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"api-holiday-a99/aggregate"
	"api-holiday-a99/middleware"
	"api-holiday-a99/model"
)

// DashboardHandler assembles the home page: budget stats, the derived
// timeline and the role-dependent menu.
type DashboardHandler struct {
	Settings    ConfigStore
	Itineraries ItineraryStore
	Expenses    ExpenseStore
}

func (h *DashboardHandler) DashboardHandler(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.Settings.Get(ctx)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data dashboard."})
		return
	}
	expenses, err := h.Expenses.ListAll(ctx)
	if err != nil {
		log.Printf("Error loading expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data dashboard."})
		return
	}
	itineraries, err := h.Itineraries.ListAll(ctx)
	if err != nil {
		log.Printf("Error loading itineraries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data dashboard."})
		return
	}

	menu := []string{"Dashboard", "Timeline"}
	if c.GetString(middleware.RoleContextKey) == model.RoleAdmin {
		menu = append(menu, "Data Kota", "Kelola Data")
	}

	timeline := aggregate.BuildTimeline(itineraries)
	if timeline == nil {
		timeline = []aggregate.TimelineDay{}
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":    aggregate.Stats(cfg.TotalBudget, expenses),
		"timeline": timeline,
		"menu":     menu,
	})
}
