package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"api-holiday-a99/aggregate"
	"api-holiday-a99/config"
)

// ReportHandler builds the printable trip report from full collection scans.
type ReportHandler struct {
	Config      *config.Config
	Settings    ConfigStore
	Itineraries ItineraryStore
	Expenses    ExpenseStore
}

// FullReportHandler returns the assembled report together with the print
// instructions for the client. Whether printing starts automatically, and
// after what delay, comes from configuration.
func (h *ReportHandler) FullReportHandler(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.Settings.Get(ctx)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data laporan."})
		return
	}
	itineraries, err := h.Itineraries.ListAll(ctx)
	if err != nil {
		log.Printf("Error loading itineraries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data laporan."})
		return
	}
	expenses, err := h.Expenses.ListAll(ctx)
	if err != nil {
		log.Printf("Error loading expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data laporan."})
		return
	}

	report := aggregate.BuildReport(cfg.TotalBudget, itineraries, expenses, aggregate.ReportOptions{
		PostLoad: func(r *aggregate.Report) {
			log.Printf("Report assembled: %d itineraries, %d expenses", len(r.Itineraries), len(r.Expenses))
		},
	})

	c.JSON(http.StatusOK, gin.H{
		"report":         report,
		"auto_print":     h.Config.ReportAutoPrint,
		"print_delay_ms": h.Config.ReportPrintDelayMS,
	})
}
