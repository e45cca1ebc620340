package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"api-holiday-a99/aggregate"
	"api-holiday-a99/model"
)

// ManageHandler serves the admin manage page: budget settings plus a short
// spending preview.
type ManageHandler struct {
	Settings ConfigStore
	Expenses ExpenseStore
}

// OverviewHandler returns the configured budget, spend totals and the five
// most recent expenses.
func (h *ManageHandler) OverviewHandler(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.Settings.Get(ctx)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data."})
		return
	}
	expenses, err := h.Expenses.ListAll(ctx)
	if err != nil {
		log.Printf("Error loading expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data."})
		return
	}

	aggregate.SortExpensesNewestFirst(expenses)
	// Copied so the preview truncation stays independent of the stats input.
	recent := append([]model.Expense{}, expenses...)
	if len(recent) > 5 {
		recent = recent[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":          aggregate.Stats(cfg.TotalBudget, expenses),
		"recentExpenses": recent,
	})
}

// UpdateBudgetHandler upserts the singleton settings document (merge write,
// created on first save).
func (h *ManageHandler) UpdateBudgetHandler(c *gin.Context) {
	var payload model.UpdateBudgetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Settings.Set(c.Request.Context(), model.AppConfig{TotalBudget: *payload.TotalBudget}); err != nil {
		log.Printf("Error updating budget: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal update budget."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Budget berhasil diperbarui!",
		"total_budget": *payload.TotalBudget,
	})
}
