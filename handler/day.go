package handler

import (
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"api-holiday-a99/aggregate"
	"api-holiday-a99/model"
)

// DayHandler serves the per-day detail page: the schedule and the spending
// of a single dateString partition.
type DayHandler struct {
	Itineraries ItineraryStore
	Expenses    ExpenseStore
}

// parseDateParam validates the :date path segment and returns noon of that
// day, which is the timestamp stored on records so date and dateString stay
// consistent.
func parseDateParam(c *gin.Context) (string, time.Time, bool) {
	dateString := c.Param("date")
	day, err := time.ParseInLocation("2006-01-02", dateString, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format tanggal harus YYYY-MM-DD"})
		return "", time.Time{}, false
	}
	return dateString, day.Add(12 * time.Hour), true
}

// ActiveDatesHandler returns every dateString that has at least one
// itinerary or expense, sorted ascending. The calendar page highlights
// these days.
func (h *DayHandler) ActiveDatesHandler(c *gin.Context) {
	ctx := c.Request.Context()

	itineraries, err := h.Itineraries.ListAll(ctx)
	if err != nil {
		log.Printf("Error loading itineraries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat kalender."})
		return
	}
	expenses, err := h.Expenses.ListAll(ctx)
	if err != nil {
		log.Printf("Error loading expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat kalender."})
		return
	}

	seen := make(map[string]bool)
	dates := []string{}
	add := func(ds string) {
		if ds != "" && !seen[ds] {
			seen[ds] = true
			dates = append(dates, ds)
		}
	}
	for _, it := range itineraries {
		add(it.DateString)
	}
	for _, e := range expenses {
		add(e.DateString)
	}
	sort.Strings(dates)

	c.JSON(http.StatusOK, gin.H{"activeDates": dates})
}

// DetailHandler returns one day's schedule (Pending first, then by start
// time), its expenses (newest first) and the day's spending total.
func (h *DayHandler) DetailHandler(c *gin.Context) {
	dateString, _, ok := parseDateParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	itineraries, err := h.Itineraries.ListByDate(ctx, dateString)
	if err != nil {
		log.Printf("Error loading itineraries for %s: %v", dateString, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat jadwal."})
		return
	}
	expenses, err := h.Expenses.ListByDate(ctx, dateString)
	if err != nil {
		log.Printf("Error loading expenses for %s: %v", dateString, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat pengeluaran."})
		return
	}

	aggregate.SortDayItineraries(itineraries)
	if itineraries == nil {
		itineraries = []model.Itinerary{}
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}

	c.JSON(http.StatusOK, gin.H{
		"dateString":   dateString,
		"itineraries":  itineraries,
		"expenses":     expenses,
		"totalExpense": aggregate.DayTotal(expenses),
	})
}

func (h *DayHandler) AddItineraryHandler(c *gin.Context) {
	dateString, date, ok := parseDateParam(c)
	if !ok {
		return
	}
	var payload model.CreateItineraryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Itineraries.Add(c.Request.Context(), model.Itinerary{
		Date:         date,
		DateString:   dateString,
		TimeStart:    payload.TimeStart,
		ActivityName: payload.ActivityName,
		CityName:     payload.CityName,
		LocationType: payload.LocationType,
		Status:       model.StatusPending,
		MapsLink:     payload.MapsLink,
		Notes:        payload.Notes,
	})
	if err != nil {
		log.Printf("Error adding itinerary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan data."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Jadwal berhasil disimpan", "id": id})
}

func (h *DayHandler) AddExpenseHandler(c *gin.Context) {
	dateString, date, ok := parseDateParam(c)
	if !ok {
		return
	}
	var payload model.CreateExpensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Expenses.Add(c.Request.Context(), model.Expense{
		Title:      payload.Title,
		Amount:     payload.Amount,
		Category:   payload.Category,
		PaidBy:     payload.PaidBy,
		Date:       date,
		DateString: dateString,
	})
	if err != nil {
		log.Printf("Error adding expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan data."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pengeluaran berhasil disimpan", "id": id})
}

func (h *DayHandler) DeleteItineraryHandler(c *gin.Context) {
	if err := h.Itineraries.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("Error deleting itinerary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus jadwal."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Jadwal berhasil dihapus"})
}

func (h *DayHandler) DeleteExpenseHandler(c *gin.Context) {
	if err := h.Expenses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("Error deleting expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus pengeluaran."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pengeluaran berhasil dihapus"})
}

type ToggleStatusPayload struct {
	Status string `json:"status" binding:"required,oneof=Pending Done"`
}

// ToggleStatusHandler flips an activity between Pending and Done. The body
// carries the current status; the server writes the opposite.
func (h *DayHandler) ToggleStatusHandler(c *gin.Context) {
	var payload ToggleStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newStatus, err := h.Itineraries.ToggleStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		log.Printf("Error toggling status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengubah status."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": newStatus})
}

func (h *DayHandler) StreamItinerariesHandler(c *gin.Context) {
	dateString, _, ok := parseDateParam(c)
	if !ok {
		return
	}
	snapshots, stop := h.Itineraries.SubscribeByDate(c.Request.Context(), dateString)
	streamSnapshots(c, snapshots, stop)
}

func (h *DayHandler) StreamExpensesHandler(c *gin.Context) {
	dateString, _, ok := parseDateParam(c)
	if !ok {
		return
	}
	snapshots, stop := h.Expenses.SubscribeByDate(c.Request.Context(), dateString)
	streamSnapshots(c, snapshots, stop)
}
