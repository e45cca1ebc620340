package handler_test

import (
	"net/http"
	"testing"
	"time"

	"api-holiday-a99/model"
)

func TestManageOverview(t *testing.T) {
	e := newEnv()
	e.settings.cfg = model.AppConfig{TotalBudget: 5000000}

	base := time.Date(2025, time.December, 20, 12, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		e.expenses.items = append(e.expenses.items, model.Expense{
			ID:     string(rune('a' + i)),
			Title:  "Belanja",
			Amount: 100000,
			Date:   base.Add(time.Duration(i) * 24 * time.Hour),
		})
	}

	var resp struct {
		Stats struct {
			TotalExpenses   float64 `json:"totalExpenses"`
			RemainingBudget float64 `json:"remainingBudget"`
		} `json:"stats"`
		RecentExpenses []struct {
			ID string `json:"id"`
		} `json:"recentExpenses"`
	}
	doJSON(t, e.router, http.MethodGet, "/manage", "admin", nil, http.StatusOK, &resp)

	if resp.Stats.TotalExpenses != 700000 || resp.Stats.RemainingBudget != 4300000 {
		t.Fatalf("stats %+v", resp.Stats)
	}
	if len(resp.RecentExpenses) != 5 {
		t.Fatalf("recent preview has %d entries", len(resp.RecentExpenses))
	}
	// Newest first: the last seeded expense leads the preview.
	if resp.RecentExpenses[0].ID != "g" {
		t.Fatalf("preview order %+v", resp.RecentExpenses)
	}
}

func TestUpdateBudget(t *testing.T) {
	e := newEnv()

	doJSON(t, e.router, http.MethodPut, "/manage/budget", "admin", map[string]float64{"total_budget": 2000000}, http.StatusOK, nil)
	if e.settings.cfg.TotalBudget != 2000000 {
		t.Fatalf("budget not stored: %+v", e.settings.cfg)
	}

	// Zero is a valid budget.
	doJSON(t, e.router, http.MethodPut, "/manage/budget", "admin", map[string]float64{"total_budget": 0}, http.StatusOK, nil)
	if e.settings.cfg.TotalBudget != 0 {
		t.Fatalf("zero budget rejected: %+v", e.settings.cfg)
	}

	// Missing field and negative values are validation errors.
	doJSON(t, e.router, http.MethodPut, "/manage/budget", "admin", map[string]string{}, http.StatusBadRequest, nil)
	doJSON(t, e.router, http.MethodPut, "/manage/budget", "admin", map[string]float64{"total_budget": -1}, http.StatusBadRequest, nil)

	// Regular users never reach the handler.
	doJSON(t, e.router, http.MethodPut, "/manage/budget", "user", map[string]float64{"total_budget": 1}, http.StatusForbidden, nil)
}
