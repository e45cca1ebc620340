package aggregate

import (
	"sort"

	"api-holiday-a99/model"
)

// SortDayItineraries orders one day's schedule the way the detail page shows
// it: everything still Pending first, then by start time. Lexicographic time
// comparison is fine because time_start is zero-padded 24h "HH:MM".
func SortDayItineraries(items []model.Itinerary) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Status != items[j].Status {
			return items[i].Status != model.StatusDone
		}
		return items[i].TimeStart < items[j].TimeStart
	})
}

// DayTotal sums the amounts spent on one day.
func DayTotal(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
