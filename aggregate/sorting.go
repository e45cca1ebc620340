package aggregate

import (
	"sort"

	"api-holiday-a99/model"
)

// SortItinerariesByTime orders a day's live snapshot by start time only.
func SortItinerariesByTime(items []model.Itinerary) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TimeStart < items[j].TimeStart
	})
}

// SortExpensesNewestFirst puts the most recent spending on top, the order
// the day detail list uses.
func SortExpensesNewestFirst(items []model.Expense) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Unix() > items[j].Date.Unix()
	})
}

// SortFilesNewestFirst orders the day gallery by upload time, newest first.
func SortFilesNewestFirst(items []model.FileAsset) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Unix() > items[j].CreatedAt.Unix()
	})
}

// SortCities orders the city list A-Z for display.
func SortCities(items []model.City) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
}
