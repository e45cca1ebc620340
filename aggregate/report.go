package aggregate

import (
	"sort"
	"time"

	"api-holiday-a99/model"
)

// ReportSection groups one day's itineraries for sectioned rendering.
type ReportSection struct {
	DateString  string            `json:"dateString"`
	Itineraries []model.Itinerary `json:"itineraries"`
}

// Report is the full printable trip report.
type Report struct {
	Summary     BudgetStats       `json:"summary"`
	Itineraries []model.Itinerary `json:"itineraries"`
	Expenses    []model.Expense   `json:"expenses"`
	Sections    []ReportSection   `json:"sections"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// ReportOptions configures what happens once the report is assembled.
// PostLoad replaces the original page's fixed print timer: it runs exactly
// once, after all data has been loaded and sorted.
type ReportOptions struct {
	PostLoad func(*Report)
}

// BuildReport assembles the printable report from full collection scans.
// Itineraries are ordered by date then start time; expenses by date only, so
// within one day they keep whatever order the backend returned. Itineraries
// are additionally grouped into per-day sections keyed by dateString,
// preserving that order.
func BuildReport(totalBudget float64, itineraries []model.Itinerary, expenses []model.Expense, opts ReportOptions) *Report {
	itins := append([]model.Itinerary(nil), itineraries...)
	exps := append([]model.Expense(nil), expenses...)

	sort.SliceStable(itins, func(i, j int) bool {
		if itins[i].Date.Unix() != itins[j].Date.Unix() {
			return itins[i].Date.Unix() < itins[j].Date.Unix()
		}
		return itins[i].TimeStart < itins[j].TimeStart
	})
	sort.SliceStable(exps, func(i, j int) bool {
		return exps[i].Date.Unix() < exps[j].Date.Unix()
	})

	var sections []ReportSection
	index := make(map[string]int)
	for _, it := range itins {
		i, ok := index[it.DateString]
		if !ok {
			i = len(sections)
			index[it.DateString] = i
			sections = append(sections, ReportSection{DateString: it.DateString})
		}
		sections[i].Itineraries = append(sections[i].Itineraries, it)
	}

	r := &Report{
		Summary:     Stats(totalBudget, exps),
		Itineraries: itins,
		Expenses:    exps,
		Sections:    sections,
		GeneratedAt: time.Now(),
	}
	if opts.PostLoad != nil {
		opts.PostLoad(r)
	}
	return r
}
