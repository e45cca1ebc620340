package aggregate

import (
	"fmt"
	"sort"
	"time"

	"api-holiday-a99/model"
)

// TimelineActivity is one row inside a timeline day.
type TimelineActivity struct {
	Time     string `json:"time"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// TimelineDay is the dashboard's view of one travel day. ID is the record id
// of the first itinerary seen for the day, used by the date-selection modal
// to deep link into the detail page.
type TimelineDay struct {
	ID         string             `json:"id"`
	DateLabel  string             `json:"date"`
	RawDate    time.Time          `json:"rawDate"`
	Title      string             `json:"title"`
	Activities []TimelineActivity `json:"activities"`
}

var shortMonthsID = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// FormatDateID renders a timestamp the way the dashboard labels its days,
// e.g. "2 Jan 2026".
func FormatDateID(t time.Time) string {
	if t.IsZero() {
		return "Tanggal Belum Diatur"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonthsID[t.Month()-1], t.Year())
}

// BuildTimeline groups a full itinerary scan into the dashboard timeline:
// one entry per formatted date, activities sorted by start time, days sorted
// by date. Records without a date are skipped.
//
// The day title is derived while inserting: a single activity names it
// "<activity> di <city>", more than one becomes "<n> Aktivitas di <city>"
// where the city is whichever record happened to be appended last. That
// attribution is insertion-order dependent; it is kept as-is because the app
// has always behaved this way.
func BuildTimeline(items []model.Itinerary) []TimelineDay {
	byLabel := make(map[string]*TimelineDay)

	for _, it := range items {
		if it.Date.IsZero() {
			continue
		}
		label := FormatDateID(it.Date)

		day, ok := byLabel[label]
		if !ok {
			day = &TimelineDay{
				ID:        it.ID,
				DateLabel: label,
				RawDate:   it.Date,
				Title:     "Perjalanan Tanggal " + label,
			}
			byLabel[label] = day
		}

		activity := TimelineActivity{Time: it.TimeStart, Name: it.ActivityName, Location: it.CityName}
		if activity.Time == "" {
			activity.Time = "-"
		}
		if activity.Name == "" {
			activity.Name = "Aktivitas Tanpa Nama"
		}
		if activity.Location == "" {
			activity.Location = "-"
		}
		day.Activities = append(day.Activities, activity)

		if len(day.Activities) == 1 {
			day.Title = fmt.Sprintf("%s di %s", it.ActivityName, it.CityName)
		} else {
			city := it.CityName
			if city == "" {
				city = "Lokasi Beragam"
			}
			day.Title = fmt.Sprintf("%d Aktivitas di %s", len(day.Activities), city)
		}
	}

	days := make([]TimelineDay, 0, len(byLabel))
	for _, day := range byLabel {
		sort.SliceStable(day.Activities, func(i, j int) bool {
			return day.Activities[i].Time < day.Activities[j].Time
		})
		days = append(days, *day)
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].RawDate.Unix() < days[j].RawDate.Unix()
	})
	return days
}
