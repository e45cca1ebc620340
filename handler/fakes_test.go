package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"api-holiday-a99/aggregate"
	"api-holiday-a99/config"
	"api-holiday-a99/handler"
	"api-holiday-a99/model"
	"api-holiday-a99/router"
	"api-holiday-a99/store"
)

// In-memory stand-ins for the Firestore stores. They honor the same
// contracts the real ones document: filtered lists come back pre-sorted and
// subscriptions emit full snapshots.

type fakeCityStore struct {
	items  []model.City
	nextID int
}

func (f *fakeCityStore) Add(_ context.Context, name string) (string, error) {
	f.nextID++
	id := fmt.Sprintf("city-%d", f.nextID)
	f.items = append(f.items, model.City{ID: id, Name: name})
	return id, nil
}

func (f *fakeCityStore) Delete(_ context.Context, id string) error {
	kept := f.items[:0]
	for _, c := range f.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCityStore) List(context.Context) ([]model.City, error) {
	out := append([]model.City(nil), f.items...)
	aggregate.SortCities(out)
	return out, nil
}

func (f *fakeCityStore) Subscribe(context.Context) (<-chan []model.City, func()) {
	ch := make(chan []model.City, 1)
	out, _ := f.List(context.Background())
	ch <- out
	close(ch)
	return ch, func() {}
}

type fakeItineraryStore struct {
	items   []model.Itinerary
	nextID  int
	stopped bool
}

func (f *fakeItineraryStore) Add(_ context.Context, it model.Itinerary) (string, error) {
	f.nextID++
	it.ID = fmt.Sprintf("itin-%d", f.nextID)
	f.items = append(f.items, it)
	return it.ID, nil
}

func (f *fakeItineraryStore) Delete(_ context.Context, id string) error {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeItineraryStore) ToggleStatus(_ context.Context, id, currentStatus string) (string, error) {
	newStatus := model.StatusDone
	if currentStatus == model.StatusDone {
		newStatus = model.StatusPending
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = newStatus
		}
	}
	return newStatus, nil
}

func (f *fakeItineraryStore) ListByDate(_ context.Context, dateString string) ([]model.Itinerary, error) {
	var out []model.Itinerary
	for _, it := range f.items {
		if it.DateString == dateString {
			out = append(out, it)
		}
	}
	aggregate.SortItinerariesByTime(out)
	return out, nil
}

func (f *fakeItineraryStore) ListAll(context.Context) ([]model.Itinerary, error) {
	return append([]model.Itinerary(nil), f.items...), nil
}

func (f *fakeItineraryStore) SubscribeByDate(_ context.Context, dateString string) (<-chan []model.Itinerary, func()) {
	ch := make(chan []model.Itinerary, 1)
	out, _ := f.ListByDate(context.Background(), dateString)
	ch <- out
	close(ch)
	return ch, func() { f.stopped = true }
}

type fakeExpenseStore struct {
	items  []model.Expense
	nextID int
}

func (f *fakeExpenseStore) Add(_ context.Context, e model.Expense) (string, error) {
	f.nextID++
	e.ID = fmt.Sprintf("exp-%d", f.nextID)
	f.items = append(f.items, e)
	return e.ID, nil
}

func (f *fakeExpenseStore) Delete(_ context.Context, id string) error {
	kept := f.items[:0]
	for _, e := range f.items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeExpenseStore) ListByDate(_ context.Context, dateString string) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range f.items {
		if e.DateString == dateString {
			out = append(out, e)
		}
	}
	aggregate.SortExpensesNewestFirst(out)
	return out, nil
}

func (f *fakeExpenseStore) ListAll(context.Context) ([]model.Expense, error) {
	return append([]model.Expense(nil), f.items...), nil
}

func (f *fakeExpenseStore) SubscribeByDate(_ context.Context, dateString string) (<-chan []model.Expense, func()) {
	ch := make(chan []model.Expense, 1)
	out, _ := f.ListByDate(context.Background(), dateString)
	ch <- out
	close(ch)
	return ch, func() {}
}

type fakeFileStore struct {
	items       []model.FileAsset
	nextID      int
	lastUpload  store.UploadInput
	deletedID   string
	deletedPath string
}

func (f *fakeFileStore) Upload(_ context.Context, r io.Reader, in store.UploadInput) (model.FileAsset, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return model.FileAsset{}, err
	}
	f.lastUpload = in
	f.nextID++
	asset := model.FileAsset{
		ID:          fmt.Sprintf("file-%d", f.nextID),
		FileName:    in.FileName,
		StoragePath: "uploads/" + in.DateString + "/1_" + in.FileName,
		Category:    in.Category,
		DateString:  in.DateString,
		UploadedBy:  in.UploadedBy,
	}
	f.items = append(f.items, asset)
	return asset, nil
}

func (f *fakeFileStore) Delete(_ context.Context, id, storagePath string) error {
	f.deletedID = id
	f.deletedPath = storagePath
	kept := f.items[:0]
	for _, a := range f.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeFileStore) ListByDate(_ context.Context, dateString string) ([]model.FileAsset, error) {
	var out []model.FileAsset
	for _, a := range f.items {
		if a.DateString == dateString {
			out = append(out, a)
		}
	}
	aggregate.SortFilesNewestFirst(out)
	return out, nil
}

func (f *fakeFileStore) SubscribeByDate(_ context.Context, dateString string) (<-chan []model.FileAsset, func()) {
	ch := make(chan []model.FileAsset, 1)
	out, _ := f.ListByDate(context.Background(), dateString)
	ch <- out
	close(ch)
	return ch, func() {}
}

type fakeConfigStore struct {
	cfg model.AppConfig
}

func (f *fakeConfigStore) Get(context.Context) (model.AppConfig, error) { return f.cfg, nil }
func (f *fakeConfigStore) Set(_ context.Context, cfg model.AppConfig) error {
	f.cfg = cfg
	return nil
}

// env wires the fakes into the real router so tests exercise the route
// guard, role gate and handlers exactly as deployed.
type env struct {
	cfg      *config.Config
	cities   *fakeCityStore
	itins    *fakeItineraryStore
	expenses *fakeExpenseStore
	files    *fakeFileStore
	settings *fakeConfigStore
	router   *gin.Engine
}

func newEnv() *env {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:               "8080",
		AdminSecret:        "admin99",
		UserSecret:         "aswier99",
		SessionDays:        7,
		ReportAutoPrint:    true,
		ReportPrintDelayMS: 1000,
	}
	e := &env{
		cfg:      cfg,
		cities:   &fakeCityStore{},
		itins:    &fakeItineraryStore{},
		expenses: &fakeExpenseStore{},
		files:    &fakeFileStore{},
		settings: &fakeConfigStore{},
	}
	e.router = router.SetupRouter(router.Handlers{
		Auth:      &handler.AuthHandler{Config: cfg},
		Dashboard: &handler.DashboardHandler{Settings: e.settings, Itineraries: e.itins, Expenses: e.expenses},
		Day:       &handler.DayHandler{Itineraries: e.itins, Expenses: e.expenses},
		Files:     &handler.FileHandler{Files: e.files},
		Cities:    &handler.CityHandler{Cities: e.cities},
		Manage:    &handler.ManageHandler{Settings: e.settings, Expenses: e.expenses},
		Report:    &handler.ReportHandler{Config: cfg, Settings: e.settings, Itineraries: e.itins, Expenses: e.expenses},
	})
	return e
}

// doJSON sends one request (optionally with a role cookie and JSON body) and
// decodes the JSON response into out when non-nil.
func doJSON(t *testing.T, r http.Handler, method, path, role string, body any, wantStatus int, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.AddCookie(&http.Cookie{Name: "auth_role", Value: role})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != wantStatus {
		t.Fatalf("%s %s: got status %d, want %d (body %s)", method, path, w.Code, wantStatus, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response: %v (body %s)", err, w.Body.String())
		}
	}
	return w
}
