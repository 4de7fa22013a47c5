package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mmsports/backoffice/internal/domain/models"
	"github.com/mmsports/backoffice/internal/service/confirm"
	syncsvc "github.com/mmsports/backoffice/internal/service/sync"
)

// fakeStore is an in-memory mongodb.Store for handler tests.
type fakeStore struct {
	mu           sync.Mutex
	staff        map[string]models.Staff
	threads      map[string]models.Thread
	history      map[string]models.HistoryRecord
	transactions map[string]models.Transaction
	workspace    *models.Workspace
	nextID       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		staff:        map[string]models.Staff{},
		threads:      map[string]models.Thread{},
		history:      map[string]models.HistoryRecord{},
		transactions: map[string]models.Transaction{},
	}
}

func (f *fakeStore) ListStaff(ctx context.Context) ([]models.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Staff, 0, len(f.staff))
	for _, s := range f.staff {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) PutStaff(ctx context.Context, s models.Staff) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staff[s.ID] = s
	return nil
}

func (f *fakeStore) UpdateStaffFields(ctx context.Context, id string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.staff[id]
	if v, ok := fields["present"]; ok {
		s.Present = v.(int)
	}
	f.staff[id] = s
	return nil
}

func (f *fakeStore) DeleteStaff(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.staff, id)
	return nil
}

func (f *fakeStore) ListThreads(ctx context.Context) ([]models.Thread, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Thread, 0, len(f.threads))
	for _, t := range f.threads {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SN < out[j].SN })
	return out, nil
}

func (f *fakeStore) PutThread(ctx context.Context, t models.Thread) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.threads[t.ID] = t
	return nil
}

func (f *fakeStore) UpdateThreadFields(ctx context.Context, id string, fields map[string]any) error {
	return nil
}

func (f *fakeStore) DeleteThread(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.threads, id)
	return nil
}

func (f *fakeStore) ListHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	return nil, nil
}

func (f *fakeStore) AddHistory(ctx context.Context, rec models.HistoryRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	docID := string(rune('a' + f.nextID))
	rec.DocID = docID
	f.history[docID] = rec
	return docID, nil
}

func (f *fakeStore) ReplaceHistory(ctx context.Context, docID string, rec models.HistoryRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.DocID = docID
	f.history[docID] = rec
	return nil
}

func (f *fakeStore) DeleteHistory(ctx context.Context, docID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.history, docID)
	return nil
}

func (f *fakeStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return nil, nil
}

func (f *fakeStore) AddTransaction(ctx context.Context, tx models.Transaction) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := string(rune('a' + f.nextID))
	tx.ID = id
	f.transactions[id] = tx
	return id, nil
}

func (f *fakeStore) UpdateTransactionFields(ctx context.Context, id string, fields map[string]any) error {
	return nil
}

func (f *fakeStore) DeleteTransaction(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.transactions, id)
	return nil
}

func (f *fakeStore) GetWorkspace(ctx context.Context) (models.Workspace, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.workspace == nil {
		return models.Workspace{}, false, nil
	}
	return *f.workspace, true, nil
}

func (f *fakeStore) PutWorkspace(ctx context.Context, ws models.Workspace) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workspace = &ws
	return nil
}

func (f *fakeStore) Watch(ctx context.Context, collection string) (<-chan struct{}, error) {
	ch := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(collection string, data any) {}

func newTestAPI(store *fakeStore) (*API, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	state := syncsvc.NewService(store, nopBroadcaster{}, nil)
	api := NewAPI(state, store, confirm.NewManager(nil), nil, nil, nil)
	api.now = func() time.Time {
		return time.Date(2024, 5, 12, 14, 30, 0, 0, time.UTC)
	}

	r := gin.New()
	r.POST("/api/staff", api.EnrollStaff)
	r.POST("/api/staff/:id/present/:direction", api.AdjustPresent)
	r.DELETE("/api/staff/:id", api.DeleteStaff)
	r.GET("/api/confirm", api.PendingConfirmation)
	r.POST("/api/confirm", api.ConfirmPending)
	r.POST("/api/confirm/cancel", api.CancelPending)
	r.PUT("/api/production/workspace", api.PutWorkspace)
	r.POST("/api/production/history", api.SaveHistory)
	r.PUT("/api/production/history/:id", api.UpdateHistory)
	r.POST("/api/finances", api.AddTransaction)
	return api, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEnrollStaffDefaults(t *testing.T) {
	store := newFakeStore()
	_, r := newTestAPI(store)

	w := doJSON(t, r, http.MethodPost, "/api/staff", map[string]any{})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	var got models.Staff
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Name != "New Employee" || got.Role != "Staff" {
		t.Errorf("defaults = %q/%q, want New Employee/Staff", got.Name, got.Role)
	}
	if got.Present != 0 || got.Advance != 0 || got.OTHours != 0 {
		t.Errorf("new staff not zeroed: %+v", got)
	}
	if _, ok := store.staff[got.ID]; !ok {
		t.Errorf("staff %q not persisted", got.ID)
	}
}

func TestAdjustPresentClampsAtBounds(t *testing.T) {
	store := newFakeStore()
	store.staff["s-max"] = models.Staff{ID: "s-max", Name: "Rahim Mia", Present: models.MaxPresentDays}
	store.staff["s-min"] = models.Staff{ID: "s-min", Name: "Karim"}
	store.threads["t1"] = models.Thread{ID: "t1", SN: 1}
	api, r := newTestAPI(store)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := api.state.Start(ctx); err != nil {
		t.Fatalf("start sync: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/staff/s-max/present/increment", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("increment status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp struct {
		Present int `json:"present"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Present != models.MaxPresentDays {
		t.Errorf("increment at ceiling = %d, want %d", resp.Present, models.MaxPresentDays)
	}
	if got := store.staff["s-max"].Present; got != models.MaxPresentDays {
		t.Errorf("stored present = %d, want %d", got, models.MaxPresentDays)
	}

	w = doJSON(t, r, http.MethodPost, "/api/staff/s-min/present/decrement", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("decrement status = %d, want %d", w.Code, http.StatusOK)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Present != 0 {
		t.Errorf("decrement at floor = %d, want 0", resp.Present)
	}
	if got := store.staff["s-min"].Present; got != 0 {
		t.Errorf("stored present = %d, want 0", got)
	}
}

func TestAdjustPresentRejectsUnknownDirection(t *testing.T) {
	store := newFakeStore()
	store.staff["s1"] = models.Staff{ID: "s1", Name: "Rahim Mia", Present: 5}
	store.threads["t1"] = models.Thread{ID: "t1", SN: 1}
	api, r := newTestAPI(store)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := api.state.Start(ctx); err != nil {
		t.Fatalf("start sync: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/staff/s1/present/reset", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if got := store.staff["s1"].Present; got != 5 {
		t.Errorf("stored present = %d, want unchanged 5", got)
	}
}

func TestDeleteStaffConfirmFlow(t *testing.T) {
	store := newFakeStore()
	store.staff["s1"] = models.Staff{ID: "s1", Name: "Rahim Mia"}
	_, r := newTestAPI(store)

	w := doJSON(t, r, http.MethodDelete, "/api/staff/s1", nil)
	if w.Code != http.StatusAccepted {
		t.Fatalf("stage status = %d, want %d", w.Code, http.StatusAccepted)
	}
	if _, ok := store.staff["s1"]; !ok {
		t.Fatal("staff deleted before confirmation")
	}

	w = doJSON(t, r, http.MethodGet, "/api/confirm", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pending status = %d, want %d", w.Code, http.StatusOK)
	}
	var prompt confirm.Prompt
	if err := json.Unmarshal(w.Body.Bytes(), &prompt); err != nil {
		t.Fatalf("decode prompt: %v", err)
	}
	if prompt.Title != "Remove Employee?" {
		t.Errorf("prompt title = %q", prompt.Title)
	}

	w = doJSON(t, r, http.MethodPost, "/api/confirm", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status = %d, want %d", w.Code, http.StatusOK)
	}
	if _, ok := store.staff["s1"]; ok {
		t.Error("staff still present after confirmation")
	}

	// The slot is single-use.
	w = doJSON(t, r, http.MethodPost, "/api/confirm", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second confirm status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestCancelKeepsRecord(t *testing.T) {
	store := newFakeStore()
	store.staff["s1"] = models.Staff{ID: "s1", Name: "Karim"}
	_, r := newTestAPI(store)

	doJSON(t, r, http.MethodDelete, "/api/staff/s1", nil)

	w := doJSON(t, r, http.MethodPost, "/api/confirm/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel status = %d, want %d", w.Code, http.StatusOK)
	}
	if _, ok := store.staff["s1"]; !ok {
		t.Error("staff deleted despite cancellation")
	}

	w = doJSON(t, r, http.MethodPost, "/api/confirm", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("confirm after cancel status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestSaveHistoryRejectsEmptyWorkspace(t *testing.T) {
	store := newFakeStore()
	_, r := newTestAPI(store)

	w := doJSON(t, r, http.MethodPost, "/api/production/history", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	if len(store.history) != 0 {
		t.Error("empty workspace was persisted to history")
	}
}

func TestSaveHistoryDerivesTotals(t *testing.T) {
	store := newFakeStore()
	_, r := newTestAPI(store)

	ws := models.Workspace{
		Day: []models.ProductionEntry{
			{MC: "01", Op: "Operator", DS: "Design", Qty: 10, Prc: 5},
			{MC: "02", Op: "Operator", DS: "Design", Qty: 3, Prc: 20},
		},
		Night: []models.ProductionEntry{
			{MC: "01", Op: "Operator", DS: "Design", Qty: 7, Prc: 10},
		},
	}
	if w := doJSON(t, r, http.MethodPut, "/api/production/workspace", ws); w.Code != http.StatusNoContent {
		t.Fatalf("put workspace status = %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/production/history", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	var rec models.HistoryRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.TotalQty != 20 || rec.TotalTk != 180 {
		t.Errorf("totals = %v/%v, want 20/180", rec.TotalQty, rec.TotalTk)
	}
	if rec.DaySummary.Qty != 13 || rec.DaySummary.Tk != 110 {
		t.Errorf("day summary = %+v", rec.DaySummary)
	}
	if rec.Date != "5/12/2024" {
		t.Errorf("date = %q, want 5/12/2024", rec.Date)
	}
}

func TestPutWorkspaceNormalizesNilShifts(t *testing.T) {
	store := newFakeStore()
	api, r := newTestAPI(store)

	w := doJSON(t, r, http.MethodPut, "/api/production/workspace", map[string]any{
		"day":   nil,
		"night": nil,
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}

	ws := api.state.Workspace()
	if ws.Day == nil || ws.Night == nil {
		t.Errorf("cached shifts = %v/%v, want empty arrays", ws.Day, ws.Night)
	}
	if store.workspace == nil {
		t.Fatal("workspace not persisted")
	}
	if store.workspace.Day == nil || store.workspace.Night == nil {
		t.Errorf("stored shifts = %v/%v, want empty arrays", store.workspace.Day, store.workspace.Night)
	}
}

func TestUpdateHistoryNormalizesNilShifts(t *testing.T) {
	store := newFakeStore()
	store.history["h1"] = models.HistoryRecord{DocID: "h1", ID: 123}
	_, r := newTestAPI(store)

	w := doJSON(t, r, http.MethodPut, "/api/production/history/h1", map[string]any{
		"id":        123,
		"dayData":   []map[string]any{{"mc": "01", "op": "Operator", "ds": "Design", "qty": 5, "prc": 2}},
		"nightData": nil,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var rec models.HistoryRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.NightData == nil {
		t.Error("response nightData is null, want empty array")
	}
	if rec.TotalQty != 5 || rec.TotalTk != 10 {
		t.Errorf("totals = %v/%v, want 5/10", rec.TotalQty, rec.TotalTk)
	}

	stored := store.history["h1"]
	if stored.NightData == nil {
		t.Error("stored nightData is nil, want empty slice")
	}
}

func TestAddTransactionDefaults(t *testing.T) {
	store := newFakeStore()
	_, r := newTestAPI(store)

	w := doJSON(t, r, http.MethodPost, "/api/finances", map[string]any{
		"name":   "Fabric sale",
		"amount": 1200,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	var tx models.Transaction
	if err := json.Unmarshal(w.Body.Bytes(), &tx); err != nil {
		t.Fatalf("decode transaction: %v", err)
	}
	if tx.Type != models.TransactionEarn {
		t.Errorf("type = %q, want %q", tx.Type, models.TransactionEarn)
	}
	if tx.Date != "2024-05-12" {
		t.Errorf("date = %q, want 2024-05-12", tx.Date)
	}
}
