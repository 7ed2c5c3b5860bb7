package assignments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eneca-dev/handoff/internal/app/system/directory"
	"github.com/eneca-dev/handoff/internal/app/system/identity"
	"github.com/eneca-dev/handoff/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestRouter(h *harness) (chi.Router, identity.Actor) {
	handler := NewHandler(h.svc, identity.NewHeaderProvider("", ""), zap.NewNop())
	r := chi.NewRouter()
	MountRoutes(r, handler)
	return r, h.actor
}

func seedAssignment(t *testing.T, h *harness) primitive.ObjectID {
	t.Helper()
	view, err := h.svc.Create(context.Background(), h.actor, validCreateInput())
	if err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	return view.ID
}

func withActorHeaders(r *http.Request, actor identity.Actor) *http.Request {
	r.Header.Set(identity.DefaultIDHeader, actor.ID.Hex())
	r.Header.Set(identity.DefaultNameHeader, actor.Name)
	return r
}

func TestHandler_List(t *testing.T) {
	h := newHarness(directory.Build(nil, nil))
	router, _ := newTestRouter(h)
	seedAssignment(t, h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/assignments", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data []View `json:"data"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Data) != 1 {
		t.Errorf("expected 1 assignment, got %d", len(resp.Data))
	}
}

func TestHandler_List_MalformedFilterID(t *testing.T) {
	h := newHarness(nil)
	router, _ := newTestRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/assignments?project_id=nothex", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestHandler_List_UnknownStatus(t *testing.T) {
	h := newHarness(nil)
	router, _ := newTestRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/assignments?status=Rejected", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestHandler_Create(t *testing.T) {
	h := newHarness(nil)
	router, actor := newTestRouter(h)

	req := testutil.NewJSONRequest(t, "POST", "/api/assignments", validCreateInput())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withActorHeaders(req, actor))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data View `json:"data"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Data.ID.IsZero() {
		t.Error("created assignment has no id")
	}
	if resp.Data.CreatedByName != actor.Name {
		t.Errorf("attribution: got %q", resp.Data.CreatedByName)
	}
}

func TestHandler_Create_ValidationError(t *testing.T) {
	h := newHarness(nil)
	router, actor := newTestRouter(h)

	in := validCreateInput()
	in.Title = ""
	req := testutil.NewJSONRequest(t, "POST", "/api/assignments", in)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withActorHeaders(req, actor))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp struct {
		Field string `json:"field"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Field != "title" {
		t.Errorf("field: got %q", resp.Field)
	}
}

func TestHandler_Update_WarningsSurfaced(t *testing.T) {
	h := newHarness(nil)
	router, actor := newTestRouter(h)
	id := seedAssignment(t, h)
	h.audit.failInsert = errors.New("write concern timeout")

	req := testutil.NewJSONRequest(t, "PUT", "/api/assignments/"+id.Hex(), UpdateInput{Title: "Edited"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withActorHeaders(req, actor))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Warnings []string `json:"warnings"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Warnings) != 1 || resp.Warnings[0] != WarnAuditWriteFailed {
		t.Errorf("warnings: got %v", resp.Warnings)
	}
}

func TestHandler_Update_NotFound(t *testing.T) {
	h := newHarness(nil)
	router, actor := newTestRouter(h)

	req := testutil.NewJSONRequest(t, "PUT", "/api/assignments/"+primitive.NewObjectID().Hex(), UpdateInput{Title: "X"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withActorHeaders(req, actor))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestHandler_Advance(t *testing.T) {
	h := newHarness(nil)
	router, actor := newTestRouter(h)
	id := seedAssignment(t, h)

	req := testutil.NewJSONRequest(t, "POST", "/api/assignments/"+id.Hex()+"/advance", TransitionInput{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withActorHeaders(req, actor))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data View `json:"data"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Data.Status != "Transferred" {
		t.Errorf("status: got %q", resp.Data.Status)
	}
	if resp.Data.ActualTransmittedAt == nil {
		t.Error("transmitted date not stamped")
	}
}

func TestHandler_Advance_InvalidDuration(t *testing.T) {
	h := newHarness(nil)
	router, actor := newTestRouter(h)
	id := seedAssignment(t, h)

	days := -7
	req := testutil.NewJSONRequest(t, "POST", "/api/assignments/"+id.Hex()+"/advance", TransitionInput{DurationDays: &days})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withActorHeaders(req, actor))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Field string `json:"field"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Field != "planned_duration_days" {
		t.Errorf("field: got %q", resp.Field)
	}
}

func TestHandler_Revert_FromInitialConflicts(t *testing.T) {
	h := newHarness(nil)
	router, actor := newTestRouter(h)
	id := seedAssignment(t, h)

	req := testutil.NewJSONRequest(t, "POST", "/api/assignments/"+id.Hex()+"/revert", TransitionInput{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withActorHeaders(req, actor))

	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_Transition_EmptyBodyAllowed(t *testing.T) {
	h := newHarness(nil)
	router, actor := newTestRouter(h)
	id := seedAssignment(t, h)

	req := httptest.NewRequest("POST", "/api/assignments/"+id.Hex()+"/advance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withActorHeaders(req, actor))

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_History_EmptyList(t *testing.T) {
	h := newHarness(nil)
	router, _ := newTestRouter(h)
	id := seedAssignment(t, h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/assignments/"+id.Hex()+"/history", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp struct {
		Data []any `json:"data"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("expected empty list, got %v", resp.Data)
	}
}

func TestHandler_ClearHistory(t *testing.T) {
	h := newHarness(nil)
	router, actor := newTestRouter(h)
	id := seedAssignment(t, h)
	if _, _, err := h.svc.Update(context.Background(), actor, id, UpdateInput{Title: "Edited"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/api/assignments/"+id.Hex()+"/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withActorHeaders(req, actor))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp struct {
		Data struct {
			Deleted int64 `json:"deleted"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Data.Deleted != 1 {
		t.Errorf("deleted: got %d, want 1", resp.Data.Deleted)
	}
}

func TestHandler_MalformedID(t *testing.T) {
	h := newHarness(nil)
	router, _ := newTestRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/assignments/nothex/history", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d", rec.Code)
	}
}
