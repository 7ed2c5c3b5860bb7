package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eneca-dev/handoff/internal/app/system/identity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestActor represents the acting user for handler tests.
type TestActor struct {
	ID   primitive.ObjectID
	Name string
}

// SomeActor returns a fresh actor with a generated id.
func SomeActor(name string) TestActor {
	return TestActor{ID: primitive.NewObjectID(), Name: name}
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates an HTTP request carrying a JSON-encoded body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	r := httptest.NewRequest(method, target, bytes.NewReader(buf))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// WithActor stamps the actor headers the default identity provider reads.
func WithActor(r *http.Request, actor TestActor) *http.Request {
	r.Header.Set(identity.DefaultIDHeader, actor.ID.Hex())
	r.Header.Set(identity.DefaultNameHeader, actor.Name)
	return r
}

// DecodeJSON decodes the recorded response body into out.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
