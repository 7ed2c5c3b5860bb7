package identity_test

import (
	"net/http/httptest"
	"testing"

	"github.com/eneca-dev/handoff/internal/app/system/identity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHeaderProvider_Resolves(t *testing.T) {
	p := identity.NewHeaderProvider("", "")
	id := primitive.NewObjectID()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set(identity.DefaultIDHeader, id.Hex())
	r.Header.Set(identity.DefaultNameHeader, "Anna Kovaleva")

	actor, err := p.Actor(r)
	if err != nil {
		t.Fatalf("Actor failed: %v", err)
	}
	if actor.ID != id || actor.Name != "Anna Kovaleva" {
		t.Errorf("actor: got %+v", actor)
	}
}

func TestHeaderProvider_MissingHeader(t *testing.T) {
	p := identity.NewHeaderProvider("", "")
	r := httptest.NewRequest("GET", "/", nil)

	if _, err := p.Actor(r); err != identity.ErrNoActor {
		t.Errorf("expected ErrNoActor, got %v", err)
	}
}

func TestHeaderProvider_MalformedID(t *testing.T) {
	p := identity.NewHeaderProvider("", "")
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set(identity.DefaultIDHeader, "not-an-objectid")

	if _, err := p.Actor(r); err != identity.ErrNoActor {
		t.Errorf("expected ErrNoActor, got %v", err)
	}
}

func TestHeaderProvider_CustomHeaders(t *testing.T) {
	p := identity.NewHeaderProvider("X-User", "X-User-Name")
	id := primitive.NewObjectID()
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-User", id.Hex())

	actor, err := p.Actor(r)
	if err != nil {
		t.Fatalf("Actor failed: %v", err)
	}
	if actor.ID != id {
		t.Errorf("actor id: got %s, want %s", actor.ID.Hex(), id.Hex())
	}
}
