// internal/app/system/identity/identity.go

// Package identity resolves the acting user for a request. Authentication
// itself is an external collaborator; this package only defines the
// contract the core needs — an id and a display name to stamp on audit
// records and assignment attribution — plus a header-based provider for
// deployments where an upstream gateway has already authenticated the
// request.
package identity

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default header names for the header-based provider.
const (
	DefaultIDHeader   = "X-Actor-Id"
	DefaultNameHeader = "X-Actor-Name"
)

// ErrNoActor is returned when the current actor cannot be resolved.
// Callers decide how much that matters: edits proceed without audit
// attribution (with a warning), creates proceed unattributed.
var ErrNoActor = errors.New("identity: no actor resolved for request")

// Actor is the resolved acting user.
type Actor struct {
	ID   primitive.ObjectID
	Name string
}

// Provider resolves the actor behind an HTTP request.
type Provider interface {
	Actor(r *http.Request) (Actor, error)
}

// HeaderProvider trusts upstream-set headers carrying the actor's id (hex
// ObjectID) and optional display name.
type HeaderProvider struct {
	IDHeader   string
	NameHeader string
}

// NewHeaderProvider creates a HeaderProvider. Empty header names fall back
// to the defaults.
func NewHeaderProvider(idHeader, nameHeader string) *HeaderProvider {
	if idHeader == "" {
		idHeader = DefaultIDHeader
	}
	if nameHeader == "" {
		nameHeader = DefaultNameHeader
	}
	return &HeaderProvider{IDHeader: idHeader, NameHeader: nameHeader}
}

// Actor resolves the actor from the configured headers. A missing or
// malformed id header yields ErrNoActor.
func (p *HeaderProvider) Actor(r *http.Request) (Actor, error) {
	hex := r.Header.Get(p.IDHeader)
	if hex == "" {
		return Actor{}, ErrNoActor
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return Actor{}, ErrNoActor
	}
	return Actor{ID: id, Name: r.Header.Get(p.NameHeader)}, nil
}

// Static is a Provider returning a fixed actor. Used by tests.
type Static struct {
	A Actor
}

func (s Static) Actor(*http.Request) (Actor, error) {
	if s.A.ID.IsZero() {
		return Actor{}, ErrNoActor
	}
	return s.A, nil
}
