// internal/app/system/namekey/namekey.go

// Package namekey defines the join key used wherever the organizational
// views are correlated by human-readable name instead of by id.
//
// The section hierarchy view identifies its responsible team and specialist
// by display name only; the organizational view is the authority for team
// and specialist ids. Joining the two therefore means matching names across
// independently maintained data. Key makes that fragility explicit in the
// type system: anything keyed by namekey.Key breaks when someone is renamed
// and is ambiguous when two people share a full name.
package namekey

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Key is a folded, whitespace-normalized name used as a cross-view join key.
// The empty Key never matches anything.
type Key string

// For derives the join key for a display name: case folded, diacritics
// stripped, inner whitespace collapsed to single spaces.
func For(name string) Key {
	folded := text.Fold(strings.TrimSpace(name))
	return Key(strings.Join(strings.Fields(folded), " "))
}

// Zero reports whether k is the empty key.
func (k Key) Zero() bool {
	return k == ""
}

// Matches reports whether the display name resolves to this key.
// An empty key matches nothing, including empty names.
func (k Key) Matches(name string) bool {
	return !k.Zero() && For(name) == k
}
