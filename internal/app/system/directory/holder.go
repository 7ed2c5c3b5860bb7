// internal/app/system/directory/holder.go
package directory

import "sync/atomic"

// Holder publishes the current Directory to readers while allowing a
// wholesale swap on reload. Readers always see a complete directory; there
// is no partial update.
type Holder struct {
	cur atomic.Pointer[Directory]
}

// NewHolder creates a Holder seeded with an empty directory, so Current
// is usable before the first load completes.
func NewHolder() *Holder {
	h := &Holder{}
	h.cur.Store(Build(nil, nil))
	return h
}

// Current returns the most recently published directory.
func (h *Holder) Current() *Directory {
	return h.cur.Load()
}

// Publish swaps in a freshly built directory. Nil is ignored.
func (h *Holder) Publish(d *Directory) {
	if d != nil {
		h.cur.Store(d)
	}
}
