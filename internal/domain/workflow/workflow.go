// internal/domain/workflow/workflow.go

// Package workflow implements the assignment hand-off state machine.
//
// The five statuses form a total order with a single forward path:
//
//	Created → Transferred → Accepted → Completed → Agreed
//
// Each forward transition stamps the actual date paired with the status
// being entered; each revert clears the actual date of the status being
// left. The timestamp-per-status encoding keeps "time spent in each state"
// queryable directly from the record, which requires that this package is
// the only code that touches the actual_* fields.
package workflow

import (
	"fmt"
	"time"

	"github.com/eneca-dev/handoff/internal/domain/models"
)

// Status is an assignment workflow state. The values are the literal
// persisted strings and must round-trip through the store unchanged.
type Status string

const (
	StatusCreated     Status = "Created"
	StatusTransferred Status = "Transferred"
	StatusAccepted    Status = "Accepted"
	StatusCompleted   Status = "Completed"
	StatusAgreed      Status = "Agreed"
)

// order lists the statuses in forward workflow order.
var order = []Status{
	StatusCreated,
	StatusTransferred,
	StatusAccepted,
	StatusCompleted,
	StatusAgreed,
}

// forward maps each non-terminal status to its successor. Reverts use the
// derived inverse. Adding a status means extending this table and the
// actualDate selector; both fail loudly for unknown values.
var forward = map[Status]Status{
	StatusCreated:     StatusTransferred,
	StatusTransferred: StatusAccepted,
	StatusAccepted:    StatusCompleted,
	StatusCompleted:   StatusAgreed,
}

var backward = func() map[Status]Status {
	m := make(map[Status]Status, len(forward))
	for from, to := range forward {
		m[to] = from
	}
	return m
}()

// Order returns the statuses in forward workflow order.
func Order() []Status {
	out := make([]Status, len(order))
	copy(out, order)
	return out
}

// Valid reports whether s is one of the five known statuses.
func (s Status) Valid() bool {
	return s.index() >= 0
}

// index returns the position of s in the status order, or -1.
func (s Status) index() int {
	for i, v := range order {
		if v == s {
			return i
		}
	}
	return -1
}

// Before reports whether s precedes other in the workflow order.
// Unknown statuses never precede anything.
func (s Status) Before(other Status) bool {
	si, oi := s.index(), other.index()
	return si >= 0 && oi >= 0 && si < oi
}

// InvalidTransitionError reports an Advance or Revert attempted outside the
// legal range. The assignment is left unchanged when this is returned.
type InvalidTransitionError struct {
	Op   string // "advance" or "revert"
	From Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s assignment from status %q", e.Op, e.From)
}

// actualDate returns the assignment field holding the actual date paired
// with entering s. Created has no paired date; it returns nil for Created
// and for unknown statuses.
func actualDate(a *models.Assignment, s Status) **time.Time {
	switch s {
	case StatusTransferred:
		return &a.ActualTransmittedAt
	case StatusAccepted:
		return &a.ActualAcceptedAt
	case StatusCompleted:
		return &a.ActualWorkedOutAt
	case StatusAgreed:
		return &a.ActualAgreedAt
	default:
		return nil
	}
}

// DateOnly truncates t to date precision in UTC. Actual dates are stored
// at day granularity only.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Advance moves a to the next status, stamping the actual date paired with
// the destination status from now (date-only). When advancing from
// Transferred to Accepted with a non-nil durationDays, the planned duration
// is overwritten with the supplied value.
//
// Advancing from Agreed (or from an unknown status) fails with
// *InvalidTransitionError and leaves a unchanged.
func Advance(a *models.Assignment, now time.Time, durationDays *int) error {
	cur := Status(a.Status)
	next, ok := forward[cur]
	if !ok {
		return &InvalidTransitionError{Op: "advance", From: cur}
	}

	stamp := DateOnly(now)
	*actualDate(a, next) = &stamp
	if cur == StatusTransferred && durationDays != nil {
		d := *durationDays
		a.PlannedDurationDays = &d
	}
	a.Status = string(next)
	return nil
}

// Revert moves a back to the previous status, clearing the actual date of
// the status being left. Reverting from Created (or from an unknown status)
// fails with *InvalidTransitionError and leaves a unchanged.
func Revert(a *models.Assignment) error {
	cur := Status(a.Status)
	prev, ok := backward[cur]
	if !ok {
		return &InvalidTransitionError{Op: "revert", From: cur}
	}

	*actualDate(a, cur) = nil
	a.Status = string(prev)
	return nil
}

// CheckDatePrefix verifies the actual-date invariant: the populated actual
// dates must be exactly the statuses up to and including the current one,
// with no gaps and nothing beyond. Returns a descriptive error on the first
// violation found, nil otherwise.
func CheckDatePrefix(a *models.Assignment) error {
	cur := Status(a.Status)
	curIdx := cur.index()
	if curIdx < 0 {
		return fmt.Errorf("unknown status %q", a.Status)
	}

	for i, s := range order {
		if i == 0 {
			continue // Created carries no actual date
		}
		populated := *actualDate(a, s) != nil
		if i <= curIdx && !populated {
			return fmt.Errorf("status is %q but actual date for %q is absent", cur, s)
		}
		if i > curIdx && populated {
			return fmt.Errorf("status is %q but actual date for later status %q is set", cur, s)
		}
	}
	return nil
}
