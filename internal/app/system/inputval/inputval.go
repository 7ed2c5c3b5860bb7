// internal/app/system/inputval/inputval.go

// Package inputval validates user-supplied assignment fields before they
// reach the store. Validation failures are *ValidationError values naming
// the offending field, so handlers can surface them as 400s distinct from
// store or workflow failures.
package inputval

import (
	"fmt"
	"net/url"
	"strings"
)

// Field length and range limits.
const (
	MaxTitleLen       = 300
	MaxDescriptionLen = 5000
	MaxLinkLen        = 2000
	MaxDurationDays   = 365
)

// ValidationError reports one invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Title checks the required assignment title: non-empty after trimming,
// within the length limit. Returns the trimmed value.
func Title(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if len(title) > MaxTitleLen {
		return "", &ValidationError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", MaxTitleLen)}
	}
	return title, nil
}

// Description checks the optional description length. Returns the trimmed
// value.
func Description(raw string) (string, error) {
	desc := strings.TrimSpace(raw)
	if len(desc) > MaxDescriptionLen {
		return "", &ValidationError{Field: "description", Message: fmt.Sprintf("must be at most %d characters", MaxDescriptionLen)}
	}
	return desc, nil
}

// Link checks the optional external link: when present it must parse as an
// absolute http(s) URL. Returns the trimmed value.
func Link(raw string) (string, error) {
	link := strings.TrimSpace(raw)
	if link == "" {
		return "", nil
	}
	if len(link) > MaxLinkLen {
		return "", &ValidationError{Field: "link", Message: fmt.Sprintf("must be at most %d characters", MaxLinkLen)}
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", &ValidationError{Field: "link", Message: "must be an absolute http(s) URL"}
	}
	return link, nil
}

// DurationDays checks the optional planned duration: positive and within
// the range limit.
func DurationDays(d *int) error {
	if d == nil {
		return nil
	}
	if *d <= 0 {
		return &ValidationError{Field: "planned_duration_days", Message: "must be positive"}
	}
	if *d > MaxDurationDays {
		return &ValidationError{Field: "planned_duration_days", Message: fmt.Sprintf("must be at most %d", MaxDurationDays)}
	}
	return nil
}
