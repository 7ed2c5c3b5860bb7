package inputval_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/eneca-dev/handoff/internal/app/system/inputval"
)

func isValidationError(err error, field string) bool {
	var ve *inputval.ValidationError
	return errors.As(err, &ve) && ve.Field == field
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "Review drawings", "Review drawings", false},
		{"trimmed", "  Review drawings  ", "Review drawings", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("x", inputval.MaxTitleLen+1), "", true},
		{"at limit", strings.Repeat("x", inputval.MaxTitleLen), strings.Repeat("x", inputval.MaxTitleLen), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inputval.Title(tt.in)
			if tt.wantErr {
				if !isValidationError(err, "title") {
					t.Errorf("Title(%q): expected title ValidationError, got %v", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Title(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLink(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"https://example.com/doc", false},
		{"http://intranet/task/42", false},
		{"ftp://example.com", true},
		{"not a url", true},
		{"/relative/path", true},
	}
	for _, tt := range tests {
		_, err := inputval.Link(tt.in)
		if tt.wantErr && !isValidationError(err, "link") {
			t.Errorf("Link(%q): expected link ValidationError, got %v", tt.in, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Link(%q): unexpected error %v", tt.in, err)
		}
	}
}

func TestDurationDays(t *testing.T) {
	valid, zero, negative, huge := 14, 0, -3, inputval.MaxDurationDays+1

	if err := inputval.DurationDays(nil); err != nil {
		t.Errorf("nil duration: unexpected error %v", err)
	}
	if err := inputval.DurationDays(&valid); err != nil {
		t.Errorf("valid duration: unexpected error %v", err)
	}
	for _, d := range []*int{&zero, &negative, &huge} {
		if err := inputval.DurationDays(d); !isValidationError(err, "planned_duration_days") {
			t.Errorf("DurationDays(%d): expected ValidationError, got %v", *d, err)
		}
	}
}

func TestDescription(t *testing.T) {
	if _, err := inputval.Description(strings.Repeat("x", inputval.MaxDescriptionLen+1)); !isValidationError(err, "description") {
		t.Errorf("over-limit description: expected ValidationError, got %v", err)
	}
	got, err := inputval.Description("  note  ")
	if err != nil || got != "note" {
		t.Errorf("Description: got %q err=%v", got, err)
	}
}
