// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans user-supplied rich text before it is stored.
// Assignment descriptions may carry simple formatting; titles are plain
// text and are stripped of markup entirely.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize returns s with unsafe HTML removed. Safe user-generated markup
// (paragraphs, emphasis, links with http/https hrefs) is preserved.
func Sanitize(s string) string {
	return ugc.Sanitize(s)
}

// StripTags removes all markup, returning plain text. Used for fields that
// must never carry HTML, like the assignment title.
func StripTags(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
