package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// SanitizeTag cleans a client-supplied platform tag: strips any HTML,
// decodes entities and collapses whitespace. Tags come from a browser
// extension, so treat them as hostile input.
func SanitizeTag(s string) string {
	s = html.UnescapeString(s)

	p := bluemonday.StripTagsPolicy()
	s = p.Sanitize(s)
	s = html.UnescapeString(s)

	return strings.Join(strings.Fields(s), " ")
}
