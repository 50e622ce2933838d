// Package textclean strips markup from person names before they are stored.
// Message text is never passed through it.
package textclean

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every element; it is safe for concurrent use.
var strict = bluemonday.StrictPolicy()

// Strip removes HTML tags, decodes entities and trims surrounding whitespace.
// Output is plain text and must still be escaped when rendered.
func Strip(value string) string {
	if value == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(value)))
}
