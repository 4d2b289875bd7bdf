package catalog

import (
	"strings"
	"unicode"
)

// Slug converts a title into the display-navigation form the apps use in
// URLs: whitespace runs become single hyphens and the result is lowercased.
// The conversion is lossy; slugs are not identifiers.
func Slug(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	inSpace := false
	for _, r := range title {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte('-')
		}
		inSpace = false
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
