package validators

import (
	"strings"
	"unicode"
)

// CatalogKey normalises a product id, option weight or category name taken from a request:
// surrounding whitespace and control characters are dropped, so " 2kg\n" and "2kg" address
// the same basket line. Search text is not a key and must not go through here.
func CatalogKey(input string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input))
}
