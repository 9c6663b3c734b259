package transform

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// reverse reverses user-perceived characters so combining marks and
// emoji sequences stay intact.
func reverse(s string) (string, error) {
	return uniseg.ReverseString(s), nil
}

func toUpper(s string) (string, error) {
	return strings.ToUpper(s), nil
}

func toLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

func removeSpaces(s string) (string, error) {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, s), nil
}
