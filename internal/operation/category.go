package operation

import (
	"fmt"
	"strings"
)

// Category groups operations for filtering.
type Category string

const (
	CategoryAll       Category = "all" // pseudo category, matches every operation
	CategoryEncoding  Category = "encoding"
	CategoryHashing   Category = "hashing"
	CategoryCrypto    Category = "crypto"
	CategoryTransform Category = "transform"
	CategoryFormat    Category = "format"
)

// categoryOrder is the chip order shown to users.
var categoryOrder = []Category{
	CategoryAll,
	CategoryEncoding,
	CategoryHashing,
	CategoryCrypto,
	CategoryTransform,
	CategoryFormat,
}

var categoryLabels = map[Category]string{
	CategoryAll:       "ALL",
	CategoryEncoding:  "ENCODE",
	CategoryHashing:   "HASH",
	CategoryCrypto:    "CRYPTO",
	CategoryTransform: "TRANSFORM",
	CategoryFormat:    "FORMAT",
}

// Categories returns every category in display order, starting with
// CategoryAll.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Label returns the short upper-case chip label.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return strings.ToUpper(string(c))
}

// Valid reports whether c is a concrete operation category.
// CategoryAll is not valid on a descriptor.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok && c != CategoryAll
}

// ParseCategory accepts a category name or its chip label, case-insensitive.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryAll, nil
	}
	for _, c := range categoryOrder {
		if string(c) == s || strings.ToLower(c.Label()) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
