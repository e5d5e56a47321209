// Package unicodedb provides the default colltab.CharacterDatabase: the
// Unicode character database lookups (canonical combining class, general-
// category assignment) and NFD normalization that sit outside the
// collation core as external collaborators.
//
// It is a thin wrapper over golang.org/x/text/unicode/norm (NFD and
// combining class) and golang.org/x/text/unicode/rangetable (merging the
// stdlib unicode package's general-category tables into a single
// "assigned" test), not a reimplementation of either.
package unicodedb

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

// assigned is the union of every general-category range table the stdlib
// unicode package ships. Go's unicode package tabulates every assigned
// category except "unassigned" itself, so membership in this merged table
// is exactly the "general category other than Cn" test the implicit-weight
// calculator needs.
var assigned = mergeCategories()

func mergeCategories() *unicode.RangeTable {
	tabs := make([]*unicode.RangeTable, 0, len(unicode.Categories))
	for _, t := range unicode.Categories {
		tabs = append(tabs, t)
	}
	return rangetable.Merge(tabs...)
}

// DB is the default colltab.CharacterDatabase, backed by the Unicode
// Character Database version built into the running Go toolchain's
// unicode and golang.org/x/text packages.
type DB struct{}

// CombiningClass returns r's canonical combining class.
func (DB) CombiningClass(r rune) uint8 {
	return norm.NFD.PropertiesString(string(r)).CCC()
}

// Assigned reports whether r belongs to any Unicode general category
// other than "unassigned".
func (DB) Assigned(r rune) bool {
	return unicode.Is(assigned, r)
}

// NFD returns s normalized to Unicode Normalization Form D, as codepoints.
func (DB) NFD(s string) []rune {
	return []rune(norm.NFD.String(s))
}
