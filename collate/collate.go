// Package collate implements string collation under the Unicode Collation
// Algorithm's Non-ignorable variable-weighting policy, using the Default
// Unicode Collation Element Table (DUCET) for a fixed set of published
// Unicode versions.
//
// A Collator is built once — loading its DUCET text and implicit-weight
// ranges — and is immutable thereafter; SortKey and Sort may be called
// concurrently from any number of goroutines.
package collate

import (
	"bytes"
	"sort"
	"unicode"

	"github.com/go-uca/uca/internal/colltab"
	"github.com/go-uca/uca/internal/unicodedb"
)

// Collator computes sort keys and orders strings according to the Unicode
// Collation Algorithm under the Non-ignorable variable-weighting policy.
type Collator struct {
	// UCA_VERSION identifies the DUCET version this Collator was built
	// against (e.g. "9.0.0").
	UCA_VERSION string

	table *colltab.Table
	db    colltab.CharacterDatabase
	// filterNonCharacters applies the variant-5.2.0 pre-pass: surrogates
	// and designated non-characters are dropped from the normalized input
	// before collation-element extraction.
	filterNonCharacters bool
}

func newCollator(v variant, db colltab.CharacterDatabase) (*Collator, error) {
	table, err := colltab.Load(bytes.NewReader(v.ducet), "allkeys-"+v.version+".txt", v.config)
	if err != nil {
		return nil, err
	}
	return &Collator{
		UCA_VERSION:         v.version,
		table:               table,
		db:                  db,
		filterNonCharacters: v.config.FilterNonCharacters,
	}, nil
}

// New returns the Collator for this module's default UCA version (see
// variant.go). It is equivalent to New9_0_0.
func New() (*Collator, error) { return newCollator(defaultVariant, unicodedb.DB{}) }

// New5_2_0 returns the Collator for UCA 5.2.0, including its surrogate and
// non-character pre-filter.
func New5_2_0() (*Collator, error) { return newCollator(variant520, unicodedb.DB{}) }

// New6_3_0 returns the Collator for UCA 6.3.0.
func New6_3_0() (*Collator, error) { return newCollator(variant630, unicodedb.DB{}) }

// New8_0_0 returns the Collator for UCA 8.0.0.
func New8_0_0() (*Collator, error) { return newCollator(variant800, unicodedb.DB{}) }

// New9_0_0 returns the Collator for UCA 9.0.0.
func New9_0_0() (*Collator, error) { return newCollator(variant900, unicodedb.DB{}) }

// New10_0_0 returns the Collator for UCA 10.0.0.
func New10_0_0() (*Collator, error) { return newCollator(variant1000, unicodedb.DB{}) }

// SortKey returns the sort key for s. Byte-wise (or here, word-wise)
// comparison of two sort keys reproduces UCA order between the strings
// they were computed from.
func (c *Collator) SortKey(s string) []uint16 {
	runes := c.db.NFD(s)
	if c.filterNonCharacters {
		runes = filterNonCharacters(runes)
	}
	elems, err := colltab.NewExtractor(c.table, c.db).Extract(runes)
	if err != nil {
		// NFD output of a valid Go string never contains a codepoint
		// outside [0, 0x10FFFF]; this can only indicate a bug in this
		// package, not a caller error.
		panic(err)
	}
	return colltab.SortKey(elems)
}

// Sort returns values stable-sorted by UCA order. The input is not
// modified.
func (c *Collator) Sort(values []string) []string {
	type keyed struct {
		s   string
		key []uint16
	}
	items := make([]keyed, len(values))
	for i, s := range values {
		items[i] = keyed{s: s, key: c.SortKey(s)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return colltab.Compare(items[i].key, items[j].key) < 0
	})
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.s
	}
	return out
}

// filterNonCharacters drops surrogates and designated non-characters from
// runes, per the variant-5.2.0 pre-pass. It must run after NFD
// normalization, not before: filtering first would change canonical
// equivalence.
func filterNonCharacters(runes []rune) []rune {
	out := runes[:0:0]
	for _, r := range runes {
		if unicode.Is(unicode.Cs, r) {
			continue
		}
		if isNonCharacter(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// isNonCharacter reports whether r is one of the 66 Unicode-designated
// non-characters: the last two codepoints of each of the 17 planes, and
// U+FDD0..U+FDEF.
func isNonCharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	low := r & 0xFFFF
	return low == 0xFFFE || low == 0xFFFF
}
