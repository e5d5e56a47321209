package colltab

// Extractor walks a codepoint sequence and produces the collation-element
// array the UCA S2 algorithm defines for it: longest-prefix matching
// against the table, the non-starter discontiguous-match extension
// (UCA §S2.1.1–S2.1.3), and implicit-weight fallback for codepoints the
// table does not cover.
type Extractor struct {
	Table *Table
	DB    CharacterDatabase
}

// NewExtractor returns an Extractor reading table and using db to resolve
// combining classes and assignment during extraction.
func NewExtractor(table *Table, db CharacterDatabase) *Extractor {
	if db == nil {
		panic("colltab: NewExtractor called with a nil CharacterDatabase")
	}
	return &Extractor{Table: table, DB: db}
}

// Extract returns the collation-element array for codepoints, which the
// caller must already have NFD-normalized (and, for variant 5.2.0, filtered
// for surrogates and non-characters). It returns an *InvalidCodepointError
// if any codepoint falls outside [0, 0x10FFFF].
func (x *Extractor) Extract(codepoints []rune) ([]Elem, error) {
	for _, cp := range codepoints {
		if cp < 0 || cp > 0x10FFFF {
			return nil, &InvalidCodepointError{Codepoint: cp}
		}
	}

	var out []Elem
	remaining := codepoints
	for len(remaining) > 0 {
		key, value, rest := x.Table.Trie.LongestPrefixMatch(remaining)

		// Repeatedly try to gather a discontiguous non-starter into the
		// current match, re-scanning from the start each time one is
		// adopted, until no further non-starter can be gathered. Taking
		// only the first discontiguous match per outer iteration would
		// miss sequences with more than one interposed non-starter.
		for {
			ok, nextKey, nextValue, nextRest := x.extendDiscontiguous(key, rest, value)
			if !ok {
				break
			}
			key, value, rest = nextKey, nextValue, nextRest
		}

		if value == nil {
			cp := rest[0]
			value = ImplicitWeight(cp, x.DB, x.Table.Config, x.Table.ImplicitRanges)
			rest = rest[1:]
		}

		out = append(out, value...)
		remaining = rest
	}
	return out, nil
}

// extendDiscontiguous scans rest for a non-starter that is not blocked from
// key and whose addition to key forms an exact, bound trie entry. On
// success it returns the extended key, the entry's collation-element
// array, and rest with that codepoint removed.
func (x *Extractor) extendDiscontiguous(key, rest []rune, value []Elem) (ok bool, newKey []rune, newValue []Elem, newRest []rune) {
	var lastClass uint8
	haveLast := false
	for i, c := range rest {
		cc := x.DB.CombiningClass(c)
		if cc == 0 || (haveLast && cc <= lastClass) {
			return false, nil, nil, nil
		}

		probe := make([]rune, len(key)+1)
		copy(probe, key)
		probe[len(key)] = c
		matched, probeValue, remainder := x.Table.Trie.LongestPrefixMatch(probe)
		if probeValue != nil && len(remainder) == 0 && len(matched) == len(probe) {
			rest2 := make([]rune, 0, len(rest)-1)
			rest2 = append(rest2, rest[:i]...)
			rest2 = append(rest2, rest[i+1:]...)
			return true, probe, probeValue, rest2
		}

		lastClass = cc
		haveLast = true
	}
	return false, nil, nil, nil
}
