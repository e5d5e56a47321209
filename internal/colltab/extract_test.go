package colltab

import "testing"

const (
	kRune        = 0x006B
	dotAboveRune = 0x0307 // COMBINING DOT ABOVE, ccc=230
	dotBelowRune = 0x0323 // COMBINING DOT BELOW, ccc=220
	acuteRune    = 0x0301 // COMBINING ACUTE ACCENT, ccc=230
)

func TestExtractNoContractionUnderDefaultTable(t *testing.T) {
	// Under plain DUCET, "ch" is not a contraction: extraction of "ch"
	// yields the CEAs of "c" then "h" separately.
	cElem := []Elem{{Primary: 0x10}}
	hElem := []Elem{{Primary: 0x20}}
	tr := NewTrie()
	tr.Insert([]rune{'c'}, cElem)
	tr.Insert([]rune{'h'}, hElem)
	table := &Table{Trie: tr, Config: Config900}

	x := NewExtractor(table, newFakeDB())
	got, err := x.Extract([]rune{'c', 'h'})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 2 || got[0] != cElem[0] || got[1] != hElem[0] {
		t.Fatalf("got %v, want [%v %v]", got, cElem[0], hElem[0])
	}
}

func TestExtractContractionConsumedAsOneStep(t *testing.T) {
	chElem := []Elem{{Primary: 0x99}}
	tr := NewTrie()
	tr.Insert([]rune{'c'}, []Elem{{Primary: 0x10}})
	tr.Insert([]rune{'c', 'h'}, chElem)
	table := &Table{Trie: tr, Config: Config900}

	x := NewExtractor(table, newFakeDB())
	got, err := x.Extract([]rune{'c', 'h'})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 1 || got[0] != chElem[0] {
		t.Fatalf("got %v, want single contraction element %v", got, chElem)
	}
}

func TestExtractDiscontiguousNonStarterMatch(t *testing.T) {
	// Input: k, dot-below (ccc=220), dot-above (ccc=230). The table binds
	// the contraction k+dot-above. Since 220 does not block 230,
	// extraction should recognize the discontiguous contraction and emit
	// its CEA followed by the CEA of the skipped dot-below.
	kDotAbove := []Elem{{Primary: 0x500}}
	dotBelowElem := []Elem{{Primary: 0, Secondary: 0x30}}
	tr := NewTrie()
	tr.Insert([]rune{kRune}, []Elem{{Primary: 0x300}})
	tr.Insert([]rune{kRune, dotAboveRune}, kDotAbove)
	tr.Insert([]rune{dotBelowRune}, dotBelowElem)
	table := &Table{Trie: tr, Config: Config900}

	x := NewExtractor(table, newFakeDB())
	got, err := x.Extract([]rune{kRune, dotBelowRune, dotAboveRune})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 2 || got[0] != kDotAbove[0] || got[1] != dotBelowElem[0] {
		t.Fatalf("got %v, want [%v %v]", got, kDotAbove[0], dotBelowElem[0])
	}
}

func TestExtractNonStarterBlockedBySameOrHigherCCC(t *testing.T) {
	// Two non-starters of the same combining class: the second is blocked
	// from reaching the starter and must not be pulled into a contraction.
	kDotAbove := []Elem{{Primary: 0x500}}
	tr := NewTrie()
	tr.Insert([]rune{kRune}, []Elem{{Primary: 0x300}})
	tr.Insert([]rune{kRune, dotAboveRune}, kDotAbove)
	table := &Table{Trie: tr, Config: Config900}

	db := newFakeDB()
	db.ccc[acuteRune] = 230 // same class as dot-above: blocks it.

	x := NewExtractor(table, db)
	got, err := x.Extract([]rune{kRune, acuteRune, dotAboveRune})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	// "k" alone first; the two combining marks are not entries in this
	// trimmed test table, so they fall through to implicit weighting.
	if len(got) < 1 || got[0].Primary != 0x300 {
		t.Fatalf("got %v, want k's CEA first with no discontiguous match", got)
	}
}

func TestExtractFallsBackToImplicitWeight(t *testing.T) {
	table := &Table{Trie: NewTrie(), Config: Config900}
	x := NewExtractor(table, newFakeDB())

	got, err := x.Extract([]rune{0x4E2D})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d elements, want 2 (implicit weight)", len(got))
	}
}

func TestExtractRejectsInvalidCodepoint(t *testing.T) {
	table := &Table{Trie: NewTrie(), Config: Config900}
	x := NewExtractor(table, newFakeDB())

	_, err := x.Extract([]rune{0x110000})
	if err == nil {
		t.Fatal("expected InvalidCodepointError, got nil")
	}
	if _, ok := err.(*InvalidCodepointError); !ok {
		t.Fatalf("got %T, want *InvalidCodepointError", err)
	}
}
