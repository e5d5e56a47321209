package colltab

// ImplicitRange is one `@implicitweights START..END; BASE` directive from a
// DUCET source: codepoints in [Start, End] derive their implicit weight
// from Base rather than from the default unassigned-codepoint formula.
type ImplicitRange struct {
	Start, End rune
	Base       uint32
}

// VariantConfig selects which version-dependent behavior a Table uses: the
// set of enabled CJK Unified Ideograph extension ranges (see
// internal/colltab/implicit.go) and whether the variant-5.2.0 surrogate and
// non-character pre-filter applies. The five published configurations are
// provided as package-level values (Config520 .. Config1000) below.
type VariantConfig struct {
	Version string

	ExtA, ExtB, ExtC, ExtD, ExtE, ExtF bool
	CJKCore800, CJKCore1000            bool

	FilterNonCharacters bool
}

// Published per-version configurations: which CJK extension blocks and
// CJK core-block additions each Unicode Collation Algorithm version enables.
var (
	Config520 = VariantConfig{
		Version: "5.2.0",
		ExtA:    true, ExtB: true,
		FilterNonCharacters: true,
	}
	Config630 = VariantConfig{
		Version: "6.3.0",
		ExtA:    true, ExtB: true, ExtC: true, ExtD: true,
	}
	Config800 = VariantConfig{
		Version: "8.0.0",
		ExtA:    true, ExtB: true, ExtC: true, ExtD: true, ExtE: true,
		CJKCore800: true,
	}
	Config900 = VariantConfig{
		Version: "9.0.0",
		ExtA:    true, ExtB: true, ExtC: true, ExtD: true, ExtE: true,
		CJKCore800: true,
	}
	Config1000 = VariantConfig{
		Version: "10.0.0",
		ExtA:    true, ExtB: true, ExtC: true, ExtD: true, ExtE: true, ExtF: true,
		CJKCore800: true, CJKCore1000: true,
	}
)

// Table is a loaded DUCET: the prefix tree of explicit collation-element
// mappings, the implicit-weight ranges declared via @implicitweights, and
// the variant configuration it was loaded under. A Table is built once and
// is safe for concurrent read-only use thereafter.
type Table struct {
	Trie           *Trie
	ImplicitRanges []ImplicitRange
	Config         VariantConfig
}
