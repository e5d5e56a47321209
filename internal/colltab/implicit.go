package colltab

// CJK Unified Ideographs Core exceptions: twelve CJK Compatibility
// Ideographs that collate as if they were in the core block.
var cjkCompatibilityExceptions = map[rune]bool{
	0xFA0E: true, 0xFA0F: true, 0xFA11: true, 0xFA13: true,
	0xFA14: true, 0xFA1F: true, 0xFA21: true, 0xFA23: true,
	0xFA24: true, 0xFA27: true, 0xFA28: true, 0xFA29: true,
}

func inCJKCore(cp rune, cfg VariantConfig) bool {
	switch {
	case cp >= 0x4E00 && cp <= 0x9FCC:
		return true
	case cfg.CJKCore800 && cp >= 0x9FCD && cp <= 0x9FD5:
		return true
	case cfg.CJKCore1000 && cp >= 0x9FD6 && cp <= 0x9FEA:
		return true
	default:
		return cjkCompatibilityExceptions[cp]
	}
}

func inCJKExtension(cp rune, cfg VariantConfig) bool {
	switch {
	case cfg.ExtA && cp >= 0x3400 && cp <= 0x4DB5:
		return true
	case cfg.ExtB && cp >= 0x20000 && cp <= 0x2A6D6:
		return true
	case cfg.ExtC && cp >= 0x2A700 && cp <= 0x2B734:
		return true
	case cfg.ExtD && cp >= 0x2B740 && cp <= 0x2B81D:
		return true
	case cfg.ExtE && cp >= 0x2B820 && cp <= 0x2CEAF:
		return true
	case cfg.ExtF && cp >= 0x2CEB0 && cp <= 0x2EBE0:
		return true
	default:
		return false
	}
}

// ImplicitWeight derives the two-element collation-element array for a
// codepoint absent from the table. db.Assigned gates the CJK branches: an
// unassigned codepoint in a CJK range still falls through to the
// unassigned-codepoint branch.
func ImplicitWeight(cp rune, db CharacterDatabase, cfg VariantConfig, ranges []ImplicitRange) []Elem {
	var aaaa, bbbb uint32
	assigned := db.Assigned(cp)
	switch {
	case assigned && inCJKCore(cp, cfg):
		aaaa = 0xFB40 + uint32(cp>>15)
		bbbb = uint32(cp&0x7FFF) | 0x8000
	case assigned && inCJKExtension(cp, cfg):
		aaaa = 0xFB80 + uint32(cp>>15)
		bbbb = uint32(cp&0x7FFF) | 0x8000
	default:
		aaaa = 0xFBC0 + uint32(cp>>15)
		bbbb = uint32(cp&0x7FFF) | 0x8000
		for _, r := range ranges {
			if cp >= r.Start && cp <= r.End {
				aaaa = r.Base
				bbbb = uint32(cp-r.Start) | 0x8000
				break
			}
		}
	}
	return []Elem{
		{Primary: uint16(aaaa), Secondary: 0x0020, Tertiary: 0x0002},
		{Primary: uint16(bbbb), Secondary: 0x0000, Tertiary: 0x0000},
	}
}
