package colltab

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// collationElementPattern matches one bracketed weight group, e.g.
// "[.1234.0020.0002]" or "[*1234.0020.0002.00012]" (the optional fourth
// field, variable-weighting quaternary, is matched but discarded by the
// Non-ignorable policy).
var collationElementPattern = regexp.MustCompile(
	`\[[.*]([0-9A-Fa-f]{4})\.([0-9A-Fa-f]{4})\.([0-9A-Fa-f]{4})(?:\.[0-9A-Fa-f]{4,5})?\]`,
)

var implicitWeightsPattern = regexp.MustCompile(
	`^@implicitweights\s+([0-9A-Fa-f]+)\.\.([0-9A-Fa-f]+)\s*;\s*([0-9A-Fa-f]+)\s*$`,
)

// Load parses a DUCET-format text source into a Table.
// name is used only for error messages. Load never skips a malformed data
// line silently: any line it cannot parse produces a *TableLoadError naming
// name and the 1-based line number.
func Load(r io.Reader, name string, cfg VariantConfig) (*Table, error) {
	t := &Table{Trie: NewTrie(), Config: cfg}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimRight(line, " \t\r")
		if line == "" || strings.HasPrefix(line, "@version") {
			continue
		}
		if strings.HasPrefix(line, "@implicitweights") {
			rng, err := parseImplicitWeights(line)
			if err != nil {
				return nil, &TableLoadError{File: name, Line: lineNo, Err: err}
			}
			t.ImplicitRanges = append(t.ImplicitRanges, rng)
			continue
		}
		key, elems, err := parseDataLine(line)
		if err != nil {
			return nil, &TableLoadError{File: name, Line: lineNo, Err: err}
		}
		t.Trie.Insert(key, elems)
	}
	if err := sc.Err(); err != nil {
		return nil, &TableLoadError{File: name, Line: lineNo, Err: err}
	}
	return t, nil
}

func parseImplicitWeights(line string) (ImplicitRange, error) {
	m := implicitWeightsPattern.FindStringSubmatch(line)
	if m == nil {
		return ImplicitRange{}, fmt.Errorf("malformed @implicitweights directive: %q", line)
	}
	start, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return ImplicitRange{}, fmt.Errorf("malformed @implicitweights start: %w", err)
	}
	end, err := strconv.ParseUint(m[2], 16, 32)
	if err != nil {
		return ImplicitRange{}, fmt.Errorf("malformed @implicitweights end: %w", err)
	}
	base, err := strconv.ParseUint(m[3], 16, 32)
	if err != nil {
		return ImplicitRange{}, fmt.Errorf("malformed @implicitweights base: %w", err)
	}
	return ImplicitRange{Start: rune(start), End: rune(end), Base: uint32(base)}, nil
}

func parseDataLine(line string) (key []rune, elems []Elem, err error) {
	left, right, ok := strings.Cut(line, ";")
	if !ok {
		return nil, nil, fmt.Errorf("missing ';' separator: %q", line)
	}
	key, err = parseCodepoints(left)
	if err != nil {
		return nil, nil, err
	}
	if len(key) == 0 {
		return nil, nil, fmt.Errorf("empty codepoint sequence: %q", line)
	}
	elems, err = parseCollationElements(right)
	if err != nil {
		return nil, nil, err
	}
	if len(elems) == 0 {
		return nil, nil, fmt.Errorf("no collation elements found: %q", line)
	}
	return key, elems, nil
}

func parseCodepoints(s string) ([]rune, error) {
	fields := strings.Fields(s)
	cps := make([]rune, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed codepoint %q: %w", f, err)
		}
		cps = append(cps, rune(v))
	}
	return cps, nil
}

func parseCollationElements(s string) ([]Elem, error) {
	var elems []Elem
	for _, m := range collationElementPattern.FindAllStringSubmatch(s, -1) {
		p, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed primary weight %q: %w", m[1], err)
		}
		sec, err := strconv.ParseUint(m[2], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed secondary weight %q: %w", m[2], err)
		}
		ter, err := strconv.ParseUint(m[3], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed tertiary weight %q: %w", m[3], err)
		}
		elems = append(elems, Elem{Primary: uint16(p), Secondary: uint16(sec), Tertiary: uint16(ter)})
	}
	return elems, nil
}
