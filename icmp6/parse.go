package icmp6

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors
var (
	ErrAmbiguousName   = errors.New("icmp6: ambiguous type name")
	ErrInvalidType     = errors.New("icmp6: invalid type")
	ErrInvalidCode     = errors.New("icmp6: invalid code")
	ErrInvalidRange    = errors.New("icmp6: invalid type range")
	ErrUnknownSelector = errors.New("icmp6: unknown selector")
)

// ParseTypeSelector resolves a single-type selector: a catalogue name
// (matched as a case-insensitive, unambiguous prefix) or, when no name
// matches, a numeric `<type>` or `<type>/<code>` with both components in
// [0, 255]. A bare numeric type matches any code.
func ParseTypeSelector(raw string, inverted bool) (Exact, error) {
	entry, ok, err := resolveName(raw)
	if err != nil {
		return Exact{}, err
	}
	if ok {
		return Exact{Type: entry.Type, CodeMin: entry.CodeMin, CodeMax: entry.CodeMax, Inverted: inverted}, nil
	}
	typ, codeMin, codeMax, err := parseNumeric(raw)
	if err != nil {
		return Exact{}, err
	}
	return Exact{Type: typ, CodeMin: codeMin, CodeMax: codeMax, Inverted: inverted}, nil
}

// ParseTypeRangeSelector resolves a type-range selector of the exact form
// `<min>:<max>` with both bounds in [0, 255] and min ≤ max. No name lookup,
// no trailing characters.
func ParseTypeRangeSelector(raw string) (TypeRange, error) {
	minType, maxType, err := parseRange(raw)
	if err != nil {
		return TypeRange{}, err
	}
	return TypeRange{MinType: minType, MaxType: maxType}, nil
}

// resolveName scans the catalogue in table order for entries whose name has
// input as a case-insensitive prefix. A second candidate fails immediately
// with both conflicting names; zero candidates reports ok=false so the
// caller falls through to the numeric grammar. The empty string is a prefix
// of every name and is therefore always ambiguous.
func resolveName(input string) (CatalogueEntry, bool, error) {
	match := -1
	for i, e := range catalogue {
		if len(input) > len(e.Name) || !strings.EqualFold(e.Name[:len(input)], input) {
			continue
		}
		if match >= 0 {
			return CatalogueEntry{}, false, fmt.Errorf("%w %q: %q or %q?",
				ErrAmbiguousName, input, catalogue[match].Name, e.Name)
		}
		match = i
	}
	if match < 0 {
		return CatalogueEntry{}, false, nil
	}
	return catalogue[match], true, nil
}

// parseNumeric handles `<type>` and `<type>/<code>`. Without a code the
// criterion matches any code for the type; with one it matches exactly that
// code.
func parseNumeric(input string) (typ, codeMin, codeMax uint8, err error) {
	typePart, codePart, hasCode := strings.Cut(input, "/")
	n, err := strconv.ParseUint(typePart, 10, 8)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, 0, 0, fmt.Errorf("%w %q", ErrInvalidType, typePart)
		}
		return 0, 0, 0, fmt.Errorf("%w %q", ErrUnknownSelector, input)
	}
	typ = uint8(n)
	if !hasCode {
		return typ, 0, 0xFF, nil
	}
	c, err := strconv.ParseUint(codePart, 10, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w %q", ErrInvalidCode, codePart)
	}
	return typ, uint8(c), uint8(c), nil
}

func parseRange(input string) (minType, maxType uint8, err error) {
	lo, hi, found := strings.Cut(input, ":")
	if !found || strings.Contains(hi, ":") {
		return 0, 0, fmt.Errorf("%w %q", ErrInvalidRange, input)
	}
	minVal, err := strconv.ParseUint(lo, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q", ErrInvalidRange, input)
	}
	maxVal, err := strconv.ParseUint(hi, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q", ErrInvalidRange, input)
	}
	if minVal > maxVal {
		return 0, 0, fmt.Errorf("%w %q", ErrInvalidRange, input)
	}
	return uint8(minVal), uint8(maxVal), nil
}
