// Package icmp6 resolves ICMPv6 selector strings — symbolic names, numeric
// types, type/code pairs and type ranges — into structured match criteria,
// and renders criteria back to canonical text for display and for
// persisted-rule serialization. Formatting a criterion and re-parsing the
// result yields an equivalent criterion.
package icmp6

// CatalogueEntry maps a symbolic name to an ICMPv6 type and a code range.
// Aliases are separate entries carrying the same (type, code range) triple.
type CatalogueEntry struct {
	Name    string
	Type    uint8
	CodeMin uint8
	CodeMax uint8
}

// catalogue is fixed at process start and scanned linearly for both name
// resolution and reverse lookup. Order is load-bearing: entries of one type
// are contiguous, the broadest code range leads its type group, aliases
// immediately follow the entry they duplicate, and the first exact-triple
// hit wins on reverse lookup.
var catalogue = []CatalogueEntry{
	{"destination-unreachable", 1, 0, 0xFF},
	{"no-route", 1, 0, 0},
	{"communication-prohibited", 1, 1, 1},
	{"beyond-scope", 1, 2, 2},
	{"address-unreachable", 1, 3, 3},
	{"port-unreachable", 1, 4, 4},
	{"failed-policy", 1, 5, 5},
	{"reject-route", 1, 6, 6},

	{"packet-too-big", 2, 0, 0xFF},

	{"time-exceeded", 3, 0, 0xFF},
	{"ttl-exceeded", 3, 0, 0xFF}, // alias
	{"ttl-zero-during-transit", 3, 0, 0},
	{"ttl-zero-during-reassembly", 3, 1, 1},

	{"parameter-problem", 4, 0, 0xFF},
	{"bad-header", 4, 0, 0},
	{"unknown-header-type", 4, 1, 1},
	{"unknown-option", 4, 2, 2},

	{"echo-request", 128, 0, 0xFF},
	{"ping", 128, 0, 0xFF}, // alias

	{"echo-reply", 129, 0, 0xFF},
	{"pong", 129, 0, 0xFF}, // alias

	{"router-solicitation", 133, 0, 0xFF},

	{"router-advertisement", 134, 0, 0xFF},

	{"neighbour-solicitation", 135, 0, 0xFF},
	{"neighbor-solicitation", 135, 0, 0xFF}, // alias

	{"neighbour-advertisement", 136, 0, 0xFF},
	{"neighbor-advertisement", 136, 0, 0xFF}, // alias

	{"redirect", 137, 0, 0xFF},
}

// Catalogue returns the full name table in table order. The returned slice
// is shared, read-only state; callers must not modify it.
func Catalogue() []CatalogueEntry { return catalogue }

// HelpListing renders the catalogue grouped by type, one line per distinct
// (type, code range): the first entry of a type starts a top-level line,
// a different code range within the same type starts an indented
// continuation line, and an alias (same type, same range) is appended in
// parentheses to the line it duplicates.
func HelpListing() []string {
	var lines []string
	for i, e := range catalogue {
		switch {
		case i > 0 && e.Type == catalogue[i-1].Type &&
			e.CodeMin == catalogue[i-1].CodeMin && e.CodeMax == catalogue[i-1].CodeMax:
			lines[len(lines)-1] += " (" + e.Name + ")"
		case i > 0 && e.Type == catalogue[i-1].Type:
			lines = append(lines, "   "+e.Name)
		default:
			lines = append(lines, e.Name)
		}
	}
	return lines
}
