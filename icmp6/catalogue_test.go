package icmp6

import (
	"strings"
	"testing"
)

func TestCatalogueOrdering(t *testing.T) {
	seen := map[uint8]bool{}
	for i, e := range catalogue {
		if e.Name == "" {
			t.Fatalf("entry %d has empty name", i)
		}
		if e.CodeMin > e.CodeMax {
			t.Fatalf("%s: code_min %d > code_max %d", e.Name, e.CodeMin, e.CodeMax)
		}
		if i > 0 && e.Type != catalogue[i-1].Type {
			if seen[e.Type] {
				t.Fatalf("%s: type %d group not contiguous", e.Name, e.Type)
			}
		}
		seen[e.Type] = true
	}
}

func TestCatalogueNamesUnique(t *testing.T) {
	names := map[string]bool{}
	for _, e := range catalogue {
		if names[e.Name] {
			t.Fatalf("duplicate name %q", e.Name)
		}
		names[e.Name] = true
	}
}

func TestHelpListing(t *testing.T) {
	lines := HelpListing()
	if len(lines) != 23 {
		t.Fatalf("expected 23 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[0] != "destination-unreachable" {
		t.Fatalf("first line: %q", lines[0])
	}
	if lines[1] != "   no-route" {
		t.Fatalf("sub-code line not indented: %q", lines[1])
	}
	if lines[len(lines)-1] != "redirect" {
		t.Fatalf("last line: %q", lines[len(lines)-1])
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{
		"time-exceeded (ttl-exceeded)",
		"echo-request (ping)",
		"echo-reply (pong)",
		"neighbour-solicitation (neighbor-solicitation)",
		"neighbour-advertisement (neighbor-advertisement)",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("listing missing %q:\n%s", want, joined)
		}
	}
}
