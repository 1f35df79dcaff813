package icmp6

import (
	"fmt"
	"strings"
)

// MatchSpec is a resolved match criterion: exactly one of Exact or
// TypeRange. The interface is sealed so a rule can never carry both modes.
type MatchSpec interface {
	// Render returns the interactive display form. When numeric is set the
	// symbolic reverse lookup is skipped.
	Render(numeric bool) string
	// Save returns the canonical persisted-rule text. Save form is always
	// numeric, independent of the catalogue.
	Save() string

	spec()
}

// Exact matches packets whose ICMPv6 type equals Type and whose code falls
// in [CodeMin, CodeMax], optionally inverted.
type Exact struct {
	Type     uint8 `json:"type" yaml:"type"`
	CodeMin  uint8 `json:"code_min" yaml:"code_min"`
	CodeMax  uint8 `json:"code_max" yaml:"code_max"`
	Inverted bool  `json:"inverted" yaml:"inverted"`
}

// TypeRange matches packets whose ICMPv6 type falls in [MinType, MaxType];
// no code constraint, no inversion.
type TypeRange struct {
	MinType uint8 `json:"min_type" yaml:"min_type"`
	MaxType uint8 `json:"max_type" yaml:"max_type"`
}

func (Exact) spec()     {}
func (TypeRange) spec() {}

func (m Exact) Render(numeric bool) string {
	if !numeric {
		for _, e := range catalogue {
			if e.Type == m.Type && e.CodeMin == m.CodeMin && e.CodeMax == m.CodeMax {
				if m.Inverted {
					return "!" + e.Name
				}
				return e.Name
			}
		}
	}
	var b strings.Builder
	if m.Inverted {
		b.WriteByte('!')
	}
	fmt.Fprintf(&b, "type %d", m.Type)
	switch {
	case m.CodeMin == m.CodeMax:
		fmt.Fprintf(&b, " code %d", m.CodeMin)
	case m.CodeMin != 0 || m.CodeMax != 0xFF:
		fmt.Fprintf(&b, " codes %d-%d", m.CodeMin, m.CodeMax)
	}
	return b.String()
}

func (m TypeRange) Render(bool) string {
	return fmt.Sprintf("type range %d-%d", m.MinType, m.MaxType)
}

// Save-form flag names. ParseSave accepts exactly what Save emits.
const (
	flagType      = "--icmpv6-type"
	flagTypeRange = "--icmpv6-type-range"
)

func (m Exact) Save() string {
	var b strings.Builder
	if m.Inverted {
		b.WriteString("! ")
	}
	fmt.Fprintf(&b, "%s %d", flagType, m.Type)
	if m.CodeMin != 0 || m.CodeMax != 0xFF {
		fmt.Fprintf(&b, "/%d", m.CodeMin)
	}
	return b.String()
}

func (m TypeRange) Save() string {
	return fmt.Sprintf("%s %d:%d", flagTypeRange, m.MinType, m.MaxType)
}

// ParseSave parses persisted-rule text produced by Save back into the
// equivalent MatchSpec.
func ParseSave(raw string) (MatchSpec, error) {
	fields := strings.Fields(raw)
	inverted := false
	if len(fields) > 0 && fields[0] == "!" {
		inverted = true
		fields = fields[1:]
	}
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w %q", ErrUnknownSelector, raw)
	}
	switch fields[0] {
	case flagType:
		typ, codeMin, codeMax, err := parseNumeric(fields[1])
		if err != nil {
			return nil, err
		}
		return Exact{Type: typ, CodeMin: codeMin, CodeMax: codeMax, Inverted: inverted}, nil
	case flagTypeRange:
		if inverted {
			return nil, fmt.Errorf("%w %q", ErrUnknownSelector, raw)
		}
		minType, maxType, err := parseRange(fields[1])
		if err != nil {
			return nil, err
		}
		return TypeRange{MinType: minType, MaxType: maxType}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSelector, raw)
	}
}
