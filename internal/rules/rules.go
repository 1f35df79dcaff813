// Package rules loads and saves persisted rule files: YAML documents whose
// match text is the canonical numeric save form. Loading re-parses every
// match through the save-form grammar, so a file that loads is guaranteed
// to round-trip.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zlobste/icmp6match/icmp6"
)

// Rule pairs a match criterion with an optional comment.
type Rule struct {
	Spec    icmp6.MatchSpec
	Comment string
}

// File is a parsed rule file.
type File struct {
	Rules []Rule
}

type rawFile struct {
	Rules []rawRule `yaml:"rules"`
}

type rawRule struct {
	Match   string `yaml:"match"`
	Comment string `yaml:"comment,omitempty"`
}

// Parse decodes a rule document. Any malformed match fails the whole load
// with the offending text echoed back.
func Parse(data []byte) (*File, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("rules: decode: %w", err)
	}
	f := &File{}
	for i, rr := range raw.Rules {
		spec, err := icmp6.ParseSave(rr.Match)
		if err != nil {
			return nil, fmt.Errorf("rules: rule %d: %w", i+1, err)
		}
		f.Rules = append(f.Rules, Rule{Spec: spec, Comment: rr.Comment})
	}
	return f, nil
}

// Load reads and parses a rule file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Marshal renders the file back to YAML. Matches are always re-rendered in
// save form, so marshalling canonicalizes whatever spelling was loaded.
func (f *File) Marshal() ([]byte, error) {
	var raw rawFile
	for _, r := range f.Rules {
		raw.Rules = append(raw.Rules, rawRule{Match: r.Spec.Save(), Comment: r.Comment})
	}
	return yaml.Marshal(raw)
}

// Save writes the canonicalized file to disk.
func (f *File) Save(path string) error {
	data, err := f.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
