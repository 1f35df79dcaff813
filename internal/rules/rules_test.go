package rules_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zlobste/icmp6match/icmp6"
	"github.com/zlobste/icmp6match/internal/rules"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		name     string
		bytes    []byte
		expected *rules.File
	}{
		{
			"empty file",
			[]byte{},
			&rules.File{},
		},
		{
			"full",
			[]byte(`
rules:
  - match: "--icmpv6-type 128"
    comment: ping
  - match: "! --icmpv6-type 1/4"
  - match: "--icmpv6-type-range 130:132"
`),
			&rules.File{Rules: []rules.Rule{
				{Spec: icmp6.Exact{Type: 128, CodeMin: 0, CodeMax: 0xFF}, Comment: "ping"},
				{Spec: icmp6.Exact{Type: 1, CodeMin: 4, CodeMax: 4, Inverted: true}},
				{Spec: icmp6.TypeRange{MinType: 130, MaxType: 132}},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rules.Parse(tt.bytes)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("got %+v want %+v", got, tt.expected)
			}
		})
	}
}

func TestParseBadMatch(t *testing.T) {
	_, err := rules.Parse([]byte("rules:\n  - match: \"--icmpv6-type 256\"\n"))
	if !errors.Is(err, icmp6.ErrInvalidType) {
		t.Fatalf("expected invalid type, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := &rules.File{Rules: []rules.Rule{
		{Spec: icmp6.Exact{Type: 3, CodeMin: 1, CodeMax: 1, Inverted: true}, Comment: "reassembly timeout"},
		{Spec: icmp6.TypeRange{MinType: 0, MaxType: 127}},
	}}
	data, err := in.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	out, err := rules.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch:\n%s\ngot %+v", data, out)
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/rules.yaml"
	in := &rules.File{Rules: []rules.Rule{
		{Spec: icmp6.Exact{Type: 128, CodeMin: 0, CodeMax: 0xFF}, Comment: "allow ping"},
	}}
	if err := in.Save(path); err != nil {
		t.Fatal(err)
	}
	out, err := rules.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("got %+v want %+v", out, in)
	}
}
