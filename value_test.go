// value_test.go - value description tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stringOf(s string) *string {
	return &s
}

func TestSingletonValueOverwrites(t *testing.T) {
	def := &OptionDefinition{Name: "host", Kind: KindTyped, Converter: StringConverter}
	first := &ParsedOption{Definition: def, CommandLineForm: "--host=a", UnconvertedValue: stringOf("a")}
	second := &ParsedOption{Definition: def, CommandLineForm: "--host=b", UnconvertedValue: stringOf("b")}

	desc := newValueDescription(first)
	desc.addInstance(second)

	value, err := desc.GetValue()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("b", value); diff != "" {
		t.Fatal(diff)
	}

	sv, ok := desc.(*SingletonValue)
	if !ok {
		t.Fatalf("expected a singleton, got %T", desc)
	}
	if sv.EffectiveInstance() != second {
		t.Fatal("expected the last occurrence to win")
	}
}

func TestRepeatedValueAccumulates(t *testing.T) {
	def := &OptionDefinition{
		Name:           "define",
		Kind:           KindTyped,
		Converter:      StringConverter,
		AllowsMultiple: true,
	}
	first := &ParsedOption{Definition: def, UnconvertedValue: stringOf("a")}
	second := &ParsedOption{Definition: def, UnconvertedValue: stringOf("b")}

	desc := newValueDescription(first)
	desc.addInstance(second)

	if _, ok := desc.(*RepeatedValue); !ok {
		t.Fatalf("expected an accumulating description, got %T", desc)
	}
	value, err := desc.GetValue()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"a", "b"}, value); diff != "" {
		t.Fatal(diff)
	}
	if len(desc.Instances()) != 2 {
		t.Fatalf("expected two instances, got %d", len(desc.Instances()))
	}
}

func TestExpansionMarkerHasNoValue(t *testing.T) {
	def := &OptionDefinition{
		Name:      "all",
		Kind:      KindVoid,
		Expansion: []string{"--a=1"},
	}
	instance := &ParsedOption{Definition: def}

	desc := newValueDescription(instance)
	if _, ok := desc.(*ExpansionMarker); !ok {
		t.Fatalf("expected an expansion marker, got %T", desc)
	}
	value, err := desc.GetValue()
	if err != nil {
		t.Fatal(err)
	}
	if value != nil {
		t.Fatalf("expected no value, got %v", value)
	}
}

func TestDefaultValueDescription(t *testing.T) {
	def := &OptionDefinition{
		Name:         "jobs",
		Kind:         KindTyped,
		Converter:    IntConverter,
		DefaultValue: "8",
	}
	desc := defaultValueDescription{def: def}

	value, err := desc.GetValue()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(8, value); diff != "" {
		t.Fatal(diff)
	}
	if len(desc.Instances()) != 0 {
		t.Fatal("synthesized defaults have no instances")
	}
}

func TestDefaultValueDescriptionSurfacesConversionError(t *testing.T) {
	def := &OptionDefinition{
		Name:         "jobs",
		Kind:         KindTyped,
		Converter:    IntConverter,
		DefaultValue: "abc",
	}
	desc := defaultValueDescription{def: def}

	_, err := desc.GetValue()
	if err == nil {
		t.Fatal("expected a conversion error")
	}
	expect := `While parsing option --jobs=abc: "abc" is not an integer`
	if diff := cmp.Diff(expect, err.Error()); diff != "" {
		t.Fatal(diff)
	}
}
