// canonical_test.go - canonicalizer ordering tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCanonicalListSortsByName(t *testing.T) {
	px := NewParser(newTestRegistry(t))
	parseAll(t, px, "--host=h", "--b=2", "--a=1", "--foo")

	expect := []string{"--a=1", "--b=2", "--foo=1", "--host=h"}
	if diff := cmp.Diff(expect, px.AsCanonicalizedList()); diff != "" {
		t.Fatal(diff)
	}
}

func TestCanonicalListGroupsImplicitRequirementsLast(t *testing.T) {
	px := NewParser(newTestRegistry(t))
	parseAll(t, px, "--core_library", "--a=1")

	// --core_library carries implicit requirements, so it trails
	// the lexicographically sorted options despite its name.
	expect := []string{"--a=1", "--core_library=1"}
	if diff := cmp.Diff(expect, px.AsCanonicalizedList()); diff != "" {
		t.Fatal(diff)
	}
}

func TestCanonicalListElidesExpansionOptions(t *testing.T) {
	px := NewParser(newTestRegistry(t))
	parseAll(t, px, "--all", "--host=h")

	expect := []string{"--a=1", "--b=2", "--host=h"}
	if diff := cmp.Diff(expect, px.AsCanonicalizedList()); diff != "" {
		t.Fatal(diff)
	}
}

func TestCanonicalListKeepsRepeatedEntriesInInsertionOrder(t *testing.T) {
	px := NewParser(newTestRegistry(t))
	parseAll(t, px, "--define=z", "--host=h", "--define=a")

	expect := []string{"--define=z", "--define=a", "--host=h"}
	if diff := cmp.Diff(expect, px.AsCanonicalizedList()); diff != "" {
		t.Fatal(diff)
	}
}

func TestSingletonReplacementMovesToTail(t *testing.T) {
	px := NewParser(newTestRegistry(t))
	parseAll(t, px, "--host=a", "--a=1", "--host=b")

	// Replacing a singleton removes the earlier entry and appends
	// at the tail; the lexicographic sort then settles the final
	// order, so this is observable only through the multimap.
	entries := px.canonicalValues.Get(px.registry.ByName("host"))
	if len(entries) != 1 {
		t.Fatalf("expected a single canonical entry, got %d", len(entries))
	}
	if diff := cmp.Diff("--host=b", entries[0].CanonicalForm()); diff != "" {
		t.Fatal(diff)
	}
	all := px.canonicalValues.Entries()
	if all[len(all)-1].value != entries[0] {
		t.Fatal("expected the replacement at the tail of the multimap")
	}
}

func TestEffectiveOptionsCoverEveryDefinition(t *testing.T) {
	registry := newTestRegistry(t)
	px := NewParser(registry)
	parseAll(t, px, "--host=h")

	effective := px.AsListOfEffectiveOptions()
	if len(effective) != len(registry.All()) {
		t.Fatalf("expected %d descriptions, got %d", len(registry.All()), len(effective))
	}

	byName := make(map[string]OptionValueDescription)
	for _, desc := range effective {
		byName[desc.Definition().Name] = desc
	}

	// Set options surface their value, unset ones their default.
	value, err := byName["host"].GetValue()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("h", value); diff != "" {
		t.Fatal(diff)
	}
	value, err = byName["jobs"].GetValue()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(8, value); diff != "" {
		t.Fatal(diff)
	}
	value, err = byName["strict"].GetValue()
	if err != nil {
		t.Fatal(err)
	}
	if value != nil {
		t.Fatalf("expected no value for unset option without default, got %v", value)
	}
}
