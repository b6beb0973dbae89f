// bind_test.go - schema materialization tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildRecord is a hand-bound schema record: the setters below stand
// in for the closures pkg/schema generates via reflection.
type buildRecord struct {
	Host    string
	Jobs    int
	Defines []string
}

func newBuildSchema() *Schema {
	return &Schema{
		Name: "buildRecord",
		Definitions: []*OptionDefinition{
			{
				Name:      "host",
				Kind:      KindTyped,
				Converter: StringConverter,
				Setter: func(instance any, value any) error {
					instance.(*buildRecord).Host = value.(string)
					return nil
				},
			},
			{
				Name:         "jobs",
				Kind:         KindTyped,
				Converter:    IntConverter,
				DefaultValue: "4",
				Setter: func(instance any, value any) error {
					instance.(*buildRecord).Jobs = value.(int)
					return nil
				},
			},
			{
				Name:           "define",
				Kind:           KindTyped,
				Converter:      StringConverter,
				AllowsMultiple: true,
				Setter: func(instance any, value any) error {
					record := instance.(*buildRecord)
					for _, item := range value.([]any) {
						record.Defines = append(record.Defines, item.(string))
					}
					return nil
				},
			},
		},
		New: func() any {
			return &buildRecord{Host: "localhost"}
		},
	}
}

func TestMaterialize(t *testing.T) {
	sch := newBuildSchema()
	registry, err := NewRegistry(sch)
	if err != nil {
		t.Fatal(err)
	}

	px := NewParser(registry)
	parseAll(t, px, "--jobs=16", "--define=a", "--define=b")

	record := px.Materialize(sch).(*buildRecord)

	expect := &buildRecord{
		Host:    "localhost", // prototype value survives when unset
		Jobs:    16,
		Defines: []string{"a", "b"},
	}
	if diff := cmp.Diff(expect, record); diff != "" {
		t.Fatal(diff)
	}
}

func TestMaterializeUsesDeclaredDefaults(t *testing.T) {
	sch := newBuildSchema()
	registry, err := NewRegistry(sch)
	if err != nil {
		t.Fatal(err)
	}

	px := NewParser(registry)
	record := px.Materialize(sch).(*buildRecord)

	// --jobs declares default "4", which beats the zero value; the
	// prototype supplies --host.
	expect := &buildRecord{Host: "localhost", Jobs: 4, Defines: nil}
	if diff := cmp.Diff(expect, record); diff != "" {
		t.Fatal(diff)
	}
}

func TestMaterializeReturnsFreshInstances(t *testing.T) {
	sch := newBuildSchema()
	registry, err := NewRegistry(sch)
	if err != nil {
		t.Fatal(err)
	}

	px := NewParser(registry)
	parseAll(t, px, "--host=a")

	first := px.Materialize(sch).(*buildRecord)
	second := px.Materialize(sch).(*buildRecord)
	if first == second {
		t.Fatal("expected distinct instances")
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}
}

func TestMaterializePanicsOnSetterFailure(t *testing.T) {
	sch := &Schema{
		Name: "broken",
		Definitions: []*OptionDefinition{
			{
				Name:      "host",
				Kind:      KindTyped,
				Converter: StringConverter,
				Setter: func(instance any, value any) error {
					return fmt.Errorf("mumble")
				},
			},
		},
		New: func() any { return &buildRecord{} },
	}
	registry, err := NewRegistry(sch)
	if err != nil {
		t.Fatal(err)
	}

	px := NewParser(registry)
	parseAll(t, px, "--host=a")

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	px.Materialize(sch)
}
