// registry.go - option metadata registry.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import "fmt"

// Schema groups the option definitions extracted from one options
// record type, together with a constructor for fresh instances.
type Schema struct {
	// Name identifies the schema in diagnostics.
	Name string

	// Definitions are the options belonging to the schema.
	Definitions []*OptionDefinition

	// New returns a pointer to a fresh instance of the record,
	// preseeded with the prototype's field values.
	New func() any
}

// ErrDuplicateOptionName indicates two definitions sharing a long name.
type ErrDuplicateOptionName struct {
	// Name is the long name that appears more than once.
	Name string
}

var _ error = ErrDuplicateOptionName{}

// Error returns a string representation of this error.
func (err ErrDuplicateOptionName) Error() string {
	return fmt.Sprintf("duplicate option name: --%s", err.Name)
}

// ErrDuplicateAbbrev indicates two definitions sharing an abbreviation.
type ErrDuplicateAbbrev struct {
	// Abbrev is the abbreviation that appears more than once.
	Abbrev byte
}

var _ error = ErrDuplicateAbbrev{}

// Error returns a string representation of this error.
func (err ErrDuplicateAbbrev) Error() string {
	return fmt.Sprintf("duplicate option abbreviation: -%c", err.Abbrev)
}

// ErrEmptyName indicates a definition with an empty long name.
type ErrEmptyName struct{}

var _ error = ErrEmptyName{}

// Error returns a string representation of this error.
func (err ErrEmptyName) Error() string {
	return "option name cannot be empty"
}

// ErrExpansionWrapperConflict indicates a definition that is both an
// expansion option and a wrapper option.
type ErrExpansionWrapperConflict struct {
	// Name is the offending definition's long name.
	Name string
}

var _ error = ErrExpansionWrapperConflict{}

// Error returns a string representation of this error.
func (err ErrExpansionWrapperConflict) Error() string {
	return fmt.Sprintf("option --%s cannot be both an expansion and a wrapper", err.Name)
}

// ErrMissingConverter indicates a typed definition with no converter.
type ErrMissingConverter struct {
	// Name is the offending definition's long name.
	Name string
}

var _ error = ErrMissingConverter{}

// Error returns a string representation of this error.
func (err ErrMissingConverter) Error() string {
	return fmt.Sprintf("typed option --%s has no converter", err.Name)
}

// ErrInvalidDefault indicates a default value rejected by the
// definition's own converter.
type ErrInvalidDefault struct {
	// Name is the offending definition's long name.
	Name string

	// Reason is the converter failure.
	Reason error
}

var _ error = ErrInvalidDefault{}

// Error returns a string representation of this error.
func (err ErrInvalidDefault) Error() string {
	return fmt.Sprintf("invalid default for option --%s: %s", err.Name, err.Reason)
}

// Unwrap returns the converter failure.
func (err ErrInvalidDefault) Unwrap() error {
	return err.Reason
}

// Registry holds every known [OptionDefinition], keyed by long name
// and by single-character abbreviation.
//
// A Registry is immutable after construction and safe for concurrent
// reads. Parsers sharing a registry remain single-owner state
// machines; the shared metadata is the only concurrency-safe part.
//
// Expansion graphs must be acyclic: an expansion option whose tokens
// eventually re-trigger the option itself makes parsing diverge. The
// registry owns this obligation; the parse engine does not detect
// cycles.
type Registry struct {
	all      []*OptionDefinition
	byAbbrev map[byte]*OptionDefinition
	byName   map[string]*OptionDefinition
	schemas  []*Schema
}

// NewRegistry validates the given schemas and builds a [Registry]
// from their definitions.
//
// Validation failures mean a bug in a schema declaration, not a user
// mistake, so callers typically assert on the returned error.
func NewRegistry(schemas ...*Schema) (*Registry, error) {
	reg := &Registry{
		all:      nil,
		byAbbrev: make(map[byte]*OptionDefinition),
		byName:   make(map[string]*OptionDefinition),
		schemas:  schemas,
	}
	for _, sch := range schemas {
		for _, def := range sch.Definitions {
			if err := reg.add(def); err != nil {
				return nil, err
			}
		}
	}
	return reg, nil
}

// NewRegistryFromDefinitions builds a [Registry] from hand-written
// definitions not belonging to any schema record.
func NewRegistryFromDefinitions(defs ...*OptionDefinition) (*Registry, error) {
	return NewRegistry(&Schema{Name: "definitions", Definitions: defs})
}

func (rx *Registry) add(def *OptionDefinition) error {
	if def.Name == "" {
		return ErrEmptyName{}
	}
	if _, found := rx.byName[def.Name]; found {
		return ErrDuplicateOptionName{Name: def.Name}
	}
	if def.IsExpansion() && def.Wrapper {
		return ErrExpansionWrapperConflict{Name: def.Name}
	}
	if def.Kind == KindTyped && def.Converter == nil {
		return ErrMissingConverter{Name: def.Name}
	}
	if def.Abbrev != 0 {
		if _, found := rx.byAbbrev[def.Abbrev]; found {
			return ErrDuplicateAbbrev{Abbrev: def.Abbrev}
		}
		rx.byAbbrev[def.Abbrev] = def
	}
	if def.DefaultValue != "" {
		if cv := def.converter(); cv != nil {
			if _, err := cv.Convert(def.DefaultValue); err != nil {
				return ErrInvalidDefault{Name: def.Name, Reason: err}
			}
		}
	}
	rx.byName[def.Name] = def
	rx.all = append(rx.all, def)
	return nil
}

// ByName returns the definition with the given long name, or nil.
func (rx *Registry) ByName(name string) *OptionDefinition {
	return rx.byName[name]
}

// ByAbbrev returns the definition with the given single-character
// abbreviation, or nil.
func (rx *Registry) ByAbbrev(abbrev byte) *OptionDefinition {
	return rx.byAbbrev[abbrev]
}

// All returns every definition in registration order. The returned
// slice is shared: callers must not mutate it.
func (rx *Registry) All() []*OptionDefinition {
	return rx.all
}

// Schemas returns the schemas the registry was built from.
func (rx *Registry) Schemas() []*Schema {
	return rx.schemas
}

// EvaluateExpansion returns the argument tokens the given expansion
// option expands to, given its optional unconverted value.
func (rx *Registry) EvaluateExpansion(def *OptionDefinition, value *string) []string {
	if def.ExpansionFunc != nil {
		return def.ExpansionFunc(value)
	}
	return def.Expansion
}
