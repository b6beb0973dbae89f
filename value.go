// value.go - accumulated option values.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

// OptionValueDescription describes the accumulated value of one
// option across every occurrence seen so far.
//
// There are three variants: [SingletonValue] for ordinary options,
// [RepeatedValue] for options that allow multiple occurrences, and
// [ExpansionMarker] for expansion options, which carry no value of
// their own. A fourth, unexported variant synthesizes defaults for
// options that were never set.
type OptionValueDescription interface {
	// Definition returns the described option.
	Definition() *OptionDefinition

	// GetValue returns the effective converted value: the last
	// value for singletons, the ordered list of values for
	// repeated options, nil for expansion markers and for unset
	// voids. Conversion failures surface as [ErrConversion].
	GetValue() (any, error)

	// Instances returns the occurrences backing this description
	// in insertion order. Empty for synthesized defaults.
	Instances() []*ParsedOption

	// addInstance records one more occurrence, applying the
	// combination rule of the variant.
	addInstance(p *ParsedOption)
}

// newValueDescription constructs the variant matching the definition
// of the first occurrence.
func newValueDescription(p *ParsedOption) OptionValueDescription {
	def := p.Definition
	switch {
	case def.IsExpansion():
		return &ExpansionMarker{def: def, last: p}
	case def.AllowsMultiple:
		return &RepeatedValue{def: def, instances: []*ParsedOption{p}}
	default:
		return &SingletonValue{def: def, instance: p}
	}
}

// SingletonValue is the [OptionValueDescription] of an option whose
// repeated occurrences overwrite each other.
//
// The overwrite is unconditional: callers invoke parses in priority
// order, so the last occurrence seen is the winner.
type SingletonValue struct {
	def      *OptionDefinition
	instance *ParsedOption
}

var _ OptionValueDescription = &SingletonValue{}

// Definition implements [OptionValueDescription].
func (sv *SingletonValue) Definition() *OptionDefinition {
	return sv.def
}

// GetValue implements [OptionValueDescription].
func (sv *SingletonValue) GetValue() (any, error) {
	return sv.instance.convert()
}

// Instances implements [OptionValueDescription].
func (sv *SingletonValue) Instances() []*ParsedOption {
	return []*ParsedOption{sv.instance}
}

// EffectiveInstance returns the winning occurrence.
func (sv *SingletonValue) EffectiveInstance() *ParsedOption {
	return sv.instance
}

func (sv *SingletonValue) addInstance(p *ParsedOption) {
	sv.instance = p
}

// RepeatedValue is the [OptionValueDescription] of an option whose
// occurrences accumulate into an ordered list.
type RepeatedValue struct {
	def       *OptionDefinition
	instances []*ParsedOption
}

var _ OptionValueDescription = &RepeatedValue{}

// Definition implements [OptionValueDescription].
func (rv *RepeatedValue) Definition() *OptionDefinition {
	return rv.def
}

// GetValue implements [OptionValueDescription].
func (rv *RepeatedValue) GetValue() (any, error) {
	values := make([]any, 0, len(rv.instances))
	for _, p := range rv.instances {
		value, err := p.convert()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// Instances implements [OptionValueDescription].
func (rv *RepeatedValue) Instances() []*ParsedOption {
	return rv.instances
}

func (rv *RepeatedValue) addInstance(p *ParsedOption) {
	rv.instances = append(rv.instances, p)
}

// ExpansionMarker is the [OptionValueDescription] of an expansion
// option. The option carries no value of its own: its expansions do.
type ExpansionMarker struct {
	def  *OptionDefinition
	last *ParsedOption
}

var _ OptionValueDescription = &ExpansionMarker{}

// Definition implements [OptionValueDescription].
func (em *ExpansionMarker) Definition() *OptionDefinition {
	return em.def
}

// GetValue implements [OptionValueDescription].
func (em *ExpansionMarker) GetValue() (any, error) {
	return nil, nil
}

// Instances implements [OptionValueDescription].
func (em *ExpansionMarker) Instances() []*ParsedOption {
	return []*ParsedOption{em.last}
}

func (em *ExpansionMarker) addInstance(p *ParsedOption) {
	em.last = p
}

// defaultValueDescription synthesizes the effective value of an
// option that was never set.
type defaultValueDescription struct {
	def *OptionDefinition
}

var _ OptionValueDescription = defaultValueDescription{}

// Definition implements [OptionValueDescription].
func (dv defaultValueDescription) Definition() *OptionDefinition {
	return dv.def
}

// GetValue implements [OptionValueDescription].
func (dv defaultValueDescription) GetValue() (any, error) {
	if dv.def.DefaultValue == "" {
		return nil, nil
	}
	cv := dv.def.converter()
	if cv == nil {
		return nil, nil
	}
	value, err := cv.Convert(dv.def.DefaultValue)
	if err != nil {
		return nil, ErrConversion{
			Form:   "--" + dv.def.Name + "=" + dv.def.DefaultValue,
			Reason: err,
		}
	}
	return value, nil
}

// Instances implements [OptionValueDescription].
func (dv defaultValueDescription) Instances() []*ParsedOption {
	return nil
}

func (dv defaultValueDescription) addInstance(p *ParsedOption) {
	panic("cannot add instances to a synthesized default")
}
