// parsed.go - parsed option occurrences.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

// SourceFunc maps an [OptionDefinition] to a human-readable string
// describing where its value came from (e.g., the rc file path).
type SourceFunc func(def *OptionDefinition) string

// FixedSource returns a [SourceFunc] that always yields source.
func FixedSource(source string) SourceFunc {
	return func(def *OptionDefinition) string {
		return source
	}
}

// Origin records the provenance of a single parsed occurrence.
type Origin struct {
	// Priority is the priority the occurrence was parsed at.
	Priority Priority

	// Source is the human-readable provenance string.
	Source string

	// ImplicitDependent is the option whose implicit requirements
	// produced this occurrence, or nil.
	ImplicitDependent *OptionDefinition

	// ExpandedFrom is the expansion option that produced this
	// occurrence, or nil.
	ExpandedFrom *OptionDefinition
}

// ParsedOption is one successfully recognized occurrence of an
// option in some argument list.
type ParsedOption struct {
	// Definition is the option this occurrence refers to.
	Definition *OptionDefinition

	// CommandLineForm is the verbatim surface form as reconstructed
	// by the recognizer (e.g., "--foo=bar" or "-f bar").
	CommandLineForm string

	// UnconvertedValue is the raw string value, or nil for void
	// options that appeared without a value.
	UnconvertedValue *string

	// Origin is the provenance of this occurrence.
	Origin Origin

	// seq is the discovery order across the owning parser.
	seq int
}

// IsExplicit returns true when the occurrence came directly from an
// argument list, rather than from an expansion or from the implicit
// requirements of another option.
func (p *ParsedOption) IsExplicit() bool {
	return p.Origin.ImplicitDependent == nil && p.Origin.ExpandedFrom == nil
}

// HasValue returns true when the occurrence carries a value.
func (p *ParsedOption) HasValue() bool {
	return p.UnconvertedValue != nil
}

// Value returns the unconverted value, or the empty string when the
// occurrence carries none.
func (p *ParsedOption) Value() string {
	if p.UnconvertedValue == nil {
		return ""
	}
	return *p.UnconvertedValue
}

// CanonicalForm returns the normalized encoding of the occurrence:
// "--name=value", or "--name" for valueless void occurrences.
func (p *ParsedOption) CanonicalForm() string {
	if p.UnconvertedValue == nil {
		return "--" + p.Definition.Name
	}
	return "--" + p.Definition.Name + "=" + *p.UnconvertedValue
}

// convert runs the unconverted value through the definition's
// converter, surfacing failures as [ErrConversion].
func (p *ParsedOption) convert() (any, error) {
	cv := p.Definition.converter()
	if cv == nil || p.UnconvertedValue == nil {
		return nil, nil
	}
	value, err := cv.Convert(*p.UnconvertedValue)
	if err != nil {
		return nil, ErrConversion{Form: p.CommandLineForm, Reason: err}
	}
	return value, nil
}
