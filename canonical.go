// canonical.go - canonicalizer and parse state queries.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import (
	"slices"
	"strings"

	"github.com/buildtool/options/pkg/assert"
)

// byPriority stably orders occurrences by priority, so that equal
// priorities retain discovery order.
func byPriority(input []*ParsedOption) []*ParsedOption {
	out := slices.Clone(input)
	slices.SortStableFunc(out, func(a, b *ParsedOption) int {
		return int(a.Origin.Priority) - int(b.Origin.Priority)
	})
	return out
}

// AsCompleteListOfParsedOptions returns every occurrence recorded in
// discovery order, stably sorted by priority. Occurrences produced
// by implicit requirements are not part of this view.
func (px *Parser) AsCompleteListOfParsedOptions() []*ParsedOption {
	return byPriority(px.parsedOptions)
}

// AsListOfExplicitOptions is [Parser.AsCompleteListOfParsedOptions]
// restricted to explicit occurrences: those that neither an
// expansion nor an implicit requirement produced.
func (px *Parser) AsListOfExplicitOptions() []*ParsedOption {
	explicit := make([]*ParsedOption, 0, len(px.parsedOptions))
	for _, p := range px.parsedOptions {
		if p.IsExplicit() {
			explicit = append(explicit, p)
		}
	}
	return byPriority(explicit)
}

// AsCanonicalizedList returns a deterministic, order-stable encoding
// of the effective command line, one "--name=value" string per
// canonical entry ("--name" for a valueless void option), suitable
// for re-invocation and cache keying.
//
// Expansion options are elided: their expansions already appear on
// their own. Options without implicit requirements come first,
// sorted lexicographically by long name; options carrying implicit
// requirements follow in insertion order, because re-parsing them
// re-applies requirements that may overwrite earlier entries.
func (px *Parser) AsCanonicalizedList() []string {
	var plain, trailing []*ParsedOption
	for _, entry := range px.canonicalValues.Entries() {
		def := entry.key
		switch {
		case def.IsExpansion():
			continue
		case def.HasImplicitRequirements():
			trailing = append(trailing, entry.value)
		default:
			plain = append(plain, entry.value)
		}
	}
	slices.SortStableFunc(plain, func(a, b *ParsedOption) int {
		return strings.Compare(a.Definition.Name, b.Definition.Name)
	})
	out := make([]string, 0, len(plain)+len(trailing))
	for _, p := range plain {
		out = append(out, p.CanonicalForm())
	}
	for _, p := range trailing {
		out = append(out, p.CanonicalForm())
	}
	return out
}

// AsListOfEffectiveOptions returns, for every registered option,
// either its accumulated value description or a synthesized
// description of its default.
func (px *Parser) AsListOfEffectiveOptions() []OptionValueDescription {
	all := px.registry.All()
	out := make([]OptionValueDescription, 0, len(all))
	for _, def := range all {
		if desc := px.values[def]; desc != nil {
			out = append(out, desc)
			continue
		}
		out = append(out, defaultValueDescription{def: def})
	}
	return out
}

// ContainsExplicit returns true when the named option was set
// explicitly, not merely via expansions or implicit requirements.
func (px *Parser) ContainsExplicit(name string) bool {
	for _, p := range px.parsedOptions {
		if p.IsExplicit() && p.Definition.Name == name {
			return true
		}
	}
	return false
}

// GetOptionValueDescription returns the accumulated value of the
// named option, nil when the option is registered but unset, or an
// error when no such option exists.
func (px *Parser) GetOptionValueDescription(name string) (OptionValueDescription, error) {
	def := px.registry.ByName(name)
	if def == nil {
		return nil, ErrUnrecognizedOption{Token: "--" + name}
	}
	return px.values[def], nil
}

// OptionDescription describes what parsing the named option would
// entail, without mutating any parser state.
type OptionDescription struct {
	// Definition is the described option.
	Definition *OptionDefinition

	// ImplicitRequirements contains the occurrences that the
	// option's implicit requirements would produce.
	ImplicitRequirements []*ParsedOption
}

// GetOptionDescription pre-parses the named option's implicit
// requirements on a scratch parser, leaving the receiver untouched.
func (px *Parser) GetOptionDescription(
	name string, priority Priority, source string) (*OptionDescription, error) {
	def := px.registry.ByName(name)
	if def == nil {
		return nil, ErrUnrecognizedOption{Token: "--" + name}
	}
	desc := &OptionDescription{Definition: def, ImplicitRequirements: nil}
	if def.HasImplicitRequirements() {
		scratch := NewParser(px.registry)
		scratch.AllowSingleDashLong = px.AllowSingleDashLong
		leftover, err := scratch.parse(
			priority, FixedSource(source), def, nil, def.ImplicitRequirements)
		if err != nil {
			return nil, err
		}
		assert.Truef(len(leftover) == 0,
			"unparsed tokens remain in implicit requirements of --%s", def.Name)
		desc.ImplicitRequirements = scratch.recognized
	}
	return desc, nil
}

// GetExpansionValueDescriptions pre-parses the expansion of the
// given option on a scratch parser, returning the occurrences the
// expansion would produce, without mutating the receiver.
func (px *Parser) GetExpansionValueDescriptions(
	def *OptionDefinition, value *string,
	priority Priority, source string) ([]*ParsedOption, error) {
	scratch := NewParser(px.registry)
	scratch.AllowSingleDashLong = px.AllowSingleDashLong
	tokens := px.registry.EvaluateExpansion(def, value)
	leftover, err := scratch.parse(priority, FixedSource(source), nil, def, tokens)
	if err != nil {
		return nil, err
	}
	assert.Truef(len(leftover) == 0,
		"unparsed tokens remain in expansion of --%s", def.Name)
	return scratch.recognized, nil
}
