// parser.go - the parse engine.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import (
	"fmt"

	"github.com/buildtool/options/pkg/assert"
	"github.com/buildtool/options/pkg/scanner"
	"github.com/kballard/go-shellquote"
)

// PreprocessorFunc rewrites an argument list before parsing begins,
// for example to expand params files. It runs exactly once per
// [Parser.Parse] invocation and may fail with a parsing error.
type PreprocessorFunc func(args []string) ([]string, error)

// Parser is the mutable state machine accumulating parsed options
// across repeated [Parser.Parse] calls at varying priorities.
//
// A Parser is single-owner: it must not be shared across goroutines
// without external mutual exclusion. The [Registry] it reads from is
// immutable and may be shared freely.
//
// Callers are responsible for invoking [Parser.Parse] in order of
// increasing priority: within that discipline, the last occurrence
// of a singleton option wins.
type Parser struct {
	// AllowSingleDashLong accepts `-name` and `-name=value` long
	// forms in addition to the `--` prefixed ones.
	AllowSingleDashLong bool

	// Preprocessor optionally rewrites argument lists before
	// parsing. Nil means identity.
	Preprocessor PreprocessorFunc

	registry        *Registry
	values          map[*OptionDefinition]OptionValueDescription
	parsedOptions   []*ParsedOption
	canonicalValues *orderedMultimap[*OptionDefinition, *ParsedOption]
	warnings        []string
	recognized      []*ParsedOption
	seq             int
}

// NewParser creates an empty [*Parser] reading from the registry.
func NewParser(registry *Registry) *Parser {
	return &Parser{
		AllowSingleDashLong: false,
		Preprocessor:        nil,
		registry:            registry,
		values:              make(map[*OptionDefinition]OptionValueDescription),
		parsedOptions:       nil,
		canonicalValues:     newOrderedMultimap[*OptionDefinition, *ParsedOption](),
		warnings:            nil,
		recognized:          nil,
		seq:                 0,
	}
}

// Registry returns the registry the parser reads from.
func (px *Parser) Registry() *Registry {
	return px.registry
}

// Warnings returns the deprecation warnings accumulated so far, in
// the order the deprecated occurrences were encountered.
func (px *Parser) Warnings() []string {
	out := make([]string, len(px.warnings))
	copy(out, px.warnings)
	return out
}

// Parse parses args at the given priority and returns the residual
// tokens: arguments not starting with `-`, plus everything after a
// bare `--`.
//
// Parse may be called repeatedly to layer sources of increasing
// authority on top of each other. After the argument list has been
// consumed, every registered option's effective value is round-
// tripped through its converter, so that type errors surface
// uniformly here, even for defaults.
func (px *Parser) Parse(priority Priority, source SourceFunc, args []string) ([]string, error) {
	if px.Preprocessor != nil {
		var err error
		if args, err = px.Preprocessor(args); err != nil {
			return nil, err
		}
	}
	leftover, err := px.parse(priority, source, nil, nil, args)
	if err != nil {
		return nil, err
	}
	if err := px.validateEffectiveValues(); err != nil {
		return nil, err
	}
	return leftover, nil
}

// parse is the recursive core of the engine. The implicitDependent
// and expandedFrom back-references flow into the provenance of every
// occurrence recognized by this call.
func (px *Parser) parse(
	priority Priority, source SourceFunc,
	implicitDependent, expandedFrom *OptionDefinition,
	args []string) ([]string, error) {

	var leftover []string
	input := &deque[scanner.Token]{values: scanner.Scan(args, "--")}

	// Implicit requirements are deferred to the end of this call,
	// keyed by triggering option in first-trigger order.
	type deferredRequirement struct {
		def    *OptionDefinition
		tokens []string
	}
	var deferred []deferredRequirement
	deferredIndex := make(map[*OptionDefinition]int)

	for !input.Empty() {
		tok, _ := input.Front()
		input.PopFront()

		switch tok := tok.(type) {

		// Arguments not starting with `-` are residue.
		case scanner.ArgumentToken:
			leftover = append(leftover, tok.Value)
			continue

		// A bare `--` terminates option parsing: everything that
		// follows is residue, surface form notwithstanding.
		case scanner.SeparatorToken:
			for _, rest := range input.Drain() {
				leftover = append(leftover, rest.String())
			}
			continue

		case scanner.OptionToken:
			parsed, err := px.recognize(
				tok.Text, input, priority, source, implicitDependent, expandedFrom)
			if err != nil {
				return nil, err
			}
			def := parsed.Definition

			// Record the occurrence; this also emits the
			// deprecation warning, once per instance.
			px.addOptionInstance(parsed)

			// A wrapper's value is a single fully-formed option
			// token to re-parse at the same priority. The wrapper
			// itself leaves no other trace: no canonical entry, no
			// expansion, no implicit requirements.
			if def.Wrapper {
				value := parsed.Value()
				if len(value) == 0 || value[0] != '-' {
					return nil, ErrInvalidWrapperValue{Name: def.Name, Value: value}
				}
				unwrapSource := func(d *OptionDefinition) string {
					return fmt.Sprintf("Unwrapped from wrapper option --%s", def.Name)
				}
				nested, err := px.parse(priority, unwrapSource, nil, nil, []string{value})
				if err != nil {
					return nil, err
				}
				if len(nested) > 0 {
					return nil, ErrUnparsedAfterUnwrap{Name: def.Name, Leftover: nested}
				}
				continue
			}

			// Only occurrences that no other option implied count
			// as explicit and feed the canonical representation.
			if implicitDependent == nil {
				px.parsedOptions = append(px.parsedOptions, parsed)
				if def.AllowsMultiple {
					px.canonicalValues.Append(def, parsed)
				} else {
					px.canonicalValues.ReplaceAll(def, parsed)
				}
			}

			// Expansion options textually expand to further tokens,
			// parsed at the same priority. Residue here means the
			// schema declared a malformed expansion.
			if def.IsExpansion() {
				tokens := px.registry.EvaluateExpansion(def, parsed.UnconvertedValue)
				originSource := parsed.Origin.Source
				expansionSource := func(d *OptionDefinition) string {
					if originSource == "" {
						return fmt.Sprintf("expanded from option --%s", def.Name)
					}
					return fmt.Sprintf("expanded from option --%s from %s", def.Name, originSource)
				}
				sub, err := px.parse(priority, expansionSource, nil, def, tokens)
				if err != nil {
					return nil, err
				}
				assert.Truef(len(sub) == 0,
					"unparsed tokens remain after expanding --%s: %s",
					def.Name, shellquote.Join(sub...))
			}

			if def.HasImplicitRequirements() {
				if at, found := deferredIndex[def]; found {
					deferred[at].tokens = def.ImplicitRequirements
				} else {
					deferredIndex[def] = len(deferred)
					deferred = append(deferred, deferredRequirement{
						def:    def,
						tokens: def.ImplicitRequirements,
					})
				}
			}
		}
	}

	// Apply the deferred implicit requirements in trigger order.
	// Residue here is a schema bug, exactly like expansion residue.
	for _, req := range deferred {
		requirementSource := func(d *OptionDefinition) string {
			return fmt.Sprintf("implicit requirement of option --%s", req.def.Name)
		}
		sub, err := px.parse(priority, requirementSource, req.def, nil, req.tokens)
		if err != nil {
			return nil, err
		}
		assert.Truef(len(sub) == 0,
			"unparsed tokens remain after applying implicit requirements of --%s: %s",
			req.def.Name, shellquote.Join(sub...))
	}

	return leftover, nil
}

// addOptionInstance feeds one recognized occurrence into the value
// store, applying the combination rule of the option's kind.
func (px *Parser) addOptionInstance(p *ParsedOption) {
	def := p.Definition
	if def.IsDeprecated() {
		warning := fmt.Sprintf("Option '%s' is deprecated", def.Name)
		if def.DeprecationWarning != "" {
			warning += ": " + def.DeprecationWarning
		}
		px.warnings = append(px.warnings, warning)
	}
	if desc := px.values[def]; desc != nil {
		desc.addInstance(p)
		return
	}
	px.values[def] = newValueDescription(p)
}

// validateEffectiveValues round-trips every registered option's
// effective value through its converter.
func (px *Parser) validateEffectiveValues() error {
	for _, desc := range px.AsListOfEffectiveOptions() {
		if _, err := desc.GetValue(); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes the given option from the value store and from the
// canonical representation, returning the prior value description,
// or nil when the option was not set. Parsed occurrences keep their
// place in the complete list views.
func (px *Parser) Clear(name string) (OptionValueDescription, error) {
	def := px.registry.ByName(name)
	if def == nil {
		return nil, ErrUnrecognizedOption{Token: "--" + name}
	}
	prior := px.values[def]
	delete(px.values, def)
	px.canonicalValues.RemoveAll(def)
	return prior, nil
}
