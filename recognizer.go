// recognizer.go - surface syntax recognition.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import (
	"strings"

	"github.com/buildtool/options/pkg/scanner"
)

// recognize converts one surface token into a [ParsedOption],
// consuming one additional token from rest when the option takes a
// detached value.
//
// The accepted surface syntaxes, checked in order:
//
//  1. `-x` short nullary/unary form;
//  2. `-x-` short boolean-negated form;
//  3. `--name`, `--name=value` long form, also accepted with a
//     single dash when the parser allows it;
//  4. anything else starting with `-` is a syntax error.
func (px *Parser) recognize(
	arg string, rest *deque[scanner.Token], priority Priority, source SourceFunc,
	implicitDependent, expandedFrom *OptionDefinition) (*ParsedOption, error) {

	var (
		def         *OptionDefinition
		unconverted *string
	)
	booleanValue := true
	form := arg

	switch {
	// Case 1: short nullary/unary (e.g., `-x`).
	case len(arg) == 2 && arg[0] == '-' && arg[1] != '-':
		def = px.registry.ByAbbrev(arg[1])

	// Case 2: short boolean-negated (e.g., `-x-`).
	case len(arg) == 3 && arg[0] == '-' && arg[1] != '-' && arg[2] == '-':
		booleanValue = false
		def = px.registry.ByAbbrev(arg[1])

	// Case 3: long form with a `--` prefix, or a single `-` when
	// single-dash long options are enabled.
	case strings.HasPrefix(arg, "--") || (px.AllowSingleDashLong && strings.HasPrefix(arg, "-")):
		body := strings.TrimPrefix(arg, "-")
		body = strings.TrimPrefix(body, "-")
		name := body
		if idx := strings.Index(body, "="); idx >= 0 {
			name = body[:idx]
			value := body[idx+1:]
			unconverted = &value
		}
		if name == "" {
			return nil, ErrInvalidSyntax{Token: arg}
		}
		def = px.registry.ByName(name)
		if def == nil && strings.HasPrefix(name, "no") {
			alt := px.registry.ByName(name[len("no"):])
			switch {
			case alt == nil:
				// fall through to the unrecognized-option error

			case alt.Kind != KindBool:
				return nil, ErrNegationOfNonBoolean{Token: arg}

			case unconverted != nil:
				return nil, ErrUnexpectedValue{Token: arg}

			default:
				def = alt
				booleanValue = false
				zero := "0"
				unconverted = &zero
			}
		}

	// Case 4: anything else starting with `-`.
	default:
		return nil, ErrInvalidSyntax{Token: arg}
	}

	// Internal options must stay invisible to user-supplied input.
	if def == nil || def.Internal {
		return nil, ErrUnrecognizedOption{Token: arg}
	}

	// Acquire the value when the surface form did not carry one.
	if unconverted == nil {
		switch {
		case def.Kind == KindBool:
			value := "0"
			if booleanValue {
				value = "1"
			}
			unconverted = &value

		case def.Kind == KindVoid && !def.Wrapper:
			// nullary: no value at all

		default:
			tok, ok := rest.Front()
			if !ok {
				return nil, ErrMissingValue{Token: arg}
			}
			rest.PopFront()
			value := tok.String()
			unconverted = &value
			form += " " + value
		}
	}

	parsed := &ParsedOption{
		Definition:       def,
		CommandLineForm:  form,
		UnconvertedValue: unconverted,
		Origin: Origin{
			Priority:          priority,
			Source:            source(def),
			ImplicitDependent: implicitDependent,
			ExpandedFrom:      expandedFrom,
		},
		seq: px.seq,
	}
	px.seq++
	px.recognized = append(px.recognized, parsed)
	return parsed, nil
}
