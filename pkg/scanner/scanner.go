// scanner.go - Command line token classification.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package scanner provides low-level classification of command-line
arguments ahead of option recognition.

The [Scan] function breaks an argument list into [Token] values so
that higher-level parsers can implement their own recognition logic
on top of the classified stream.

# Token Types

[Scan] produces these token types:

 1. [OptionToken]: arguments starting with the `-` byte (e.g., -v,
    --verbose, --jobs=8); the scanner does not interpret the surface
    form, it only records the raw text.

 2. [SeparatorToken]: the configured separator (usually `--`) that
    terminates option parsing.

 3. [ArgumentToken]: everything else, to be treated as residue by
    the parser.

Each token remembers the index it had in the original argument list,
so that parsers can preserve and reconstruct source order.
*/
package scanner

// Token is a token classified by [Scan].
type Token interface {
	// String returns the raw text of the token.
	String() string

	// Position returns the index in the scanned argument list.
	Position() int
}

// OptionToken is a [Token] whose text starts with the `-` byte.
//
// The scanner performs no further interpretation: `-x`, `--name`,
// `--name=value`, and even a bare `-` all classify as [OptionToken].
type OptionToken struct {
	// Index is the position in the original argument list.
	Index int

	// Text is the raw argument text, including leading dashes.
	Text string
}

var _ Token = OptionToken{}

// String implements [Token].
func (tk OptionToken) String() string {
	return tk.Text
}

// Position implements [Token].
func (tk OptionToken) Position() int {
	return tk.Index
}

// ArgumentToken is a [Token] containing a residual argument.
type ArgumentToken struct {
	// Index is the position in the original argument list.
	Index int

	// Value is the argument text.
	Value string
}

var _ Token = ArgumentToken{}

// String implements [Token].
func (tk ArgumentToken) String() string {
	return tk.Value
}

// Position implements [Token].
func (tk ArgumentToken) Position() int {
	return tk.Index
}

// SeparatorToken is a [Token] containing the separator after which
// every remaining argument is residue.
type SeparatorToken struct {
	// Index is the position in the original argument list.
	Index int

	// Separator is the separator text.
	Separator string
}

var _ Token = SeparatorToken{}

// String implements [Token].
func (tk SeparatorToken) String() string {
	return tk.Separator
}

// Position implements [Token].
func (tk SeparatorToken) Position() int {
	return tk.Index
}

// Scan classifies the given arguments and returns a list of [Token].
//
// The separator, when nonempty, is checked before the option prefix
// so that `--` classifies as [SeparatorToken] rather than as an
// option. Scan never fails: unlike full tokenizers there is no
// program name requirement, because parsers in this module receive
// argument lists with argv[0] already stripped.
func Scan(args []string, separator string) []Token {
	tokens := make([]Token, 0, len(args))
	for idx, arg := range args {
		switch {
		case separator != "" && arg == separator:
			tokens = append(tokens, SeparatorToken{Index: idx, Separator: arg})

		case len(arg) > 0 && arg[0] == '-':
			tokens = append(tokens, OptionToken{Index: idx, Text: arg})

		default:
			tokens = append(tokens, ArgumentToken{Index: idx, Value: arg})
		}
	}
	return tokens
}
