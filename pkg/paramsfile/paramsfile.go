// paramsfile.go - params-file argument expansion.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package paramsfile expands params-file references in argument lists.

A token of the form `@path` stands for the contents of the file at
path, split into tokens with shell quoting rules. A token starting
with `@@` escapes the expansion: the leading `@` is stripped and the
rest passes through verbatim. Expansion is single-level: tokens read
from a params file are not themselves expanded.

[Expand] satisfies the parser's preprocessor contract, so wiring it
up is one assignment:

	px := options.NewParser(registry)
	px.Preprocessor = paramsfile.Expand
*/
package paramsfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrRead indicates that a params file could not be read or split.
type ErrRead struct {
	// Path is the params file path.
	Path string

	// Reason is the underlying failure.
	Reason error
}

var _ error = ErrRead{}

// Error returns a string representation of this error.
func (err ErrRead) Error() string {
	return fmt.Sprintf("cannot read params file %s: %s", err.Path, err.Reason)
}

// Unwrap returns the underlying failure.
func (err ErrRead) Unwrap() error {
	return err.Reason
}

// Expand replaces each `@path` token with the tokens contained in
// the named file and returns the rewritten argument list.
func Expand(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "@@"):
			out = append(out, arg[1:])

		case strings.HasPrefix(arg, "@") && len(arg) > 1:
			tokens, err := readParamsFile(arg[1:])
			if err != nil {
				return nil, err
			}
			out = append(out, tokens...)

		default:
			out = append(out, arg)
		}
	}
	return out, nil
}

func readParamsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrRead{Path: path, Reason: err}
	}
	tokens, err := shellquote.Split(string(data))
	if err != nil {
		return nil, ErrRead{Path: path, Reason: err}
	}
	return tokens, nil
}
