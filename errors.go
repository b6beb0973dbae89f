// errors.go - user-input parsing errors.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// ParsingError is implemented by every error that reports malformed
// user input. Schema bugs are not parsing errors: they panic through
// pkg/assert instead, because they must terminate the program.
type ParsingError interface {
	error

	// OffendingToken returns the argument token that caused the
	// error, for diagnostic surfacing.
	OffendingToken() string
}

// ErrUnrecognizedOption indicates that a token named an option that
// is not in the registry, or one that is internal-only.
type ErrUnrecognizedOption struct {
	// Token is the offending argument token.
	Token string
}

var _ ParsingError = ErrUnrecognizedOption{}

// Error returns a string representation of this error.
func (err ErrUnrecognizedOption) Error() string {
	return fmt.Sprintf("Unrecognized option: %s", err.Token)
}

// OffendingToken implements [ParsingError].
func (err ErrUnrecognizedOption) OffendingToken() string {
	return err.Token
}

// ErrInvalidSyntax indicates a token starting with `-` that matches
// none of the accepted surface syntaxes.
type ErrInvalidSyntax struct {
	// Token is the offending argument token.
	Token string
}

var _ ParsingError = ErrInvalidSyntax{}

// Error returns a string representation of this error.
func (err ErrInvalidSyntax) Error() string {
	return fmt.Sprintf("Invalid options syntax: %s", err.Token)
}

// OffendingToken implements [ParsingError].
func (err ErrInvalidSyntax) OffendingToken() string {
	return err.Token
}

// ErrNegationOfNonBoolean indicates a `no`-prefixed occurrence of an
// option that is not boolean.
type ErrNegationOfNonBoolean struct {
	// Token is the offending argument token.
	Token string
}

var _ ParsingError = ErrNegationOfNonBoolean{}

// Error returns a string representation of this error.
func (err ErrNegationOfNonBoolean) Error() string {
	return fmt.Sprintf("Illegal use of 'no' prefix on non-boolean option: %s", err.Token)
}

// OffendingToken implements [ParsingError].
func (err ErrNegationOfNonBoolean) OffendingToken() string {
	return err.Token
}

// ErrUnexpectedValue indicates an inline value on a surface form
// that forbids one, such as `--nofoo=1`.
type ErrUnexpectedValue struct {
	// Token is the offending argument token.
	Token string
}

var _ ParsingError = ErrUnexpectedValue{}

// Error returns a string representation of this error.
func (err ErrUnexpectedValue) Error() string {
	return fmt.Sprintf("Unexpected value after boolean option: %s", err.Token)
}

// OffendingToken implements [ParsingError].
func (err ErrUnexpectedValue) OffendingToken() string {
	return err.Token
}

// ErrMissingValue indicates that an option requiring a value was the
// last token of its argument list.
type ErrMissingValue struct {
	// Token is the offending argument token.
	Token string
}

var _ ParsingError = ErrMissingValue{}

// Error returns a string representation of this error.
func (err ErrMissingValue) Error() string {
	return fmt.Sprintf("Expected value after %s", err.Token)
}

// OffendingToken implements [ParsingError].
func (err ErrMissingValue) OffendingToken() string {
	return err.Token
}

// ErrInvalidWrapperValue indicates that a wrapper option received a
// value that does not itself look like an option.
type ErrInvalidWrapperValue struct {
	// Name is the wrapper option's long name.
	Name string

	// Value is the value that does not start with `-`.
	Value string
}

var _ ParsingError = ErrInvalidWrapperValue{}

// Error returns a string representation of this error.
func (err ErrInvalidWrapperValue) Error() string {
	return fmt.Sprintf(
		"Invalid --%s value format. You may have meant --%s=--%s",
		err.Name, err.Name, err.Value)
}

// OffendingToken implements [ParsingError].
func (err ErrInvalidWrapperValue) OffendingToken() string {
	return err.Value
}

// ErrUnparsedAfterUnwrap indicates that re-parsing a wrapper value
// left residual tokens behind.
type ErrUnparsedAfterUnwrap struct {
	// Name is the wrapper option's long name.
	Name string

	// Leftover contains the residual tokens.
	Leftover []string
}

var _ ParsingError = ErrUnparsedAfterUnwrap{}

// Error returns a string representation of this error.
func (err ErrUnparsedAfterUnwrap) Error() string {
	return fmt.Sprintf(
		"Unparsed options remain after unwrapping --%s: %s",
		err.Name, shellquote.Join(err.Leftover...))
}

// OffendingToken implements [ParsingError].
func (err ErrUnparsedAfterUnwrap) OffendingToken() string {
	return shellquote.Join(err.Leftover...)
}

// ErrConversion indicates that an option value did not convert to
// the option's type. This includes defaults round-tripped through
// the converter during effective-value validation.
type ErrConversion struct {
	// Form is the command line form of the offending occurrence.
	Form string

	// Reason is the converter failure.
	Reason error
}

var _ ParsingError = ErrConversion{}

// Error returns a string representation of this error.
func (err ErrConversion) Error() string {
	return fmt.Sprintf("While parsing option %s: %s", err.Form, err.Reason)
}

// OffendingToken implements [ParsingError].
func (err ErrConversion) OffendingToken() string {
	return err.Form
}

// Unwrap returns the converter failure.
func (err ErrConversion) Unwrap() error {
	return err.Reason
}
