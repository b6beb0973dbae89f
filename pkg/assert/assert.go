// assert.go - Utilities to write runtime assertions.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package assert provides utilities to write runtime assertions.
//
// Assertions signal bugs in option schemas or in the parser itself,
// as opposed to malformed user input, which is reported through
// ordinary error returns. A failed assertion panics and therefore
// terminates the program unless explicitly recovered.
package assert

import (
	"errors"
	"fmt"
)

// True panics with the given message if the condition is false.
func True(condition bool, message string) {
	if !condition {
		panic(errors.New(message))
	}
}

// Truef is like [True] but formats the message.
func Truef(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Errorf(format, args...))
	}
}

// True1 is like [True] but returns the given [T] on success.
func True1[T any](value T, condition bool) T {
	True(condition, "assertion failed")
	return value
}

// NotError panics if the given error is not nil.
func NotError(err error) {
	if err != nil {
		panic(err)
	}
}

// NotError1 is like [NotError] but returns the given [T] on success.
func NotError1[T any](value T, err error) T {
	NotError(err)
	return value
}
