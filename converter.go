// converter.go - string to typed value converters.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Converter converts the unconverted string form of an option value
// into its typed representation.
//
// The parse engine treats converters as opaque: it only invokes them
// when validating effective values and when materializing a schema.
type Converter interface {
	// Convert converts input or fails.
	Convert(input string) (any, error)

	// TypeName returns a short description of the produced type,
	// used in help text and diagnostics.
	TypeName() string
}

// ConverterFunc adapts a function to the [Converter] interface.
type ConverterFunc struct {
	// Fn is the conversion function.
	Fn func(input string) (any, error)

	// Name is the produced type description.
	Name string
}

var _ Converter = ConverterFunc{}

// Convert implements [Converter].
func (cv ConverterFunc) Convert(input string) (any, error) {
	return cv.Fn(input)
}

// TypeName implements [Converter].
func (cv ConverterFunc) TypeName() string {
	return cv.Name
}

// StringConverter passes the input through unchanged.
var StringConverter Converter = ConverterFunc{
	Fn: func(input string) (any, error) {
		return input, nil
	},
	Name: "a string",
}

// BoolConverter accepts the usual spellings of truth.
//
// True: "1", "true", "t", "yes", "y". False: "0", "false", "f",
// "no", "n". Matching is case insensitive.
var BoolConverter Converter = ConverterFunc{
	Fn: func(input string) (any, error) {
		switch strings.ToLower(input) {
		case "1", "true", "t", "yes", "y":
			return true, nil
		case "0", "false", "f", "no", "n":
			return false, nil
		default:
			return nil, fmt.Errorf("%q is not a boolean", input)
		}
	},
	Name: "a boolean",
}

// IntConverter converts base-10 integers.
var IntConverter Converter = ConverterFunc{
	Fn: func(input string) (any, error) {
		value, err := strconv.Atoi(input)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", input)
		}
		return value, nil
	},
	Name: "an integer",
}

// Int64Converter converts base-10 64-bit integers.
var Int64Converter Converter = ConverterFunc{
	Fn: func(input string) (any, error) {
		value, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", input)
		}
		return value, nil
	},
	Name: "an integer",
}

// Float64Converter converts floating point numbers.
var Float64Converter Converter = ConverterFunc{
	Fn: func(input string) (any, error) {
		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", input)
		}
		return value, nil
	},
	Name: "a number",
}

// DurationConverter converts [time.ParseDuration] spellings.
var DurationConverter Converter = ConverterFunc{
	Fn: func(input string) (any, error) {
		value, err := time.ParseDuration(input)
		if err != nil {
			return nil, fmt.Errorf("%q is not a duration", input)
		}
		return value, nil
	},
	Name: "a duration",
}
