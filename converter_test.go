// converter_test.go - builtin converter tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestConverters(t *testing.T) {
	type testcase struct {
		name      string
		converter Converter
		input     string
		expect    any
		fails     bool
	}

	cases := []testcase{
		{
			name:      "string",
			converter: StringConverter,
			input:     "anything goes",
			expect:    "anything goes",
		},

		{
			name:      "bool true",
			converter: BoolConverter,
			input:     "1",
			expect:    true,
		},

		{
			name:      "bool yes",
			converter: BoolConverter,
			input:     "YES",
			expect:    true,
		},

		{
			name:      "bool false",
			converter: BoolConverter,
			input:     "0",
			expect:    false,
		},

		{
			name:      "bool invalid",
			converter: BoolConverter,
			input:     "maybe",
			fails:     true,
		},

		{
			name:      "int",
			converter: IntConverter,
			input:     "42",
			expect:    42,
		},

		{
			name:      "int invalid",
			converter: IntConverter,
			input:     "42x",
			fails:     true,
		},

		{
			name:      "int64",
			converter: Int64Converter,
			input:     "-9000000000",
			expect:    int64(-9000000000),
		},

		{
			name:      "float64",
			converter: Float64Converter,
			input:     "2.5",
			expect:    2.5,
		},

		{
			name:      "duration",
			converter: DurationConverter,
			input:     "1m30s",
			expect:    90 * time.Second,
		},

		{
			name:      "duration invalid",
			converter: DurationConverter,
			input:     "90",
			fails:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := tc.converter.Convert(tc.input)
			if tc.fails {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.expect, value); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
