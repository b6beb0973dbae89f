// tag_test.go - options tag parsing tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	type testcase struct {
		name   string
		tag    string
		expect *optTag
		err    string
	}

	cases := []testcase{
		{
			name:   "empty tag",
			tag:    "",
			expect: nil,
		},

		{
			name:   "white space only",
			tag:    "   ",
			expect: nil,
		},

		{
			name:   "long name with help",
			tag:    "--name sets the name",
			expect: &optTag{long: "name", help: "sets the name"},
		},

		{
			name:   "short name with help",
			tag:    "-n sets the name",
			expect: &optTag{short: 'n', help: "sets the name"},
		},

		{
			name:   "long and short",
			tag:    "--name -n sets the name",
			expect: &optTag{long: "name", short: 'n', help: "sets the name"},
		},

		{
			name:   "terminator protects dashed help",
			tag:    "-v -- -v means verbose",
			expect: &optTag{short: 'v', help: "-v means verbose"},
		},

		{
			name:   "no help text",
			tag:    "--name",
			expect: &optTag{long: "name"},
		},

		{
			name: "help without option",
			tag:  "just some text",
			err:  "tag missing option name",
		},

		{
			name: "two long names",
			tag:  "--a --b help",
			err:  "too many long names",
		},

		{
			name: "two short names",
			tag:  "-a -b help",
			err:  "too many short names",
		},

		{
			name: "triple dash",
			tag:  "---name help",
			err:  "must start with - or --",
		},

		{
			name: "multibyte short name",
			tag:  "-ab help",
			err:  "invalid short name",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseTag(tc.tag)
			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestAutoTag(t *testing.T) {
	assert.Equal(t, &optTag{short: 'v'}, autoTag("V"))
	assert.Equal(t, &optTag{long: "verbose"}, autoTag("Verbose"))
}
