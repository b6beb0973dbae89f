// example_test.go - usage examples.
// SPDX-License-Identifier: GPL-3.0-or-later

package options_test

import (
	"fmt"

	"github.com/buildtool/options"
	"github.com/buildtool/options/pkg/assert"
)

// This example declares a small registry by hand, layers an rc file
// under the command line, and prints the canonical form.
func Example() {
	registry := assert.NotError1(options.NewRegistryFromDefinitions(
		&options.OptionDefinition{
			Name:      "host",
			Kind:      options.KindTyped,
			Converter: options.StringConverter,
		},
		&options.OptionDefinition{
			Name:   "verbose",
			Abbrev: 'v',
			Kind:   options.KindBool,
		},
		&options.OptionDefinition{
			Name:      "jobs",
			Kind:      options.KindTyped,
			Converter: options.IntConverter,
		},
		&options.OptionDefinition{
			Name:      "fast",
			Kind:      options.KindVoid,
			Expansion: []string{"--jobs=16"},
		},
	))

	px := options.NewParser(registry)
	assert.NotError1(px.Parse(
		options.PriorityRcFile,
		options.FixedSource("~/.toolrc"),
		[]string{"--host=build01", "--jobs=2"}))
	residue := assert.NotError1(px.Parse(
		options.PriorityCommandLine,
		options.FixedSource("command line"),
		[]string{"--fast", "-v", "target"}))

	for _, arg := range px.AsCanonicalizedList() {
		fmt.Println(arg)
	}
	fmt.Println(residue)

	// Output:
	// --host=build01
	// --jobs=16
	// --verbose=1
	// [target]
}
