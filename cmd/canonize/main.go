// main.go - Main for the canonize example
// SPDX-License-Identifier: GPL-3.0-or-later

// The canonize command shows how to declare an options schema, parse
// a command line, and print the canonical, replayable form of the
// effective options.
//
// Try, for example:
//
//	canonize --jobs 4 --verbose --jobs=8 target1 target2
//	canonize --fast -- --not-an-option
//	canonize @params.txt
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/buildtool/options"
	"github.com/buildtool/options/pkg/paramsfile"
	"github.com/buildtool/options/pkg/schema"
)

// buildOptions is the sample schema parsed by this tool.
type buildOptions struct {
	Host    string        `options:"--host host to build for" default:"localhost" category:"target"`
	Jobs    int           `options:"--jobs -j number of parallel jobs" default:"1" category:"execution"`
	Keep    bool          `options:"--keep_going -k continue as much as possible after an error" category:"execution"`
	Verbose bool          `options:"--verbose -v print progress messages" category:"output"`
	Timeout time.Duration `options:"--timeout give up after this long" default:"10m" category:"execution"`
	Defines []string      `options:"--define add one name=value build constant" category:"target"`
	Fast    schema.Void   `options:"--fast shorthand for a fast parallel build" expand:"--jobs=16 --keep_going=0" category:"execution"`
}

// configurable for testing
var (
	osArgs = os.Args
	osExit = os.Exit
	stdout = os.Stdout
	stderr = os.Stderr
)

func main() {
	// Describe the schema and build the registry.
	sch, err := schema.Describe(&buildOptions{})
	if err != nil {
		fmt.Fprintf(stderr, "canonize: %s\n", err)
		osExit(1)
		return
	}
	registry, err := options.NewRegistry(sch)
	if err != nil {
		fmt.Fprintf(stderr, "canonize: %s\n", err)
		osExit(1)
		return
	}

	// Create the parser, expanding @file arguments up front.
	px := options.NewParser(registry)
	px.Preprocessor = paramsfile.Expand

	// Parse the command line at command-line priority.
	residue, err := px.Parse(
		options.PriorityCommandLine,
		options.FixedSource("command line"),
		osArgs[1:])
	if err != nil {
		fmt.Fprintf(stderr, "canonize: %s\n", err)
		fmt.Fprintf(stderr, "%s", options.Usage(registry))
		osExit(2)
		return
	}

	// Surface warnings, then the canonical form and the residue.
	for _, warning := range px.Warnings() {
		fmt.Fprintf(stderr, "warning: %s\n", warning)
	}
	for _, arg := range px.AsCanonicalizedList() {
		fmt.Fprintf(stdout, "%s\n", arg)
	}
	for _, arg := range residue {
		fmt.Fprintf(stdout, "%s\n", arg)
	}

	// Materializing the schema gives the typed view.
	parsed := schema.Materialize[buildOptions](px, sch)
	fmt.Fprintf(stderr, "effective jobs: %d\n", parsed.Jobs)
}
