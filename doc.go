// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package options implements a command-line options parser for tools
that need a normalized, replayable record of their effective
configuration, such as the tools of a large build system.

To parse options you need to:

 1. Declare one or more option schemas, either by hand as
    [OptionDefinition] values or from a tagged struct with
    [pkg/schema].

 2. Build a [*Registry] from the schemas with [NewRegistry].

 3. Create a [*Parser] with [NewParser] and feed it argument lists
    with [*Parser.Parse], once per source, in order of increasing
    [Priority].

 4. Materialize the populated schema records with
    [*Parser.Materialize], or query the parse state.

# Surface Syntax

The parser accepts `--name`, `--name=VALUE`, and `--name VALUE`;
`--noname` for boolean options; `-x`, `-x-`, and `-x VALUE` for
abbreviated options; and, when [Parser.AllowSingleDashLong] is set,
`-name` and `-name=VALUE`. A bare `--` terminates option parsing and
everything after it is residue, as is any token not starting with a
dash.

# Expansions, Implicit Requirements, Wrappers

An expansion option textually expands to a predeclared list of
further tokens, re-fed into parsing: `--all` may stand for
`--a=1 --b=2`. An option with implicit requirements causes other
options to be set as if by an unseen caller; the implied occurrences
do not count as explicit. A wrapper option's value is itself a single
fully-formed option token, re-parsed at the same priority.

# Canonical Form

[*Parser.AsCanonicalizedList] produces a deterministic `--name=value`
encoding of the effective command line that is insensitive to
expansions and to duplicated assignments, suitable for re-invocation
and for deriving cache keys. Re-parsing the canonical form yields an
equivalent parser state, modulo provenance.

# Errors

Malformed user input is reported through [ParsingError] values that
carry the offending token. Malformed schemas — expansions or
implicit requirements leaving residual tokens, failing field
setters — panic through pkg/assert, because they are bugs, not
input. An unrecognized token inside an expansion or an implicit
requirement is reported as a [ParsingError].
*/
package options
