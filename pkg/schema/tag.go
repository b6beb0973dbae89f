// tag.go - options tag parsing.
// SPDX-License-Identifier: GPL-3.0-or-later

package schema

import (
	"fmt"
	"strings"
)

// optTag holds the information extracted from an options tag.
type optTag struct {
	long  string
	short byte
	help  string
}

// parseTag parses tag as an optTag or fails. It returns nil, nil
// when the tag is empty or consists only of white space, in which
// case the declaration is auto-generated from the field name.
func parseTag(tag string) (*optTag, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, nil
	}
	var o optTag
	next := tag
	for {
		var arg string
		arg, next = nextOption(next)
		if arg == "" || arg == "-" || arg == "--" {
			if o.long == "" && o.short == 0 {
				if next != "" {
					return nil, fmt.Errorf("tag missing option name: %q", tag)
				}
				return nil, nil
			}
			o.help = next
			return &o, nil
		}
		switch dashPrefix(arg) {
		case "-":
			if o.short != 0 {
				return nil, fmt.Errorf("tag has too many short names: %q", tag)
			}
			if len(arg) != 2 || arg[1] >= 0x80 {
				return nil, fmt.Errorf("tag has invalid short name: %q", tag)
			}
			o.short = arg[1]
		case "--":
			if o.long != "" {
				return nil, fmt.Errorf("tag has too many long names: %q", tag)
			}
			o.long = arg[2:]
		default:
			return nil, fmt.Errorf("tag option must start with - or --: %q", tag)
		}
	}
}

// nextOption splits s into its leading option declaration and the
// rest. An empty option means s does not start with a dash and is
// help text.
func nextOption(s string) (option, rest string) {
	if s == "" || s[0] != '-' {
		return "", s
	}
	if x := strings.IndexByte(s, ' '); x >= 0 {
		return s[:x], strings.TrimSpace(s[x:])
	}
	return s, ""
}

// dashPrefix returns the leading dashes in a.
func dashPrefix(a string) string {
	for x := 0; x < len(a); x++ {
		if a[x] != '-' {
			return a[:x]
		}
	}
	return a
}

// autoTag generates the declaration for an untagged field: a
// single-letter field becomes an abbreviation, anything longer a
// long option named after the lowercased field name.
func autoTag(fieldName string) *optTag {
	name := strings.ToLower(fieldName)
	if len(name) == 1 {
		return &optTag{short: name[0]}
	}
	return &optTag{long: name}
}
