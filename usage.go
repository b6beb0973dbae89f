// usage.go - registry-driven usage listings.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import (
	"fmt"
	"sort"
	"strings"

	"github.com/buildtool/options/pkg/textwrap"
)

// Usage returns a usage listing for every user-visible option in the
// registry, grouped by category and sorted by long name.
func Usage(reg *Registry) string {
	// Group the visible definitions by category.
	groups := make(map[string][]*OptionDefinition)
	for _, def := range reg.All() {
		if def.Internal {
			continue
		}
		category := def.Category
		if category == "" {
			category = "options"
		}
		groups[category] = append(groups[category], def)
	}

	// Named categories sort alphabetically; the catch-all group
	// trails them.
	categories := make([]string, 0, len(groups))
	for category := range groups {
		if category != "options" {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)
	if _, found := groups["options"]; found {
		categories = append(categories, "options")
	}

	var sb strings.Builder
	for _, category := range categories {
		fmt.Fprintf(&sb, "%s:\n", category)
		defs := groups[category]
		sort.SliceStable(defs, func(i, j int) bool {
			return defs[i].Name < defs[j].Name
		})
		for _, def := range defs {
			fmt.Fprintf(&sb, "%s\n", optionSynopsis(def))
			if help := helpText(def); help != "" {
				fmt.Fprintf(&sb, "%s\n", textwrap.Do(help, 72, "      "))
			}
		}
		fmt.Fprintf(&sb, "\n")
	}
	return sb.String()
}

func optionSynopsis(def *OptionDefinition) string {
	var sb strings.Builder
	if def.Abbrev != 0 {
		fmt.Fprintf(&sb, "  -%c, --%s", def.Abbrev, def.Name)
	} else {
		fmt.Fprintf(&sb, "      --%s", def.Name)
	}
	var notes []string
	if cv := def.converter(); cv != nil && def.Kind != KindBool {
		notes = append(notes, cv.TypeName())
	}
	if def.DefaultValue != "" {
		notes = append(notes, fmt.Sprintf("default: %q", def.DefaultValue))
	}
	if def.AllowsMultiple {
		notes = append(notes, "may be used multiple times")
	}
	if len(notes) > 0 {
		fmt.Fprintf(&sb, " (%s)", strings.Join(notes, "; "))
	}
	return sb.String()
}

func helpText(def *OptionDefinition) string {
	help := def.Help
	if def.IsDeprecated() {
		note := "Deprecated."
		if def.DeprecationWarning != "" {
			note = "Deprecated: " + def.DeprecationWarning + "."
		}
		if help != "" {
			help += " " + note
		} else {
			help = note
		}
	}
	return help
}
