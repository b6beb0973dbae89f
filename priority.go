// priority.go - option priority ordinals.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import "fmt"

// Priority segregates the trust tiers from which options may come.
//
// The engine treats priorities as opaque ordinals: a later [Parser.Parse]
// call at a higher priority overrides values set at a lower one, and
// sorting views order occurrences by priority with a stable sort. The
// engine does not enforce that callers pass monotonically increasing
// priorities; doing so is the caller's obligation.
type Priority int

// These constants define the conventional trust tiers, from least to
// most authoritative. Callers may define their own ordinals as long as
// they feed them to [Parser.Parse] in increasing order.
const (
	// PriorityDefault is the priority of values coming from option
	// defaults rather than from any argument list.
	PriorityDefault Priority = iota

	// PriorityComputedDefault is the priority of defaults computed
	// from the values of other options.
	PriorityComputedDefault

	// PriorityRcFile is the priority of values read from
	// configuration files.
	PriorityRcFile

	// PriorityCommandLine is the priority of values supplied
	// explicitly on the command line.
	PriorityCommandLine

	// PriorityInvocationPolicy is the priority of values imposed by
	// an invocation policy on top of the command line.
	PriorityInvocationPolicy

	// PrioritySoftwareRequirement is the priority of values the
	// program itself requires, overriding everything else.
	PrioritySoftwareRequirement
)

// String returns the conventional name of the priority tier.
func (p Priority) String() string {
	switch p {
	case PriorityDefault:
		return "default"
	case PriorityComputedDefault:
		return "computed default"
	case PriorityRcFile:
		return "rc file"
	case PriorityCommandLine:
		return "command line"
	case PriorityInvocationPolicy:
		return "invocation policy"
	case PrioritySoftwareRequirement:
		return "software requirement"
	default:
		return fmt.Sprintf("priority %d", int(p))
	}
}
