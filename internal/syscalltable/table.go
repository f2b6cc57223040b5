// Package syscalltable resolves a raw syscall number into its symbolic
// name, used only by internal/correlator for display purposes — the wire
// format and the bus carry the numeric id, never the name.
package syscalltable

// Name returns the symbolic name of syscall id on the running
// architecture's table, or "???" if id is not recognized. The latter is
// the same name placeholder the correlator prints for a missing enter
// record; an unresolvable id still gets a measured duration, while an
// orphan exit prints "???" for the duration too.
func Name(id int64) string {
	if name, ok := archTable[uint64(id)]; ok {
		return name
	}
	return "???"
}
