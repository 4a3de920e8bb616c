package exporter

import (
	"fmt"
	"strings"
)

// WriteConflictText renders conflicts as a plain-text listing, one per
// line, prefixed with a running count — the console-friendly counterpart
// to the JSON report's Conflicts field.
func WriteConflictText(conflicts []string) string {
	if len(conflicts) == 0 {
		return "No hard conflicts detected.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d conflict(s) detected:\n", len(conflicts))
	for i, c := range conflicts {
		fmt.Fprintf(&b, "  %3d. %s\n", i+1, c)
	}
	return b.String()
}
