// Package report turns a comparison result into the plain-text report
// shown in the results view and printed by the compare subcommand.
package report

import (
	"fmt"
	"strings"

	"github.com/kaan0d/excel-file-comparison/internal/types"
)

const ruleWidth = 70

// Render formats the full comparison report.
func Render(r *types.Result) string {
	var s strings.Builder

	diff := r.RowCountA - r.RowCountB
	if diff < 0 {
		diff = -diff
	}

	s.WriteString(strings.Repeat("=", ruleWidth))
	s.WriteString("\n")
	fmt.Fprintf(&s, "File 1 Row Count: %d\n", r.RowCountA)
	fmt.Fprintf(&s, "File 2 Row Count: %d\n", r.RowCountB)
	fmt.Fprintf(&s, "Difference: %d rows\n", diff)
	s.WriteString(strings.Repeat("=", ruleWidth))
	s.WriteString("\n\n")

	if len(r.Missing) > 0 {
		fmt.Fprintf(&s, "%d Products in File 1 but NOT in File 2:\n", len(r.Missing))
		s.WriteString(strings.Repeat("-", ruleWidth))
		s.WriteString("\n")
		for _, e := range r.Missing {
			fmt.Fprintf(&s, "  • Code: %s - %s\n", e.Key, e.Description)
		}
		s.WriteString("\n")
	}

	if len(r.Extra) > 0 {
		fmt.Fprintf(&s, "%d Products in File 2 but NOT in File 1:\n", len(r.Extra))
		s.WriteString(strings.Repeat("-", ruleWidth))
		s.WriteString("\n")
		for _, e := range r.Extra {
			fmt.Fprintf(&s, "  • Code: %s - %s\n", e.Key, e.Description)
		}
		s.WriteString("\n")
	}

	if len(r.Diffs) > 0 {
		fmt.Fprintf(&s, "%d Products with Detailed Differences:\n", len(r.Diffs))
		s.WriteString(strings.Repeat("-", ruleWidth))
		s.WriteString("\n")
		for _, d := range r.Diffs {
			fmt.Fprintf(&s, "  • Code: %s - %s\n", d.Key, d.Description)
			for _, f := range d.Fields {
				fmt.Fprintf(&s, "    %s: %s → %s\n", f.Name, f.Left, f.Right)
			}
			s.WriteString("\n")
		}
	}

	if r.Identical() {
		s.WriteString("No differences found. Files are identical!\n")
	}

	return s.String()
}
