package ranking

import (
	"fmt"
	"strings"
)

// EmptyReportMessage is emitted when no ads qualify for ranking.
const EmptyReportMessage = "No ads with valid start and end times found."

const timestampLayout = "2006-01-02 15:04"

// RenderReport renders the ranking as a fixed-width text table with a header
// row and dash separator. Zero entries render as a single explanatory line.
// The result has no trailing newline; callers add one when writing.
func RenderReport(entries []Entry) string {
	if len(entries) == 0 {
		return EmptyReportMessage
	}

	header := fmt.Sprintf("%4s  %-20s  %-30s  %-20s  %-20s  %12s",
		"Rank", "Ad Archive ID", "Page Name", "Start (UTC)", "End (UTC)", "Active Days")
	separator := strings.Repeat("-", len(header))

	lines := make([]string, 0, len(entries)+2)
	lines = append(lines, header, separator)

	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%4d  %-20s  %-30s  %-20s  %-20s  %12s",
			i+1,
			e.ArchiveID,
			e.PageName,
			e.Start.Format(timestampLayout),
			e.End.Format(timestampLayout),
			fmt.Sprintf("%.2f", e.DurationDays())))
	}

	return strings.Join(lines, "\n")
}
