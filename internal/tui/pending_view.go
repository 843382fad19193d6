package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-clinic-sync/models"
)

const errorColumnWidth = 40

// RenderPending renders ledger entries oldest first, one per line.
func RenderPending(details []models.PendingEntryDetail) string {
	if len(details) == 0 {
		return renderPage("PENDING CHANGES", okStyle.Render("nothing to sync"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-36s  %-20s  %-24s  %-6s  %-19s  %s\n", "ENTRY", "TABLE", "RECORD", "OP", "CREATED", "LAST ERROR")
	for _, d := range details {
		lastError := "-"
		if d.Failure != nil {
			lastError = errorStyle.Render(fitText(d.Failure.Error, errorColumnWidth)) +
				helpStyle.Render(" ×"+strconv.Itoa(d.Failure.Attempts))
		}
		fmt.Fprintf(&b, "%-36s  %-20s  %-24s  %-6s  %-19s  %s\n",
			d.ID,
			fitText(d.TableName, 20),
			fitText(d.RecordID, 24),
			d.Operation,
			formatTime(d.CreatedAt),
			lastError,
		)
	}

	return renderPage(fmt.Sprintf("PENDING CHANGES (%d)", len(details)), b.String())
}

// RenderPendingSummary renders the per-table pending counts.
func RenderPendingSummary(s models.SyncPendingStatus) string {
	if s.TotalPending == 0 {
		return renderPage("PENDING SUMMARY", okStyle.Render("nothing to sync"))
	}
	body := field("total", warnStyle.Render(strconv.Itoa(s.TotalPending))) +
		field("by table", countsByTable(s.ByTable))
	return renderPage("PENDING SUMMARY", body)
}
