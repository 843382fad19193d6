package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-clinic-sync/models"
)

// RenderSyncResult renders the outcome of a manual drain.
func RenderSyncResult(r models.SyncResult) string {
	if r.Skipped {
		return renderPage("DRAIN", warnStyle.Render("another drain is already running"))
	}

	var b strings.Builder
	b.WriteString(field("result", summarizeResult(r)))
	if len(r.AppliedByTable) > 0 {
		b.WriteString(field("applied", countsByTable(r.AppliedByTable)))
	}
	if r.Error != "" {
		b.WriteString(field("error", errorStyle.Render(r.Error)))
	}
	for _, f := range r.Failed {
		b.WriteString(field("failed", fmt.Sprintf("%s %s/%s: %s", f.Operation, f.TableName, f.RecordID, errorStyle.Render(f.Error))))
	}

	return renderPage("DRAIN", b.String())
}

func summarizeResult(r models.SyncResult) string {
	var status string
	switch {
	case r.Interrupted:
		status = warnStyle.Render("interrupted")
	case len(r.Failed) > 0 || r.Error != "":
		status = errorStyle.Render("partial")
	default:
		status = okStyle.Render("ok")
	}

	return fmt.Sprintf("%s, %d applied, %d failed, %s",
		status, r.Applied, len(r.Failed), formatTime(r.FinishedAt))
}
