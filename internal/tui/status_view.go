// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-clinic-sync/models"
)

// RenderStatus renders the sync indicator: mode, backend reachability,
// pending changes and the last drain.
func RenderStatus(s models.StatusSummary) string {
	var b strings.Builder

	b.WriteString(field("mode", modeStyle(s.Connection.Mode).Render(string(s.Connection.Mode))))
	b.WriteString(field("cloud", yesNo(s.Connection.CloudAvailable)))
	b.WriteString(field("local", yesNo(s.Connection.LocalAvailable)+" "+helpStyle.Render(valueOrDash(s.Connection.LocalEndpoint))))
	b.WriteString(field("last checked", formatTime(s.LastChecked)))

	switch {
	case s.Pending != nil:
		pending := strconv.Itoa(s.Pending.TotalPending)
		if s.Pending.TotalPending > 0 {
			pending = warnStyle.Render(pending) + " " + helpStyle.Render(countsByTable(s.Pending.ByTable))
		}
		b.WriteString(field("pending", pending))
	default:
		b.WriteString(field("pending", errorStyle.Render("unknown")+" "+s.PendingError))
	}

	if s.LastSync != nil {
		b.WriteString(field("last sync", summarizeResult(*s.LastSync)))
	}

	return renderPage("SYNC STATUS", b.String())
}
