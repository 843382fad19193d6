// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-clinic-sync/models"
)

// RenderBuildInfo renders the CLI build next to the daemon build. A nil
// daemon means the daemon could not be asked.
func RenderBuildInfo(cli models.AppBuildInfo, daemon *models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(field("syncctl", describeBuild(cli)))
	if daemon != nil {
		b.WriteString(field("syncd", describeBuild(*daemon)))
	} else {
		b.WriteString(field("syncd", errorStyle.Render("unreachable")))
	}

	return renderPage("VERSION", b.String())
}

func describeBuild(info models.AppBuildInfo) string {
	return valueOrNA(info.Version) + helpStyle.Render(" ("+valueOrNA(info.Commit)+", "+valueOrNA(info.Date)+")")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
