// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-medi-vault/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application │ MediVault\n")
	b.WriteString("Version     │ " + valueOrDash(info.Version) + "\n")
	b.WriteString("Built       │ " + valueOrDash(info.Date) + "\n")
	b.WriteString("Commit      │ " + valueOrDash(info.Commit) + "\n\n")
	b.WriteString("Records are encrypted on this device with your passcode.\n")
	b.WriteString("The sync server only ever stores ciphertext.")

	return renderPage("ABOUT", b.String(), "esc: back")
}
