// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type usageEntry struct {
	command     string
	description string
}

var usageEntries = []usageEntry{
	{`heard "note text" : category`, "Add a new note"},
	{"heard --list [category]", "List notes"},
	{`heard --edit INDEX "new text" : category`, "Edit a note"},
	{"heard --remove or --r INDEX", "Remove a note"},
}

// RenderUsage returns the full usage text, one line per invocation shape.
func RenderUsage() string {
	width := 0
	for _, e := range usageEntries {
		width = max(width, lipgloss.Width(e.command))
	}
	cmd := commandStyle.Width(width + commandStyle.GetHorizontalPadding())

	lines := []string{
		titleStyle.Render("Usage: heard [options]"),
		headingStyle.Render("Options:"),
	}
	for _, e := range usageEntries {
		lines = append(lines, cmd.Render(e.command)+descStyle.Render(e.description))
	}
	return strings.Join(lines, "\n")
}
