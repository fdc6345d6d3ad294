// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"
	"io"

	"heard/internal/command"
	"heard/internal/logger"
	"heard/internal/note"
	"heard/internal/ui"
)

// app dispatches one parsed invocation and prints its outcome.
type app struct {
	service *note.Service
	stdout  io.Writer
	stderr  io.Writer
}

// run executes args and returns the process exit status. Only a malformed
// INDEX exits non-zero; usage mistakes, out-of-range indices and write
// failures are reported and exit 0.
func (a *app) run(args []string) int {
	inv, err := command.Parse(args)
	if err != nil {
		return a.reportParseError(err)
	}

	switch inv := inv.(type) {
	case command.List:
		a.list(inv)
	case command.Add:
		a.report(a.service.Add(inv.Text, inv.Category), "Note saved successfully!", "Failed to save note.")
	case command.Edit:
		a.report(a.service.Edit(inv.Index, inv.Text, inv.Category), "Note updated successfully!", "Failed to update note.")
	case command.Remove:
		a.report(a.service.Remove(inv.Index), "Note removed successfully!", "Failed to remove note.")
	}
	return 0
}

func (a *app) reportParseError(err error) int {
	var usageErr *command.UsageError
	var indexErr *command.IndexError

	switch {
	case errors.Is(err, command.ErrUsage):
		fmt.Fprintln(a.stderr, ui.RenderUsage())
	case errors.As(err, &usageErr):
		warnColor.Fprintln(a.stderr, usageErr.Usage)
	case errors.As(err, &indexErr):
		logger.Warn("Rejected index argument.", "error", err)
		errorColor.Fprintf(a.stderr, "Invalid index for %s.\n", indexErr.Op)
		return 1
	default:
		errorColor.Fprintln(a.stderr, err)
	}
	return 0
}

func (a *app) report(err error, success, failure string) {
	switch {
	case err == nil:
		successColor.Fprintln(a.stdout, success)
	case errors.Is(err, note.ErrIndexOutOfRange):
		logger.Info("Index out of range.", "error", err)
		errorColor.Fprintln(a.stderr, "Invalid index. Note does not exist.")
	default:
		errorColor.Fprintln(a.stderr, failure)
	}
}

func (a *app) list(inv command.List) {
	notes := a.service.Notes()
	if len(notes) == 0 {
		emptyColor.Fprintln(a.stdout, "No notes found.")
		return
	}

	seq := note.List(notes)
	if inv.Filtered {
		seq = note.ListCategory(notes, inv.Category)
	}

	header := false
	for i, n := range seq {
		if !header {
			headerColor.Fprintln(a.stdout, "Notes:")
			header = true
		}
		a.printNote(i, n)
	}
	if !header {
		warnColor.Fprintf(a.stdout, "No notes found for the category: %s\n", inv.Category)
	}
}

func (a *app) printNote(index int, n note.Note) {
	fmt.Fprintf(a.stdout, "%s %s %s %s\n",
		indexColor.Sprintf("%2d.", index),
		note.Icon(n.Category),
		categoryColor.Sprintf("[%s]", n.Category),
		textColor.Sprint(n.Text),
	)
}
