// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package note

import (
	"fmt"
	"iter"
	"slices"
)

// Add returns notes with a new note appended at the end.
func Add(notes []Note, text, category string) []Note {
	return append(notes, Note{Text: text, Category: category})
}

// List yields every note with its 1-based display index.
func List(notes []Note) iter.Seq2[int, Note] {
	return func(yield func(int, Note) bool) {
		for i, n := range notes {
			if !yield(i+1, n) {
				return
			}
		}
	}
}

// ListCategory yields the notes whose category equals category exactly.
// Indices are renumbered from 1 within the filtered view, so they do not
// match the positions Edit and Remove expect.
func ListCategory(notes []Note, category string) iter.Seq2[int, Note] {
	return func(yield func(int, Note) bool) {
		shown := 0
		for _, n := range notes {
			if n.Category != category {
				continue
			}
			shown++
			if !yield(shown, n) {
				return
			}
		}
	}
}

// Edit replaces the text and category of the note at the 0-based index.
func Edit(notes []Note, index int, text, category string) ([]Note, error) {
	if err := checkIndex(notes, index); err != nil {
		return notes, err
	}
	notes[index] = Note{Text: text, Category: category}
	return notes, nil
}

// Remove deletes the note at the 0-based index. Later notes move down by one.
func Remove(notes []Note, index int) ([]Note, error) {
	if err := checkIndex(notes, index); err != nil {
		return notes, err
	}
	return slices.Delete(notes, index, index+1), nil
}

func checkIndex(notes []Note, index int) error {
	if index < 0 || index >= len(notes) {
		return fmt.Errorf("note %d of %d: %w", index+1, len(notes), ErrIndexOutOfRange)
	}
	return nil
}
