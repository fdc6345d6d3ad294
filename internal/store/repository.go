// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package store persists the note list as a single JSON file under the
// user's home directory.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"heard/internal/note"
)

const (
	// DirName is the directory created in the user's home directory.
	DirName = ".heard"

	// FileName is the store file inside DirName.
	FileName = "notes.json"
)

// Locate creates home/.heard if needed and returns the store path inside it.
func Locate(home string) (string, error) {
	path := filepath.Join(home, DirName, FileName)
	if err := EnsureDir(path); err != nil {
		return "", err
	}
	return path, nil
}

// EnsureDir creates the directory holding path, including missing parents.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil { // rwxr-x---
		return fmt.Errorf("failed to create notes directory %s: %w", dir, err)
	}
	return nil
}

// Repository reads and writes the note list at a fixed path.
type Repository struct {
	path string
}

func New(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the store file location.
func (r *Repository) Path() string {
	return r.path
}

// Load reads and decodes the store. A missing file yields an error wrapping
// note.ErrStoreNotFound; an unreadable or undecodable one wraps
// note.ErrStoreCorrupt.
func (r *Repository) Load() ([]note.Note, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", note.ErrStoreNotFound, r.path)
		}
		return nil, fmt.Errorf("%w: failed to read %s: %w", note.ErrStoreCorrupt, r.path, err)
	}

	notes, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.path, err)
	}
	return notes, nil
}

// ReadAll returns the stored notes, or an empty list when the file is
// missing, unreadable or corrupt.
func (r *Repository) ReadAll() []note.Note {
	notes, err := r.Load()
	if err != nil {
		return []note.Note{}
	}
	return notes
}

// WriteAll replaces the store with notes (rw-r-----).
func (r *Repository) WriteAll(notes []note.Note) error {
	data, err := Encode(notes)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(r.path, data, 0640); err != nil {
		return fmt.Errorf("failed to write notes to %s: %w", r.path, err)
	}
	return nil
}
