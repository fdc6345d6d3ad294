// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package note holds the note entity and the operations that add, list, edit
// and remove notes in an ordered store.
package note

import "errors"

// Note is a single text entry tagged with a free-form category.
// The field order here is the field order of the persisted file.
type Note struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

var (
	// ErrIndexOutOfRange is returned by Edit and Remove when the index does
	// not address a note in the store.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrStoreNotFound marks a store file that does not exist yet.
	ErrStoreNotFound = errors.New("store file not found")

	// ErrStoreCorrupt marks a store file that exists but could not be read
	// or decoded.
	ErrStoreCorrupt = errors.New("store file is corrupt")

	// ErrPersist wraps any failure to write the store back.
	ErrPersist = errors.New("failed to persist notes")
)
