// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package note

import (
	"errors"
	"fmt"

	"heard/internal/logger"
)

// Repository loads and saves the whole note store.
type Repository interface {
	// Load returns the stored notes. Errors wrap ErrStoreNotFound or
	// ErrStoreCorrupt so callers can tell the two apart.
	Load() ([]Note, error)

	// WriteAll replaces the stored notes with notes.
	WriteAll(notes []Note) error
}

// Service runs each note operation as one load, mutate, write cycle.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Notes loads the store. A missing or corrupt store reads as empty.
func (s *Service) Notes() []Note {
	notes, err := s.repo.Load()
	switch {
	case err == nil:
		return notes
	case errors.Is(err, ErrStoreNotFound):
		logger.Debug("No note store yet, starting empty.", "error", err)
	case errors.Is(err, ErrStoreCorrupt):
		logger.Warn("Note store could not be decoded, treating as empty.", "error", err)
	default:
		logger.Warn("Note store could not be loaded, treating as empty.", "error", err)
	}
	return nil
}

func (s *Service) Add(text, category string) error {
	notes := Add(s.Notes(), text, category)
	logger.Info("Adding note.", "category", category, "count", len(notes))
	return s.save(notes)
}

// Edit replaces the note at the 0-based index. The store is not written
// when the index is out of range.
func (s *Service) Edit(index int, text, category string) error {
	notes, err := Edit(s.Notes(), index, text, category)
	if err != nil {
		return err
	}
	logger.Info("Editing note.", "index", index, "category", category)
	return s.save(notes)
}

// Remove deletes the note at the 0-based index. The store is not written
// when the index is out of range.
func (s *Service) Remove(index int) error {
	notes, err := Remove(s.Notes(), index)
	if err != nil {
		return err
	}
	logger.Info("Removing note.", "index", index, "remaining", len(notes))
	return s.save(notes)
}

func (s *Service) save(notes []Note) error {
	if err := s.repo.WriteAll(notes); err != nil {
		logger.Error("Failed to write note store.", "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
