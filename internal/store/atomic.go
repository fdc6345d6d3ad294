// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// tempFilePrefix names the scratch files written next to the store.
const tempFilePrefix = ".heard-tmp-"

// resolveTarget returns the file a write to path should replace and the
// mode it should end up with. A symlinked store is followed so the link
// survives, and an existing file keeps its permissions; perm only applies
// to a new file.
func resolveTarget(path string, perm fs.FileMode) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		// Either no store yet or a dangling link; write the link's target if
		// there is one.
		if dest, linkErr := os.Readlink(path); linkErr == nil {
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(filepath.Dir(path), dest)
			}
			return dest, perm, nil
		}
		return path, perm, nil
	default:
		return "", 0, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat %s: %w", target, err)
	}
	return target, info.Mode().Perm(), nil
}

// writeFileAtomic replaces path with data by writing a sibling temp file
// and renaming it into place. Readers see either the old or the new list.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) (err error) {
	target, mode, err := resolveTarget(path, perm)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}
	return nil
}
