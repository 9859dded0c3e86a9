package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"time"

	"overview/internal/domain"
	"overview/internal/port"
)

// SnapshotUseCase records the state of the scanned tree and reports what
// changed since the last recording.
type SnapshotUseCase struct {
	store  port.SnapshotStore
	walker port.Walker
}

// NewSnapshotUseCase creates a new snapshot use case.
func NewSnapshotUseCase(store port.SnapshotStore, walker port.Walker) *SnapshotUseCase {
	return &SnapshotUseCase{
		store:  store,
		walker: walker,
	}
}

// Snapshot hashes every file under root and replaces the stored states.
func (u *SnapshotUseCase) Snapshot(root string) (int, error) {
	entries, err := u.walker.Walk(root)
	if err != nil {
		return 0, fmt.Errorf("failed to walk directory: %w", err)
	}

	if err := u.store.Clear(); err != nil {
		return 0, fmt.Errorf("failed to clear snapshot: %w", err)
	}

	for _, entry := range entries {
		hash, err := hashFile(entry.Path)
		if err != nil {
			return 0, fmt.Errorf("failed to hash %s: %w", entry.RelPath, err)
		}
		state := domain.FileState{
			RelPath: entry.RelPath,
			Hash:    hash,
			Size:    entry.Size,
			ModTime: entry.ModTime.Unix(),
		}
		if err := u.store.PutState(state); err != nil {
			return 0, fmt.Errorf("failed to store state for %s: %w", entry.RelPath, err)
		}
	}

	if err := u.store.SetGeneratedAt(time.Now()); err != nil {
		return 0, fmt.Errorf("failed to stamp snapshot: %w", err)
	}

	return len(entries), nil
}

// Diff classifies the current tree against the stored states.
func (u *SnapshotUseCase) Diff(root string) (*domain.Diff, error) {
	entries, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	stored, err := u.store.ListStates()
	if err != nil {
		return nil, fmt.Errorf("failed to list stored states: %w", err)
	}

	storedMap := make(map[string]domain.FileState)
	for _, s := range stored {
		storedMap[s.RelPath] = s
	}

	diff := &domain.Diff{}
	seen := make(map[string]bool)

	for _, entry := range entries {
		seen[entry.RelPath] = true

		prev, ok := storedMap[entry.RelPath]
		if !ok {
			diff.Added = append(diff.Added, entry.RelPath)
			continue
		}

		// Size or modtime match means unchanged without rehashing.
		if prev.Size == entry.Size && prev.ModTime == entry.ModTime.Unix() {
			diff.Unchanged++
			continue
		}

		hash, err := hashFile(entry.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to hash %s: %w", entry.RelPath, err)
		}
		if hash == prev.Hash {
			diff.Unchanged++
		} else {
			diff.Modified = append(diff.Modified, entry.RelPath)
		}
	}

	for relPath := range storedMap {
		if !seen[relPath] {
			diff.Deleted = append(diff.Deleted, relPath)
		}
	}
	sort.Strings(diff.Deleted)

	return diff, nil
}

func hashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
