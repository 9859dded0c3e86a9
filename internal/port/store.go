package port

import (
	"time"

	"overview/internal/domain"
)

// SnapshotStore persists the last recorded state of the scanned tree.
type SnapshotStore interface {
	PutState(state domain.FileState) error
	GetState(relPath string) (domain.FileState, bool, error)
	ListStates() ([]domain.FileState, error)
	DeleteState(relPath string) error
	Clear() error
	SetGeneratedAt(t time.Time) error
	GeneratedAt() (time.Time, error)
	Close() error
}
