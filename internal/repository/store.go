// Package store defines the storage interfaces and implementations.
package store

import (
	"context"

	"github.com/onair-app/onair-server/internal/domain"
)

// SessionStore holds live sessions. Sessions are volatile: they exist only
// for the lifetime of the process.
type SessionStore interface {
	Put(session *domain.Session)
	Get(sessionID string) (*domain.Session, bool)
	Remove(sessionID string)
}

// ArchiveStore is the append-only log of completed session transcripts,
// most recent first.
type ArchiveStore interface {
	Insert(ctx context.Context, entry *domain.ArchiveEntry) error
	List(ctx context.Context) ([]domain.ArchiveEntry, error)
	Close() error
}
