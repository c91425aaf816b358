// Package storage defines the persistence interfaces the application relies
// on. It abstracts storage operations and transaction management so that
// different backends (e.g. PostgreSQL) can provide concrete implementations.
package storage

import "context"

// AllStorage is a composite interface that includes all domain-specific
// storage capabilities required by the application.
type AllStorage interface {
	EmployerStorage
	JobSeekerStorage
	JobPostingStorage
	ApplicationStorage
	NotificationStorage
}

// TxStorage describes a storage handle operating within a database
// transaction. It exposes the same capabilities as AllStorage plus commit and
// rollback. Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions and manage the lifecycle of the backing connections.
type Storage interface {
	AllStorage

	// Close releases resources held by the implementation (e.g. the
	// underlying connection pool). After Close, the instance must not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with a transactional handle,
	// and commits on success or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
