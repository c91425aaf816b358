package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a
	// non-transactional context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is
	// attempted while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when an insert violates a unique constraint,
	// such as a duplicate employer company name or email, or a second
	// application for the same (posting, seeker) pair. Callers translate it
	// into their own conflict semantics.
	ErrDuplicate = errors.New("duplicate row")
)
