package storage

import (
	"context"

	"jobboard/pkg/domain"
)

// EmployerProfileUpdates describes the optional profile fields that can be
// applied to an employer. Only non-nil fields are updated. Credentials are
// deliberately not part of profile updates: password changes go through
// SetEmployerPassword so a profile save can never rehash or clobber them.
type EmployerProfileUpdates struct {
	CompanyName    *string
	Email          *string
	CompanyProfile *string
}

// EmployerStorage defines persistence operations for employer accounts.
type EmployerStorage interface {
	// CreateEmployer inserts a new employer and returns the stored row
	// including generated fields. A duplicate company name or email yields
	// ErrDuplicate.
	CreateEmployer(ctx context.Context, employer domain.Employer) (*domain.Employer, error)
	// EmployerByID fetches an employer by ID. Returns nil when not found.
	EmployerByID(ctx context.Context, id domain.EmployerID) (*domain.Employer, error)
	// EmployerByLogin fetches an employer whose company name or email matches
	// the given (already normalized) identifier. Returns nil when not found.
	EmployerByLogin(ctx context.Context, identifier string) (*domain.Employer, error)
	// UpdateEmployerProfile applies the provided field set and returns the
	// updated row, or nil when the employer does not exist. A duplicate
	// company name or email yields ErrDuplicate.
	UpdateEmployerProfile(ctx context.Context,
		id domain.EmployerID,
		updates EmployerProfileUpdates) (*domain.Employer, error)
	// SetEmployerRefreshToken overwrites the single active refresh token.
	// An empty token clears it (logout).
	SetEmployerRefreshToken(ctx context.Context, id domain.EmployerID, token string) error
	// SetEmployerPassword overwrites the stored password hash.
	SetEmployerPassword(ctx context.Context, id domain.EmployerID, passwordHash string) error
}
