package storage

import (
	"context"

	"jobboard/pkg/domain"
)

// JobSeekerProfileUpdates describes the optional profile fields that can be
// applied to a job seeker. Only non-nil fields are updated; Skills and
// Experience replace the stored values wholesale when provided. Credentials
// are updated exclusively through SetJobSeekerPassword.
type JobSeekerProfileUpdates struct {
	FullName   *string
	Email      *string
	Resume     *string
	Skills     *[]string
	Experience *[]domain.Experience
}

// JobSeekerStorage defines persistence operations for job seeker accounts.
type JobSeekerStorage interface {
	// CreateJobSeeker inserts a new job seeker and returns the stored row
	// including generated fields. A duplicate email yields ErrDuplicate.
	CreateJobSeeker(ctx context.Context, seeker domain.JobSeeker) (*domain.JobSeeker, error)
	// JobSeekerByID fetches a job seeker by ID. Returns nil when not found.
	JobSeekerByID(ctx context.Context, id domain.JobSeekerID) (*domain.JobSeeker, error)
	// JobSeekerByEmail fetches a job seeker by normalized email.
	// Returns nil when not found.
	JobSeekerByEmail(ctx context.Context, email string) (*domain.JobSeeker, error)
	// UpdateJobSeekerProfile applies the provided field set and returns the
	// updated row, or nil when the seeker does not exist. A duplicate email
	// yields ErrDuplicate.
	UpdateJobSeekerProfile(ctx context.Context,
		id domain.JobSeekerID,
		updates JobSeekerProfileUpdates) (*domain.JobSeeker, error)
	// SetJobSeekerRefreshToken overwrites the single active refresh token.
	// An empty token clears it (logout).
	SetJobSeekerRefreshToken(ctx context.Context, id domain.JobSeekerID, token string) error
	// SetJobSeekerPassword overwrites the stored password hash.
	SetJobSeekerPassword(ctx context.Context, id domain.JobSeekerID, passwordHash string) error
}
