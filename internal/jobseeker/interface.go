package jobseeker

import (
	"context"

	"jobboard/pkg/domain"
	"jobboard/pkg/storage"

	"jobboard/internal/auth"
)

// RegisterInput carries the fields required to create a job seeker account.
// Resume is the URI of the already uploaded resume file and is mandatory.
type RegisterInput struct {
	FullName   string
	Email      string
	Password   string
	Resume     string
	Skills     []string
	Experience []domain.Experience
}

// JobSeekers exposes the job seeker account flows.
type JobSeekers interface {
	// Register creates a new job seeker account. A missing resume yields
	// serrors.ErrBadRequest, a duplicate email serrors.ErrConflict.
	Register(ctx context.Context, input RegisterInput) (*domain.JobSeeker, error)
	// Login authenticates by email plus password and, on success, issues a
	// token pair and persists the refresh token as the single valid one. An
	// unknown email yields serrors.ErrNotFound, a wrong password
	// serrors.ErrUnauthorized.
	Login(ctx context.Context, email, password string) (*domain.JobSeeker, auth.TokenPair, error)
	// Logout clears the stored refresh token, invalidating future refreshes.
	Logout(ctx context.Context, id domain.JobSeekerID) error
	// Refresh rotates the refresh token: the presented token must verify and
	// must equal the single persisted one. A mismatch yields
	// serrors.ErrTokenReused.
	Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error)
	// ChangePassword verifies the old password and stores a hash of the new
	// one. A wrong old password yields serrors.ErrBadRequest.
	ChangePassword(ctx context.Context, id domain.JobSeekerID, oldPassword, newPassword string) error
	// Profile fetches the job seeker record, serrors.ErrNotFound when absent.
	Profile(ctx context.Context, id domain.JobSeekerID) (*domain.JobSeeker, error)
	// UpdateProfile applies the given profile fields. Credentials are never
	// touched by profile updates.
	UpdateProfile(ctx context.Context,
		id domain.JobSeekerID,
		updates storage.JobSeekerProfileUpdates) (*domain.JobSeeker, error)
}
