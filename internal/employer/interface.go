package employer

import (
	"context"

	"jobboard/pkg/domain"
	"jobboard/pkg/storage"

	"jobboard/internal/auth"
)

// RegisterInput carries the fields required to create an employer account.
// CompanyName and Email are normalized (trimmed, lower-cased) before storage.
type RegisterInput struct {
	CompanyName    string
	Email          string
	Password       string
	CompanyProfile string
}

// Employers exposes the employer account flows plus the employer-side view
// of postings and applications.
type Employers interface {
	// Register creates a new employer account. A duplicate company name or
	// email yields serrors.ErrConflict.
	Register(ctx context.Context, input RegisterInput) (*domain.Employer, error)
	// Login authenticates by company name or email plus password and, on
	// success, issues a token pair and persists the refresh token as the
	// single valid one. An unknown identifier yields serrors.ErrNotFound, a
	// wrong password serrors.ErrUnauthorized.
	Login(ctx context.Context, identifier, password string) (*domain.Employer, auth.TokenPair, error)
	// Logout clears the stored refresh token, invalidating future refreshes.
	Logout(ctx context.Context, id domain.EmployerID) error
	// Refresh rotates the refresh token: the presented token must verify and
	// must equal the single persisted one. A mismatch yields
	// serrors.ErrTokenReused; on success a new pair is issued and the new
	// refresh token replaces the old one.
	Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error)
	// ChangePassword verifies the old password and stores a hash of the new
	// one. A wrong old password yields serrors.ErrBadRequest.
	ChangePassword(ctx context.Context, id domain.EmployerID, oldPassword, newPassword string) error
	// Profile fetches the employer record, serrors.ErrNotFound when absent.
	Profile(ctx context.Context, id domain.EmployerID) (*domain.Employer, error)
	// UpdateProfile applies the given profile fields. Credentials are never
	// touched by profile updates.
	UpdateProfile(ctx context.Context,
		id domain.EmployerID,
		updates storage.EmployerProfileUpdates) (*domain.Employer, error)
	// JobSeekerDetails fetches a candidate's record for employer review.
	JobSeekerDetails(ctx context.Context, id domain.JobSeekerID) (*domain.JobSeeker, error)
	// Applicants lists the job seekers who applied to one of the employer's
	// own postings. A posting that does not exist or belongs to another
	// employer yields serrors.ErrNotFound.
	Applicants(ctx context.Context,
		employerID domain.EmployerID,
		postingID domain.JobPostingID) ([]domain.JobSeeker, error)
	// UpdateApplicationStatus overwrites the status of an application to one
	// of the employer's own postings. Invalid enum values yield
	// serrors.ErrBadRequest; a missing posting or application yields
	// serrors.ErrNotFound.
	UpdateApplicationStatus(ctx context.Context,
		employerID domain.EmployerID,
		postingID domain.JobPostingID,
		seekerID domain.JobSeekerID,
		status domain.ApplicationStatus) (*domain.Application, error)
}
