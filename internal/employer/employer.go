// Package employer implements the employer account flows (register, login,
// token rotation, password and profile management) and the employer-side
// view of postings and applications.
package employer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"

	"jobboard/internal/auth"
)

// employers is the concrete implementation of the Employers interface.
type employers struct {
	storage storage.Storage
	hasher  auth.PasswordHasher
	tokens  *auth.TokenManager
}

// New creates an Employers service backed by the given storage and auth
// components.
func New(storage storage.Storage, hasher auth.PasswordHasher, tokens *auth.TokenManager) Employers {
	return employers{
		storage: storage,
		hasher:  hasher,
		tokens:  tokens,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (e employers) Register(ctx context.Context, input RegisterInput) (*domain.Employer, error) {
	hash, err := e.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := e.storage.CreateEmployer(ctx, domain.Employer{
		CompanyName:    normalize(input.CompanyName),
		Email:          normalize(input.Email),
		CompanyProfile: strings.TrimSpace(input.CompanyProfile),
		PasswordHash:   hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "employer already exists")
		}

		return nil, fmt.Errorf("could not create employer: %w", err)
	}

	return created, nil
}

func (e employers) Login(ctx context.Context,
	identifier, password string) (*domain.Employer, auth.TokenPair, error) {
	employer, err := e.storage.EmployerByLogin(ctx, normalize(identifier))
	if err != nil {
		return nil, auth.TokenPair{}, fmt.Errorf("could not get employer: %w", err)
	}
	if employer == nil {
		return nil, auth.TokenPair{}, serrors.With(serrors.ErrNotFound, "employer does not exist")
	}

	if !e.hasher.Verify(password, employer.PasswordHash) {
		return nil, auth.TokenPair{}, serrors.With(serrors.ErrUnauthorized, "invalid employer credentials")
	}

	pair, err := e.issuePair(ctx, employer)
	if err != nil {
		return nil, auth.TokenPair{}, err
	}

	return employer, pair, nil
}

func (e employers) Logout(ctx context.Context, id domain.EmployerID) error {
	if err := e.storage.SetEmployerRefreshToken(ctx, id, ""); err != nil {
		return fmt.Errorf("could not clear refresh token: %w", err)
	}

	return nil
}

func (e employers) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	claims, err := e.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPair{}, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return auth.TokenPair{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid refresh token")
	}

	employer, err := e.storage.EmployerByID(ctx, domain.EmployerID(id))
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("could not get employer: %w", err)
	}
	if employer == nil {
		return auth.TokenPair{}, serrors.With(serrors.ErrUnauthorized, "invalid refresh token")
	}

	// only the single persisted token is acceptable. Anything else has been
	// rotated out or cleared by a logout and is treated as a replay.
	if employer.RefreshToken == "" || employer.RefreshToken != refreshToken {
		return auth.TokenPair{}, serrors.With(serrors.ErrTokenReused, "refresh token is expired or used")
	}

	return e.issuePair(ctx, employer)
}

func (e employers) ChangePassword(ctx context.Context,
	id domain.EmployerID,
	oldPassword, newPassword string) error {
	employer, err := e.storage.EmployerByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get employer: %w", err)
	}
	if employer == nil {
		return serrors.With(serrors.ErrNotFound, "employer does not exist")
	}

	if !e.hasher.Verify(oldPassword, employer.PasswordHash) {
		return serrors.With(serrors.ErrBadRequest, "invalid old password")
	}

	hash, err := e.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := e.storage.SetEmployerPassword(ctx, id, hash); err != nil {
		return fmt.Errorf("could not set password: %w", err)
	}

	return nil
}

func (e employers) Profile(ctx context.Context, id domain.EmployerID) (*domain.Employer, error) {
	employer, err := e.storage.EmployerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get employer: %w", err)
	}
	if employer == nil {
		return nil, serrors.With(serrors.ErrNotFound, "employer does not exist")
	}

	return employer, nil
}

func (e employers) UpdateProfile(ctx context.Context,
	id domain.EmployerID,
	updates storage.EmployerProfileUpdates) (*domain.Employer, error) {
	if updates.CompanyName != nil {
		normalized := normalize(*updates.CompanyName)
		updates.CompanyName = &normalized
	}
	if updates.Email != nil {
		normalized := normalize(*updates.Email)
		updates.Email = &normalized
	}

	employer, err := e.storage.UpdateEmployerProfile(ctx, id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "employer already exists")
		}

		return nil, fmt.Errorf("could not update employer: %w", err)
	}
	if employer == nil {
		return nil, serrors.With(serrors.ErrNotFound, "employer does not exist")
	}

	return employer, nil
}

func (e employers) JobSeekerDetails(ctx context.Context,
	id domain.JobSeekerID) (*domain.JobSeeker, error) {
	seeker, err := e.storage.JobSeekerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job seeker: %w", err)
	}
	if seeker == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job seeker not found")
	}

	seeker.PasswordHash = ""
	seeker.RefreshToken = ""

	return seeker, nil
}

func (e employers) Applicants(ctx context.Context,
	employerID domain.EmployerID,
	postingID domain.JobPostingID) ([]domain.JobSeeker, error) {
	if err := e.ownPosting(ctx, employerID, postingID); err != nil {
		return nil, err
	}

	applicants, err := e.storage.ApplicantsByPosting(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("could not get applicants: %w", err)
	}

	return applicants, nil
}

func (e employers) UpdateApplicationStatus(ctx context.Context,
	employerID domain.EmployerID,
	postingID domain.JobPostingID,
	seekerID domain.JobSeekerID,
	status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid application status: %s", status)
	}

	if err := e.ownPosting(ctx, employerID, postingID); err != nil {
		return nil, err
	}

	application, err := e.storage.UpdateApplicationStatus(ctx, postingID, seekerID, status)
	if err != nil {
		return nil, fmt.Errorf("could not update application status: %w", err)
	}
	if application == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job seeker has not applied to this posting")
	}

	return application, nil
}

// ownPosting verifies that the posting exists and belongs to the employer.
// Postings owned by somebody else are indistinguishable from missing ones.
func (e employers) ownPosting(ctx context.Context,
	employerID domain.EmployerID,
	postingID domain.JobPostingID) error {
	posting, err := e.storage.JobPostingByID(ctx, postingID)
	if err != nil {
		return fmt.Errorf("could not get job posting: %w", err)
	}
	if posting == nil || posting.EmployerID != employerID {
		return serrors.With(serrors.ErrNotFound, "job posting not found")
	}

	return nil
}

// issuePair mints a fresh token pair for the employer and persists the new
// refresh token as the single valid one.
func (e employers) issuePair(ctx context.Context, employer *domain.Employer) (auth.TokenPair, error) {
	pair, err := e.tokens.IssuePair(employer.ID.String(), employer.Email, employer.CompanyName)
	if err != nil {
		return auth.TokenPair{}, err
	}

	if err := e.storage.SetEmployerRefreshToken(ctx, employer.ID, pair.RefreshToken); err != nil {
		return auth.TokenPair{}, fmt.Errorf("could not persist refresh token: %w", err)
	}

	return pair, nil
}
