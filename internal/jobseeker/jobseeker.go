// Package jobseeker implements the job seeker account flows: register,
// login, token rotation, password changes and profile management.
package jobseeker

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

// jobSeekers is the concrete implementation of the JobSeekers interface.
type jobSeekers struct {
	storage storage.Storage
	hasher  auth.PasswordHasher
	tokens  *auth.TokenManager
}

// New creates a JobSeekers service backed by the given storage and auth
// components.
func New(storage storage.Storage, hasher auth.PasswordHasher, tokens *auth.TokenManager) JobSeekers {
	return jobSeekers{
		storage: storage,
		hasher:  hasher,
		tokens:  tokens,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (j jobSeekers) Register(ctx context.Context, input RegisterInput) (*domain.JobSeeker, error) {
	if strings.TrimSpace(input.Resume) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "resume is required")
	}

	hash, err := j.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := j.storage.CreateJobSeeker(ctx, domain.JobSeeker{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        normalize(input.Email),
		Resume:       strings.TrimSpace(input.Resume),
		Skills:       input.Skills,
		Experience:   input.Experience,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "job seeker already exists")
		}

		return nil, fmt.Errorf("could not create job seeker: %w", err)
	}

	return created, nil
}

func (j jobSeekers) Login(ctx context.Context,
	email, password string) (*domain.JobSeeker, auth.TokenPair, error) {
	seeker, err := j.storage.JobSeekerByEmail(ctx, normalize(email))
	if err != nil {
		return nil, auth.TokenPair{}, fmt.Errorf("could not get job seeker: %w", err)
	}
	if seeker == nil {
		return nil, auth.TokenPair{}, serrors.With(serrors.ErrNotFound, "job seeker does not exist")
	}

	if !j.hasher.Verify(password, seeker.PasswordHash) {
		return nil, auth.TokenPair{}, serrors.With(serrors.ErrUnauthorized, "invalid job seeker credentials")
	}

	pair, err := j.issuePair(ctx, seeker)
	if err != nil {
		return nil, auth.TokenPair{}, err
	}

	return seeker, pair, nil
}

func (j jobSeekers) Logout(ctx context.Context, id domain.JobSeekerID) error {
	if err := j.storage.SetJobSeekerRefreshToken(ctx, id, ""); err != nil {
		return fmt.Errorf("could not clear refresh token: %w", err)
	}

	return nil
}

func (j jobSeekers) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	claims, err := j.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPair{}, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return auth.TokenPair{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid refresh token")
	}

	seeker, err := j.storage.JobSeekerByID(ctx, domain.JobSeekerID(id))
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("could not get job seeker: %w", err)
	}
	if seeker == nil {
		return auth.TokenPair{}, serrors.With(serrors.ErrUnauthorized, "invalid refresh token")
	}

	if seeker.RefreshToken == "" || seeker.RefreshToken != refreshToken {
		return auth.TokenPair{}, serrors.With(serrors.ErrTokenReused, "refresh token is expired or used")
	}

	return j.issuePair(ctx, seeker)
}

func (j jobSeekers) ChangePassword(ctx context.Context,
	id domain.JobSeekerID,
	oldPassword, newPassword string) error {
	seeker, err := j.storage.JobSeekerByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get job seeker: %w", err)
	}
	if seeker == nil {
		return serrors.With(serrors.ErrNotFound, "job seeker does not exist")
	}

	if !j.hasher.Verify(oldPassword, seeker.PasswordHash) {
		return serrors.With(serrors.ErrBadRequest, "invalid old password")
	}

	hash, err := j.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := j.storage.SetJobSeekerPassword(ctx, id, hash); err != nil {
		return fmt.Errorf("could not set password: %w", err)
	}

	return nil
}

func (j jobSeekers) Profile(ctx context.Context, id domain.JobSeekerID) (*domain.JobSeeker, error) {
	seeker, err := j.storage.JobSeekerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job seeker: %w", err)
	}
	if seeker == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job seeker does not exist")
	}

	return seeker, nil
}

func (j jobSeekers) UpdateProfile(ctx context.Context,
	id domain.JobSeekerID,
	updates storage.JobSeekerProfileUpdates) (*domain.JobSeeker, error) {
	if updates.Email != nil {
		normalized := normalize(*updates.Email)
		updates.Email = &normalized
	}

	seeker, err := j.storage.UpdateJobSeekerProfile(ctx, id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "job seeker already exists")
		}

		return nil, fmt.Errorf("could not update job seeker: %w", err)
	}
	if seeker == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job seeker does not exist")
	}

	return seeker, nil
}

func (j jobSeekers) issuePair(ctx context.Context, seeker *domain.JobSeeker) (auth.TokenPair, error) {
	pair, err := j.tokens.IssuePair(seeker.ID.String(), seeker.Email, seeker.FullName)
	if err != nil {
		return auth.TokenPair{}, err
	}

	if err := j.storage.SetJobSeekerRefreshToken(ctx, seeker.ID, pair.RefreshToken); err != nil {
		return auth.TokenPair{}, fmt.Errorf("could not persist refresh token: %w", err)
	}

	return pair, nil
}
