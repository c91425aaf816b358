// Package application implements the job application flow: applying to
// postings, checking application status and searching postings.
package application

import (
	"context"
	"errors"
	"fmt"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"
)

// applications is the concrete implementation of the Applications interface.
type applications struct {
	storage storage.Storage
}

// New creates an Applications service backed by the given storage.
func New(storage storage.Storage) Applications {
	return applications{storage: storage}
}

func (a applications) Apply(ctx context.Context,
	postingID domain.JobPostingID,
	seekerID domain.JobSeekerID) (*domain.Application, error) {
	posting, err := a.storage.JobPostingByID(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("could not get job posting: %w", err)
	}
	if posting == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job posting not found")
	}

	// uniqueness is enforced by the insert itself, so two concurrent applies
	// for the same pair cannot both succeed.
	created, err := a.storage.CreateApplication(ctx, postingID, seekerID)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "already applied for this job")
		}

		return nil, fmt.Errorf("could not create application: %w", err)
	}

	return created, nil
}

func (a applications) Status(ctx context.Context,
	postingID domain.JobPostingID,
	seekerID domain.JobSeekerID) (*domain.Application, error) {
	application, err := a.storage.ApplicationByPostingAndSeeker(ctx, postingID, seekerID)
	if err != nil {
		return nil, fmt.Errorf("could not get application: %w", err)
	}
	if application == nil {
		return nil, serrors.With(serrors.ErrNotFound, "application not found")
	}

	return application, nil
}

func (a applications) Search(ctx context.Context,
	filter storage.JobPostingFilter) ([]domain.JobPosting, error) {
	postings, err := a.storage.SearchJobPostings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not search job postings: %w", err)
	}

	return postings, nil
}

func (a applications) Details(ctx context.Context,
	postingID domain.JobPostingID) (*domain.JobPosting, error) {
	posting, err := a.storage.JobPostingByID(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("could not get job posting: %w", err)
	}
	if posting == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return posting, nil
}
