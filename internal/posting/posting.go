// Package posting implements job posting CRUD and paginated listing.
package posting

import (
	"context"
	"fmt"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// postings is the concrete implementation of the Postings interface.
type postings struct {
	storage storage.Storage
}

// New creates a Postings service backed by the given storage.
func New(storage storage.Storage) Postings {
	return postings{storage: storage}
}

func (p postings) Create(ctx context.Context,
	employerID domain.EmployerID,
	input Input) (*domain.JobPosting, error) {
	created, err := p.storage.CreateJobPosting(ctx, domain.JobPosting{
		EmployerID:   employerID,
		Title:        input.Title,
		Description:  input.Description,
		Requirements: input.Requirements,
		Location:     input.Location,
		Salary:       input.Salary,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create job posting: %w", err)
	}

	return created, nil
}

func (p postings) ByID(ctx context.Context, id domain.JobPostingID) (*domain.JobPosting, error) {
	posting, err := p.storage.JobPostingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job posting: %w", err)
	}
	if posting == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job posting not found")
	}

	return posting, nil
}

func (p postings) Update(ctx context.Context,
	employerID domain.EmployerID,
	id domain.JobPostingID,
	updates storage.JobPostingUpdates) (*domain.JobPosting, error) {
	if err := p.own(ctx, employerID, id); err != nil {
		return nil, err
	}

	posting, err := p.storage.UpdateJobPosting(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update job posting: %w", err)
	}
	if posting == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job posting not found")
	}

	return posting, nil
}

func (p postings) Delete(ctx context.Context,
	employerID domain.EmployerID,
	id domain.JobPostingID) error {
	if err := p.own(ctx, employerID, id); err != nil {
		return err
	}

	deleted, err := p.storage.DeleteJobPosting(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete job posting: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "job posting not found")
	}

	return nil
}

func (p postings) List(ctx context.Context, page storage.JobPostingPage) (Page, error) {
	if page.Page == 0 {
		page.Page = 1
	}
	if page.Limit == 0 {
		page.Limit = defaultLimit
	}
	if page.Limit > maxLimit {
		page.Limit = maxLimit
	}

	list, err := p.storage.ListJobPostings(ctx, page)
	if err != nil {
		return Page{}, fmt.Errorf("could not list job postings: %w", err)
	}

	pages := list.Total / int64(page.Limit)
	if list.Total%int64(page.Limit) != 0 {
		pages++
	}

	return Page{
		Postings: list.Postings,
		Total:    list.Total,
		Page:     page.Page,
		Limit:    page.Limit,
		Pages:    pages,
	}, nil
}

func (p postings) own(ctx context.Context,
	employerID domain.EmployerID,
	id domain.JobPostingID) error {
	posting, err := p.storage.JobPostingByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get job posting: %w", err)
	}
	if posting == nil || posting.EmployerID != employerID {
		return serrors.With(serrors.ErrNotFound, "job posting not found")
	}

	return nil
}
