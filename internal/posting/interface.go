package posting

import (
	"context"

	"jobboard/pkg/domain"
	"jobboard/pkg/storage"
)

// Input carries the fields of a new job posting.
type Input struct {
	Title        string
	Description  string
	Requirements string
	Location     string
	Salary       string
}

// Page is one page of a posting listing together with pagination metadata.
type Page struct {
	Postings []domain.JobPosting `json:"jobPostings"`
	Total    int64               `json:"total"`
	Page     uint                `json:"page"`
	Limit    uint                `json:"limit"`
	Pages    int64               `json:"pages"`
}

// Postings exposes CRUD and listing over job postings. Mutations are
// ownership-checked: a posting that exists but belongs to another employer is
// indistinguishable from a missing one.
type Postings interface {
	// Create stores a new posting owned by the employer.
	Create(ctx context.Context, employerID domain.EmployerID, input Input) (*domain.JobPosting, error)
	// ByID fetches a posting, serrors.ErrNotFound when absent.
	ByID(ctx context.Context, id domain.JobPostingID) (*domain.JobPosting, error)
	// Update applies the given fields to one of the employer's own postings.
	Update(ctx context.Context,
		employerID domain.EmployerID,
		id domain.JobPostingID,
		updates storage.JobPostingUpdates) (*domain.JobPosting, error)
	// Delete removes one of the employer's own postings.
	Delete(ctx context.Context, employerID domain.EmployerID, id domain.JobPostingID) error
	// List returns an offset-paginated page of postings. Page and limit fall
	// back to sane defaults when zero; the limit is capped.
	List(ctx context.Context, page storage.JobPostingPage) (Page, error)
}
