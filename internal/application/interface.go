package application

import (
	"context"

	"jobboard/pkg/domain"
	"jobboard/pkg/storage"
)

// Applications exposes the job seeker side of the application flow plus the
// public posting search.
type Applications interface {
	// Apply submits a Pending application for the posting. A missing posting
	// yields serrors.ErrNotFound; a repeated application for the same pair
	// yields serrors.ErrConflict regardless of concurrent submissions.
	Apply(ctx context.Context,
		postingID domain.JobPostingID,
		seekerID domain.JobSeekerID) (*domain.Application, error)
	// Status fetches the seeker's application for the posting,
	// serrors.ErrNotFound when they have not applied.
	Status(ctx context.Context,
		postingID domain.JobPostingID,
		seekerID domain.JobSeekerID) (*domain.Application, error)
	// Search lists postings matching the filter.
	Search(ctx context.Context, filter storage.JobPostingFilter) ([]domain.JobPosting, error)
	// Details fetches a public posting, serrors.ErrNotFound when absent.
	Details(ctx context.Context, postingID domain.JobPostingID) (*domain.JobPosting, error)
}
