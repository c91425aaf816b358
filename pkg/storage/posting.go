package storage

import (
	"context"

	"jobboard/pkg/domain"
)

// JobPostingUpdates describes the optional fields that can be applied to an
// existing posting. Only non-nil fields are updated. The owning employer is
// immutable and therefore absent here.
type JobPostingUpdates struct {
	Title        *string
	Description  *string
	Requirements *string
	Location     *string
	Salary       *string
}

// JobPostingPage describes an offset-paginated listing request. Query, when
// non-empty, restricts results to postings whose title matches it
// case-insensitively. SortBy must be one of the columns the implementation
// whitelists; unknown columns fall back to creation time.
type JobPostingPage struct {
	Page     uint
	Limit    uint
	Query    string
	SortBy   string
	SortDesc bool
}

// JobPostingFilter carries the field-equality and text-match criteria of a
// public posting search. Zero values mean "no constraint".
type JobPostingFilter struct {
	Title      string
	Location   string
	Salary     string
	EmployerID *domain.EmployerID
}

// JobPostingList groups a page of postings with the total number of matching
// rows, from which callers derive page counts.
type JobPostingList struct {
	Postings []domain.JobPosting
	Total    int64
}

// JobPostingStorage defines CRUD and query operations for job postings.
type JobPostingStorage interface {
	// CreateJobPosting inserts a new posting and returns the stored row
	// including generated fields.
	CreateJobPosting(ctx context.Context, posting domain.JobPosting) (*domain.JobPosting, error)
	// JobPostingByID fetches a posting by ID. Returns nil when not found.
	JobPostingByID(ctx context.Context, id domain.JobPostingID) (*domain.JobPosting, error)
	// UpdateJobPosting applies the provided field set and returns the updated
	// row, or nil when the posting does not exist.
	UpdateJobPosting(ctx context.Context,
		id domain.JobPostingID,
		updates JobPostingUpdates) (*domain.JobPosting, error)
	// DeleteJobPosting removes a posting. Returns false when it did not exist.
	DeleteJobPosting(ctx context.Context, id domain.JobPostingID) (bool, error)
	// ListJobPostings returns an offset-paginated page of postings together
	// with the total match count.
	ListJobPostings(ctx context.Context, page JobPostingPage) (JobPostingList, error)
	// SearchJobPostings returns all postings matching the filter in natural
	// storage order.
	SearchJobPostings(ctx context.Context, filter JobPostingFilter) ([]domain.JobPosting, error)
}
