package storage

import (
	"context"

	"jobboard/pkg/domain"
)

// ApplicationStorage defines persistence operations for job applications.
//
// Apply-once is enforced here, not by callers: the applications table carries
// a compound unique key on (job_posting_id, job_seeker_id) and
// CreateApplication surfaces its violation as ErrDuplicate. There is no
// read-then-write existence check, so concurrent duplicate applies cannot
// race past each other.
type ApplicationStorage interface {
	// CreateApplication inserts a Pending application for the given pair and
	// returns the stored row. A second application for the same pair yields
	// ErrDuplicate.
	CreateApplication(ctx context.Context,
		postingID domain.JobPostingID,
		seekerID domain.JobSeekerID) (*domain.Application, error)
	// ApplicationByPostingAndSeeker fetches the application for the given
	// pair. Returns nil when not found.
	ApplicationByPostingAndSeeker(ctx context.Context,
		postingID domain.JobPostingID,
		seekerID domain.JobSeekerID) (*domain.Application, error)
	// UpdateApplicationStatus overwrites the status of the application for
	// the given pair and returns the updated row, or nil when no such
	// application exists. Any enum value is accepted; enum membership is
	// validated by the caller.
	UpdateApplicationStatus(ctx context.Context,
		postingID domain.JobPostingID,
		seekerID domain.JobSeekerID,
		status domain.ApplicationStatus) (*domain.Application, error)
	// ApplicantsByPosting returns the job seekers who applied to the posting,
	// with credential fields left empty.
	ApplicantsByPosting(ctx context.Context, postingID domain.JobPostingID) ([]domain.JobSeeker, error)
}
