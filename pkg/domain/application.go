package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationID uniquely identifies a job application.
type ApplicationID uuid.UUID

// String returns the canonical textual form of the ID.
func (id ApplicationID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as its canonical UUID string.
func (id ApplicationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses the ID from its canonical UUID string.
func (id *ApplicationID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// ApplicationStatus represents the review state of an application.
type ApplicationStatus string

const (
	// ApplicationStatusPending indicates the application has not been reviewed yet.
	ApplicationStatusPending ApplicationStatus = "Pending"
	// ApplicationStatusAccepted indicates the employer accepted the candidate.
	ApplicationStatusAccepted ApplicationStatus = "Accepted"
	// ApplicationStatusRejected indicates the employer rejected the candidate.
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

// Valid reports whether s is a member of the status enum.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}

	return false
}

// Application records a job seeker's request to be considered for a posting.
// The (JobPostingID, JobSeekerID) pair is unique: a seeker applies to a given
// posting at most once. Status may be overwritten with any enum value; there
// is no transition graph. Applications are never deleted in normal flow.
type Application struct {
	// ID is the unique identifier of the application.
	ID ApplicationID `json:"id"`
	// JobPostingID references the posting applied to.
	JobPostingID JobPostingID `json:"jobPostingId"`
	// JobSeekerID references the applying candidate.
	JobSeekerID JobSeekerID `json:"jobSeekerId"`

	// Status is the current review state, Pending on creation.
	Status ApplicationStatus `json:"status"`

	// CreatedAt is the time the application was submitted.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the status was last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}
