package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobPostingID uniquely identifies a job posting.
type JobPostingID uuid.UUID

// String returns the canonical textual form of the ID.
func (id JobPostingID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as its canonical UUID string.
func (id JobPostingID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses the ID from its canonical UUID string.
func (id *JobPostingID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// JobPosting is a job advertisement owned by exactly one employer. The owner
// is immutable after creation; applicants are reachable through applications.
type JobPosting struct {
	// ID is the unique identifier of the posting.
	ID JobPostingID `json:"id"`
	// EmployerID references the owning employer.
	EmployerID EmployerID `json:"employerId"`

	// Title is the advertised position title.
	Title string `json:"title"`
	// Description is the long-form description of the role.
	Description string `json:"description"`
	// Requirements lists what the role expects from candidates.
	Requirements string `json:"requirements"`
	// Location is the workplace location.
	Location string `json:"location"`
	// Salary is the advertised salary, free-form text.
	Salary string `json:"salary"`

	// CreatedAt is the time the posting was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the posting was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
