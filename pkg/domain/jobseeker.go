package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobSeekerID uniquely identifies a job seeker account.
type JobSeekerID uuid.UUID

// String returns the canonical textual form of the ID.
func (id JobSeekerID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as its canonical UUID string.
func (id JobSeekerID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses the ID from its canonical UUID string.
func (id *JobSeekerID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// Experience is a single entry in a job seeker's work history.
type Experience struct {
	Company   string     `json:"company"`
	Position  string     `json:"position"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	// Description optionally elaborates on the role.
	Description string `json:"description,omitempty"`
}

// JobSeeker represents a candidate account that browses postings and applies
// to them. Email is globally unique and stored lower-cased and trimmed.
type JobSeeker struct {
	// ID is the unique identifier of the job seeker.
	ID JobSeekerID `json:"id"`

	// FullName is the candidate's display name.
	FullName string `json:"fullName"`
	// Email is the unique, case-normalized contact address.
	Email string `json:"email"`
	// Resume is a URI pointing at the uploaded resume file.
	Resume string `json:"resume"`
	// Skills is the candidate's set of skills.
	Skills []string `json:"skills"`
	// Experience is the ordered work history, most entries first as provided.
	Experience []Experience `json:"experience"`

	// PasswordHash is the bcrypt hash of the account password. Never serialized.
	PasswordHash string `json:"-"`
	// RefreshToken is the single currently valid refresh token. Never serialized.
	RefreshToken string `json:"-"`

	// CreatedAt is the time the account was registered.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the record was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
