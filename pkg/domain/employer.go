// Package domain contains the core entities of the job board: employers,
// job seekers, job postings, applications and notifications. Types here are
// storage-agnostic; persistence mapping lives in pkg/storage.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmployerID uniquely identifies an employer account.
// It wraps uuid.UUID to provide type safety at the domain layer.
type EmployerID uuid.UUID

// String returns the canonical textual form of the ID.
func (id EmployerID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as its canonical UUID string.
func (id EmployerID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses the ID from its canonical UUID string.
func (id *EmployerID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// Employer represents a company account that posts jobs and reviews
// applications. CompanyName and Email are globally unique and stored
// lower-cased and trimmed.
type Employer struct {
	// ID is the unique identifier of the employer.
	ID EmployerID `json:"id"`

	// CompanyName is the unique, case-normalized company name.
	CompanyName string `json:"companyName"`
	// Email is the unique, case-normalized contact address.
	Email string `json:"email"`
	// CompanyProfile is a URI pointing at the uploaded company profile.
	CompanyProfile string `json:"companyProfile"`

	// PasswordHash is the bcrypt hash of the account password. It is never
	// serialized into API responses.
	PasswordHash string `json:"-"`
	// RefreshToken is the single currently valid refresh token, empty when
	// the employer is logged out. Never serialized.
	RefreshToken string `json:"-"`

	// CreatedAt is the time the account was registered.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the record was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
