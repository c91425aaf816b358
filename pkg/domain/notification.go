package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationID uniquely identifies a notification.
type NotificationID uuid.UUID

// String returns the canonical textual form of the ID.
func (id NotificationID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as its canonical UUID string.
func (id NotificationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses the ID from its canonical UUID string.
func (id *NotificationID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// Notification is an immutable message addressed to an employer. It is
// persisted first and then broadcast best-effort to connected listeners.
type Notification struct {
	// ID is the unique identifier of the notification.
	ID NotificationID `json:"id"`
	// EmployerID references the employer the notification is addressed to.
	EmployerID EmployerID `json:"employerId"`
	// Content is the message body.
	Content string `json:"content"`
	// CreatedAt is the time the notification was created.
	CreatedAt time.Time `json:"createdAt"`
}
