package notification

import (
	"context"

	"jobboard/pkg/domain"
)

// Notifications exposes employer notification creation, listing and live
// subscription.
type Notifications interface {
	// Create validates and persists a notification and then broadcasts it to
	// connected listeners. Broadcasting is best-effort and can never fail the
	// creation.
	Create(ctx context.Context,
		employerID domain.EmployerID,
		content string) (*domain.Notification, error)
	// List returns all notifications addressed to the employer.
	List(ctx context.Context, employerID domain.EmployerID) ([]domain.Notification, error)
	// Subscribe registers a live listener for the employer's notifications.
	// The returned function unsubscribes and closes the channel.
	Subscribe(employerID domain.EmployerID) (<-chan domain.Notification, func())
}
