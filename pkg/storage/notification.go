package storage

import (
	"context"

	"jobboard/pkg/domain"
)

// NotificationStorage defines persistence operations for notifications.
// Notifications are immutable once created.
type NotificationStorage interface {
	// CreateNotification inserts a notification for the employer and returns
	// the stored row including generated fields.
	CreateNotification(ctx context.Context,
		employerID domain.EmployerID,
		content string) (*domain.Notification, error)
	// NotificationsByEmployer returns all notifications addressed to the
	// employer in natural storage order.
	NotificationsByEmployer(ctx context.Context,
		employerID domain.EmployerID) ([]domain.Notification, error)
}
