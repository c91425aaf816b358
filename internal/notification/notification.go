// Package notification implements employer notifications: persistence plus a
// best-effort in-process broadcast to connected listeners.
package notification

import (
	"context"
	"fmt"
	"strings"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"
)

// notifications is the concrete implementation of the Notifications
// interface. The broadcaster is injected at construction; there is no
// ambient global hub.
type notifications struct {
	storage     storage.Storage
	broadcaster *Broadcaster
}

// New creates a Notifications service backed by the given storage and
// broadcaster.
func New(storage storage.Storage, broadcaster *Broadcaster) Notifications {
	return notifications{
		storage:     storage,
		broadcaster: broadcaster,
	}
}

func (n notifications) Create(ctx context.Context,
	employerID domain.EmployerID,
	content string) (*domain.Notification, error) {
	if strings.TrimSpace(content) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "content is required")
	}

	created, err := n.storage.CreateNotification(ctx, employerID, content)
	if err != nil {
		return nil, fmt.Errorf("could not create notification: %w", err)
	}

	// persist first, then broadcast. A dropped broadcast is invisible to the
	// caller; listeners catch up through List.
	n.broadcaster.Publish(*created)

	return created, nil
}

func (n notifications) List(ctx context.Context,
	employerID domain.EmployerID) ([]domain.Notification, error) {
	result, err := n.storage.NotificationsByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("could not list notifications: %w", err)
	}

	return result, nil
}

func (n notifications) Subscribe(employerID domain.EmployerID) (<-chan domain.Notification, func()) {
	return n.broadcaster.Subscribe(employerID)
}
