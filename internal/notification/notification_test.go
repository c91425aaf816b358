package notification_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"

	"jobboard/internal/notification"
	"jobboard/internal/storagetest"
)

func newService(t *testing.T) (notification.Notifications, domain.EmployerID) {
	t.Helper()

	fake := storagetest.New()
	employer, err := fake.CreateEmployer(context.Background(), domain.Employer{
		CompanyName: "acme corp",
		Email:       "jobs@acme.test",
	})
	require.NoError(t, err)

	return notification.New(fake, notification.NewBroadcaster()), employer.ID
}

func TestCreateAndList(t *testing.T) {
	svc, employerID := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, employerID, "new applicant for Go Engineer")
	require.NoError(t, err)
	require.Equal(t, employerID, created.EmployerID)

	listed, err := svc.List(ctx, employerID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, created.ID, listed[0].ID)

	other, err := svc.List(ctx, domain.EmployerID(uuid.New()))
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestCreate_EmptyContent(t *testing.T) {
	svc, employerID := newService(t)

	_, err := svc.Create(context.Background(), employerID, "  ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestSubscriberReceivesBroadcast(t *testing.T) {
	svc, employerID := newService(t)
	ctx := context.Background()

	ch, unsubscribe := svc.Subscribe(employerID)
	defer unsubscribe()

	created, err := svc.Create(ctx, employerID, "hello")
	require.NoError(t, err)

	select {
	case got := <-ch:
		require.Equal(t, created.ID, got.ID)
	default:
		t.Fatal("expected a buffered notification")
	}
}

func TestSubscriberScopedToEmployer(t *testing.T) {
	svc, employerID := newService(t)
	ctx := context.Background()

	ch, unsubscribe := svc.Subscribe(domain.EmployerID(uuid.New()))
	defer unsubscribe()

	_, err := svc.Create(ctx, employerID, "hello")
	require.NoError(t, err)

	select {
	case got := <-ch:
		t.Fatalf("unexpected notification: %v", got)
	default:
	}
}

func TestSlowSubscriberDoesNotBlockCreate(t *testing.T) {
	svc, employerID := newService(t)
	ctx := context.Background()

	// never drained; publishes beyond the buffer must be dropped, not block
	_, unsubscribe := svc.Subscribe(employerID)
	defer unsubscribe()

	for i := 0; i < 64; i++ {
		_, err := svc.Create(ctx, employerID, "burst")
		require.NoError(t, err)
	}

	listed, err := svc.List(ctx, employerID)
	require.NoError(t, err)
	require.Len(t, listed, 64)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	broadcaster := notification.NewBroadcaster()
	employerID := domain.EmployerID(uuid.New())

	ch, unsubscribe := broadcaster.Subscribe(employerID)
	unsubscribe()
	// idempotent
	unsubscribe()

	_, open := <-ch
	require.False(t, open)

	// publishing after unsubscribe must not panic on the closed channel
	broadcaster.Publish(domain.Notification{EmployerID: employerID})
}
