package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"jobboard/pkg/domain"
	"jobboard/pkg/storage"
	"jobboard/pkg/storage/postgres"
)

func createTestJobSeeker(ctx context.Context, t *testing.T, pgSQL *postgres.PgSQL, name string) *domain.JobSeeker {
	t.Helper()

	seeker, err := pgSQL.CreateJobSeeker(ctx, domain.JobSeeker{
		FullName:     name,
		Email:        name + "@seekers.test",
		Resume:       "https://files.test/" + name + ".pdf",
		Skills:       []string{"go"},
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	return seeker
}

func TestPgSQL_Applications(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	employer := createTestEmployer(ctx, t, pgSQL, "hiring-co")
	posting, err := pgSQL.CreateJobPosting(ctx, domain.JobPosting{
		EmployerID:  employer.ID,
		Title:       "Backend Engineer",
		Description: "build services",
		Location:    "Remote",
		Salary:      "90000",
	})
	require.NoError(t, err)
	seeker := createTestJobSeeker(ctx, t, pgSQL, "jane")

	created, err := pgSQL.CreateApplication(ctx, posting.ID, seeker.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusPending, created.Status)
	require.Equal(t, posting.ID, created.JobPostingID)
	require.Equal(t, seeker.ID, created.JobSeekerID)

	t.Run("second application for same pair is rejected", func(t *testing.T) {
		_, err := pgSQL.CreateApplication(ctx, posting.ID, seeker.ID)
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("same seeker may apply to another posting", func(t *testing.T) {
		other, err := pgSQL.CreateJobPosting(ctx, domain.JobPosting{
			EmployerID:  employer.ID,
			Title:       "Frontend Engineer",
			Description: "build UIs",
			Location:    "Remote",
			Salary:      "80000",
		})
		require.NoError(t, err)

		_, err = pgSQL.CreateApplication(ctx, other.ID, seeker.ID)
		require.NoError(t, err)
	})

	t.Run("by posting and seeker", func(t *testing.T) {
		got, err := pgSQL.ApplicationByPostingAndSeeker(ctx, posting.ID, seeker.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, created.ID, got.ID)

		missing, err := pgSQL.ApplicationByPostingAndSeeker(ctx, posting.ID, domain.JobSeekerID{})
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("status update overwrites", func(t *testing.T) {
		updated, err := pgSQL.UpdateApplicationStatus(ctx, posting.ID, seeker.ID,
			domain.ApplicationStatusAccepted)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, domain.ApplicationStatusAccepted, updated.Status)

		updated, err = pgSQL.UpdateApplicationStatus(ctx, posting.ID, seeker.ID,
			domain.ApplicationStatusPending)
		require.NoError(t, err)
		require.Equal(t, domain.ApplicationStatusPending, updated.Status)

		missing, err := pgSQL.UpdateApplicationStatus(ctx, posting.ID, domain.JobSeekerID{},
			domain.ApplicationStatusAccepted)
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("applicants carry no credentials", func(t *testing.T) {
		second := createTestJobSeeker(ctx, t, pgSQL, "john")
		_, err := pgSQL.CreateApplication(ctx, posting.ID, second.ID)
		require.NoError(t, err)

		applicants, err := pgSQL.ApplicantsByPosting(ctx, posting.ID)
		require.NoError(t, err)
		require.Len(t, applicants, 2)
		ids := []domain.JobSeekerID{applicants[0].ID, applicants[1].ID}
		require.ElementsMatch(t, []domain.JobSeekerID{seeker.ID, second.ID}, ids)
		for _, applicant := range applicants {
			require.Empty(t, applicant.PasswordHash)
			require.Empty(t, applicant.RefreshToken)
		}
	})
}

func TestPgSQL_Notifications(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	first := createTestEmployer(ctx, t, pgSQL, "notified-co")
	second := createTestEmployer(ctx, t, pgSQL, "quiet-co")

	for _, content := range []string{"first message", "second message"} {
		notification, err := pgSQL.CreateNotification(ctx, first.ID, content)
		require.NoError(t, err)
		require.Equal(t, first.ID, notification.EmployerID)
		require.Equal(t, content, notification.Content)
	}

	t.Run("scoped to employer", func(t *testing.T) {
		notifications, err := pgSQL.NotificationsByEmployer(ctx, first.ID)
		require.NoError(t, err)
		require.Len(t, notifications, 2)
		contents := []string{notifications[0].Content, notifications[1].Content}
		require.ElementsMatch(t, []string{"first message", "second message"}, contents)

		empty, err := pgSQL.NotificationsByEmployer(ctx, second.ID)
		require.NoError(t, err)
		require.Empty(t, empty)
	})
}
