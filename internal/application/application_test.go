package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"

	"jobboard/internal/application"
	"jobboard/internal/storagetest"
)

type fixture struct {
	svc      application.Applications
	fake     *storagetest.Fake
	posting  *domain.JobPosting
	seekerID domain.JobSeekerID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	fake := storagetest.New()
	employer, err := fake.CreateEmployer(ctx, domain.Employer{
		CompanyName: "acme corp",
		Email:       "jobs@acme.test",
	})
	require.NoError(t, err)
	posting, err := fake.CreateJobPosting(ctx, domain.JobPosting{
		EmployerID: employer.ID,
		Title:      "Go Engineer",
		Location:   "Berlin",
		Salary:     "90k",
	})
	require.NoError(t, err)
	seeker, err := fake.CreateJobSeeker(ctx, domain.JobSeeker{
		FullName: "Jane Doe",
		Email:    "jane@seekers.test",
	})
	require.NoError(t, err)

	return fixture{
		svc:      application.New(fake),
		fake:     fake,
		posting:  posting,
		seekerID: seeker.ID,
	}
}

func TestApply(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Apply(ctx, f.posting.ID, f.seekerID)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusPending, created.Status)
	require.Equal(t, f.posting.ID, created.JobPostingID)
	require.Equal(t, f.seekerID, created.JobSeekerID)
}

func TestApply_MissingPosting(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Apply(context.Background(), domain.JobPostingID{}, f.seekerID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestApply_Twice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Apply(ctx, f.posting.ID, f.seekerID)
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, f.posting.ID, f.seekerID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Status(ctx, f.posting.ID, f.seekerID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = f.svc.Apply(ctx, f.posting.ID, f.seekerID)
	require.NoError(t, err)

	status, err := f.svc.Status(ctx, f.posting.ID, f.seekerID)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusPending, status.Status)

	// a status overwrite is visible on the next read
	_, err = f.fake.UpdateApplicationStatus(ctx, f.posting.ID, f.seekerID,
		domain.ApplicationStatusAccepted)
	require.NoError(t, err)

	status, err = f.svc.Status(ctx, f.posting.ID, f.seekerID)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusAccepted, status.Status)
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	results, err := f.svc.Search(ctx, storage.JobPostingFilter{Location: "Berlin"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	results, err = f.svc.Search(ctx, storage.JobPostingFilter{Location: "Remote"})
	require.NoError(t, err)
	require.Empty(t, results)

	results, err = f.svc.Search(ctx, storage.JobPostingFilter{Title: "go"})
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestDetails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	details, err := f.svc.Details(ctx, f.posting.ID)
	require.NoError(t, err)
	require.Equal(t, f.posting.ID, details.ID)

	_, err = f.svc.Details(ctx, domain.JobPostingID{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
