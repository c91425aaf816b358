package posting_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"

	"jobboard/internal/posting"
	"jobboard/internal/storagetest"
)

func newService(t *testing.T) (posting.Postings, *storagetest.Fake, domain.EmployerID) {
	t.Helper()

	fake := storagetest.New()
	employer, err := fake.CreateEmployer(context.Background(), domain.Employer{
		CompanyName: "acme corp",
		Email:       "jobs@acme.test",
	})
	require.NoError(t, err)

	return posting.New(fake), fake, employer.ID
}

func TestCreateAndGet(t *testing.T) {
	svc, _, employerID := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, employerID, posting.Input{
		Title:        "Go Engineer",
		Description:  "Build backend services",
		Requirements: "3 years of Go",
		Location:     "Berlin",
		Salary:       "90k",
	})
	require.NoError(t, err)
	require.Equal(t, employerID, created.EmployerID)

	got, err := svc.ByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Go Engineer", got.Title)
}

func TestByID_Missing(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.ByID(context.Background(), domain.JobPostingID{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestUpdate_OwnershipChecked(t *testing.T) {
	svc, fake, employerID := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, employerID, posting.Input{Title: "Go Engineer"})
	require.NoError(t, err)

	title := "Senior Go Engineer"
	updated, err := svc.Update(ctx, employerID, created.ID, storage.JobPostingUpdates{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)

	other, err := fake.CreateEmployer(ctx, domain.Employer{
		CompanyName: "other co",
		Email:       "hr@other.test",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, other.ID, created.ID, storage.JobPostingUpdates{Title: &title})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestDelete_OwnershipChecked(t *testing.T) {
	svc, fake, employerID := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, employerID, posting.Input{Title: "Go Engineer"})
	require.NoError(t, err)

	other, err := fake.CreateEmployer(ctx, domain.Employer{
		CompanyName: "other co",
		Email:       "hr@other.test",
	})
	require.NoError(t, err)
	err = svc.Delete(ctx, other.ID, created.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, employerID, created.ID))

	_, err = svc.ByID(ctx, created.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestList(t *testing.T) {
	svc, _, employerID := newService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, employerID, posting.Input{
			Title:    fmt.Sprintf("Engineer %d", i),
			Location: "Berlin",
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, employerID, posting.Input{Title: "Designer", Location: "Remote"})
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		page, err := svc.List(ctx, storage.JobPostingPage{})
		require.NoError(t, err)
		require.Equal(t, uint(1), page.Page)
		require.Equal(t, int64(6), page.Total)
		require.Len(t, page.Postings, 6)
		require.Equal(t, int64(1), page.Pages)
	})

	t.Run("title query", func(t *testing.T) {
		page, err := svc.List(ctx, storage.JobPostingPage{Query: "engineer"})
		require.NoError(t, err)
		require.Equal(t, int64(5), page.Total)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := svc.List(ctx, storage.JobPostingPage{Page: 2, Limit: 4})
		require.NoError(t, err)
		require.Len(t, page.Postings, 2)
		require.Equal(t, int64(2), page.Pages)
	})

	t.Run("sorted by title descending", func(t *testing.T) {
		page, err := svc.List(ctx, storage.JobPostingPage{SortBy: "title", SortDesc: true})
		require.NoError(t, err)
		require.Equal(t, "Engineer 4", page.Postings[0].Title)
	})
}
