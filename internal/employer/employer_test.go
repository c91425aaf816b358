package employer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"

	"jobboard/internal/auth"
	"jobboard/internal/employer"
	"jobboard/internal/storagetest"
)

func newService(t *testing.T) (employer.Employers, *storagetest.Fake) {
	t.Helper()

	fake := storagetest.New()
	tokens := auth.NewTokenManager(auth.Options{
		AccessSecret:  "access-secret",
		AccessTTL:     time.Minute,
		RefreshSecret: "refresh-secret",
		RefreshTTL:    time.Hour,
	})

	return employer.New(fake, auth.NewPasswordHasher(4), tokens), fake
}

func register(t *testing.T, svc employer.Employers) *domain.Employer {
	t.Helper()

	created, err := svc.Register(context.Background(), employer.RegisterInput{
		CompanyName:    "Acme Corp",
		Email:          "jobs@acme.test",
		Password:       "s3cretpass",
		CompanyProfile: "https://files.test/acme.pdf",
	})
	require.NoError(t, err)

	return created
}

func TestRegister_NormalizesAndHidesSecrets(t *testing.T) {
	svc, _ := newService(t)

	created := register(t, svc)
	require.Equal(t, "acme corp", created.CompanyName)
	require.Equal(t, "jobs@acme.test", created.Email)
	require.NotEmpty(t, created.PasswordHash)
	require.NotEqual(t, "s3cretpass", created.PasswordHash)
}

func TestRegister_DuplicateIsConflict(t *testing.T) {
	svc, _ := newService(t)

	register(t, svc)
	_, err := svc.Register(context.Background(), employer.RegisterInput{
		CompanyName: "ACME CORP",
		Email:       "other@acme.test",
		Password:    "s3cretpass",
	})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	created := register(t, svc)

	t.Run("by company name", func(t *testing.T) {
		loggedIn, pair, err := svc.Login(context.Background(), "Acme Corp", "s3cretpass")
		require.NoError(t, err)
		require.Equal(t, created.ID, loggedIn.ID)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("by email", func(t *testing.T) {
		loggedIn, _, err := svc.Login(context.Background(), "JOBS@acme.test", "s3cretpass")
		require.NoError(t, err)
		require.Equal(t, created.ID, loggedIn.ID)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "nobody@acme.test", "s3cretpass")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "jobs@acme.test", "wrong")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func TestRefresh_RotatesSingleActiveToken(t *testing.T) {
	svc, fake := newService(t)
	created := register(t, svc)

	_, pair, err := svc.Login(context.Background(), "jobs@acme.test", "s3cretpass")
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.RefreshToken)

	stored, err := fake.EmployerByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, rotated.RefreshToken, stored.RefreshToken)

	// the pre-rotation token is no longer the persisted one
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, serrors.ErrTokenReused)
}

func TestRefresh_AfterLogout(t *testing.T) {
	svc, _ := newService(t)
	created := register(t, svc)

	_, pair, err := svc.Login(context.Background(), "jobs@acme.test", "s3cretpass")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), created.ID))

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, serrors.ErrTokenReused)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newService(t)
	created := register(t, svc)

	err := svc.ChangePassword(context.Background(), created.ID, "wrong", "newpass123")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	require.NoError(t, svc.ChangePassword(context.Background(), created.ID, "s3cretpass", "newpass123"))

	_, _, err = svc.Login(context.Background(), "jobs@acme.test", "s3cretpass")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	_, _, err = svc.Login(context.Background(), "jobs@acme.test", "newpass123")
	require.NoError(t, err)
}

func TestUpdateProfile_NeverTouchesCredentials(t *testing.T) {
	svc, fake := newService(t)
	created := register(t, svc)

	name := "Acme Industries"
	updated, err := svc.UpdateProfile(context.Background(), created.ID, storage.EmployerProfileUpdates{
		CompanyName: &name,
	})
	require.NoError(t, err)
	require.Equal(t, "acme industries", updated.CompanyName)
	require.Equal(t, created.Email, updated.Email)

	stored, err := fake.EmployerByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.PasswordHash, stored.PasswordHash)
}

func TestUpdateApplicationStatus(t *testing.T) {
	svc, fake := newService(t)
	created := register(t, svc)
	ctx := context.Background()

	posting, err := fake.CreateJobPosting(ctx, domain.JobPosting{
		EmployerID: created.ID,
		Title:      "Go Engineer",
	})
	require.NoError(t, err)
	seeker, err := fake.CreateJobSeeker(ctx, domain.JobSeeker{
		FullName: "Jane Doe",
		Email:    "jane@seekers.test",
	})
	require.NoError(t, err)
	_, err = fake.CreateApplication(ctx, posting.ID, seeker.ID)
	require.NoError(t, err)

	t.Run("invalid enum is rejected", func(t *testing.T) {
		_, err := svc.UpdateApplicationStatus(ctx, created.ID, posting.ID, seeker.ID, "Hired")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("foreign posting looks absent", func(t *testing.T) {
		other, err := fake.CreateEmployer(ctx, domain.Employer{
			CompanyName: "other co", Email: "hr@other.test",
		})
		require.NoError(t, err)
		_, err = svc.UpdateApplicationStatus(ctx, other.ID, posting.ID, seeker.ID,
			domain.ApplicationStatusAccepted)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("flat overwrite", func(t *testing.T) {
		updated, err := svc.UpdateApplicationStatus(ctx, created.ID, posting.ID, seeker.ID,
			domain.ApplicationStatusAccepted)
		require.NoError(t, err)
		require.Equal(t, domain.ApplicationStatusAccepted, updated.Status)

		// any enum value may replace any other, there is no transition graph
		updated, err = svc.UpdateApplicationStatus(ctx, created.ID, posting.ID, seeker.ID,
			domain.ApplicationStatusPending)
		require.NoError(t, err)
		require.Equal(t, domain.ApplicationStatusPending, updated.Status)
	})
}

func TestApplicants_OwnershipChecked(t *testing.T) {
	svc, fake := newService(t)
	created := register(t, svc)
	ctx := context.Background()

	posting, err := fake.CreateJobPosting(ctx, domain.JobPosting{
		EmployerID: created.ID,
		Title:      "Go Engineer",
	})
	require.NoError(t, err)
	seeker, err := fake.CreateJobSeeker(ctx, domain.JobSeeker{
		FullName:     "Jane Doe",
		Email:        "jane@seekers.test",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	_, err = fake.CreateApplication(ctx, posting.ID, seeker.ID)
	require.NoError(t, err)

	applicants, err := svc.Applicants(ctx, created.ID, posting.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	require.Equal(t, seeker.ID, applicants[0].ID)
	require.Empty(t, applicants[0].PasswordHash)

	other, err := fake.CreateEmployer(ctx, domain.Employer{
		CompanyName: "other co", Email: "hr@other.test",
	})
	require.NoError(t, err)
	_, err = svc.Applicants(ctx, other.ID, posting.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
