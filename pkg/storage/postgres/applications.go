package postgres

import (
	"context"
	"fmt"

	"jobboard/pkg/domain"
	"jobboard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const applicationsTable = "applications"

// CreateApplication relies on the (job_posting_id, job_seeker_id) unique key:
// the insert itself is the existence check, so two concurrent applies for the
// same pair cannot both succeed.
func (p *PgSQL) CreateApplication(ctx context.Context,
	postingID domain.JobPostingID,
	seekerID domain.JobSeekerID) (*domain.Application, error) {
	var stored PgApplication
	found, err := p.Builder.Insert(applicationsTable).
		Rows(goqu.Record{
			"job_posting_id": uuid.UUID(postingID),
			"job_seeker_id":  uuid.UUID(seekerID),
			"status":         string(domain.ApplicationStatusPending),
		}).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store application into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert application returned no row")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ApplicationByPostingAndSeeker(ctx context.Context,
	postingID domain.JobPostingID,
	seekerID domain.JobSeekerID) (*domain.Application, error) {
	var row PgApplication
	found, err := p.Builder.From(applicationsTable).
		Where(
			goqu.I("job_posting_id").Eq(uuid.UUID(postingID)),
			goqu.I("job_seeker_id").Eq(uuid.UUID(seekerID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateApplicationStatus(ctx context.Context,
	postingID domain.JobPostingID,
	seekerID domain.JobSeekerID,
	status domain.ApplicationStatus) (*domain.Application, error) {
	var row PgApplication
	found, err := p.Builder.Update(applicationsTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("job_posting_id").Eq(uuid.UUID(postingID)),
			goqu.I("job_seeker_id").Eq(uuid.UUID(seekerID)),
		).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update application status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ApplicantsByPosting projects out password_hash and refresh_token; the
// returned seekers carry empty credential fields.
func (p *PgSQL) ApplicantsByPosting(ctx context.Context,
	postingID domain.JobPostingID) ([]domain.JobSeeker, error) {
	var rows []PgJobSeeker
	if err := p.Builder.From(goqu.T(jobSeekersTable).As("js")).
		Select(
			goqu.I("js.id"),
			goqu.I("js.full_name"),
			goqu.I("js.email"),
			goqu.I("js.resume"),
			goqu.I("js.skills"),
			goqu.I("js.experience"),
			goqu.I("js.created_at"),
			goqu.I("js.updated_at"),
		).
		Join(goqu.T(applicationsTable).As("a"),
			goqu.On(goqu.I("a.job_seeker_id").Eq(goqu.I("js.id")))).
		Where(goqu.I("a.job_posting_id").Eq(uuid.UUID(postingID))).
		Order(goqu.I("a.created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch applicants from pg: %w", err)
	}

	out := make([]domain.JobSeeker, 0, len(rows))
	for i := range rows {
		seeker, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *seeker)
	}

	return out, nil
}
