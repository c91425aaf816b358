package postgres

import (
	"context"
	"fmt"

	"jobboard/pkg/domain"
	"jobboard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const jobSeekersTable = "job_seekers"

func (p *PgSQL) CreateJobSeeker(ctx context.Context, seeker domain.JobSeeker) (*domain.JobSeeker, error) {
	var row PgJobSeeker
	if err := row.FromDomain(seeker); err != nil {
		return nil, err
	}

	var stored PgJobSeeker
	found, err := p.Builder.Insert(jobSeekersTable).
		Rows(row).
		Returning(&PgJobSeeker{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store job seeker into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert job seeker returned no row")
	}

	return stored.ToDomain()
}

func (p *PgSQL) JobSeekerByID(ctx context.Context, id domain.JobSeekerID) (*domain.JobSeeker, error) {
	var row PgJobSeeker
	found, err := p.Builder.From(jobSeekersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job seeker by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) JobSeekerByEmail(ctx context.Context, email string) (*domain.JobSeeker, error) {
	var row PgJobSeeker
	found, err := p.Builder.From(jobSeekersTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job seeker by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpdateJobSeekerProfile(ctx context.Context,
	id domain.JobSeekerID,
	updates storage.JobSeekerProfileUpdates) (*domain.JobSeeker, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.FullName != nil {
		rec["full_name"] = *updates.FullName
	}
	if updates.Email != nil {
		rec["email"] = *updates.Email
	}
	if updates.Resume != nil {
		rec["resume"] = *updates.Resume
	}
	if updates.Skills != nil {
		b, err := marshalJSONList(*updates.Skills)
		if err != nil {
			return nil, fmt.Errorf("could not marshal skills: %w", err)
		}
		rec["skills"] = b
	}
	if updates.Experience != nil {
		b, err := marshalJSONList(*updates.Experience)
		if err != nil {
			return nil, fmt.Errorf("could not marshal experience: %w", err)
		}
		rec["experience"] = b
	}

	var row PgJobSeeker
	found, err := p.Builder.Update(jobSeekersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgJobSeeker{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update job seeker profile in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) SetJobSeekerRefreshToken(ctx context.Context, id domain.JobSeekerID, token string) error {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if token == "" {
		rec["refresh_token"] = goqu.L("NULL")
	} else {
		rec["refresh_token"] = token
	}

	_, err := p.Builder.Update(jobSeekersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set job seeker refresh token in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) SetJobSeekerPassword(ctx context.Context, id domain.JobSeekerID, passwordHash string) error {
	_, err := p.Builder.Update(jobSeekersTable).
		Set(goqu.Record{
			"password_hash": passwordHash,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set job seeker password in pg: %w", err)
	}

	return nil
}
