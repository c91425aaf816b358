package postgres

import (
	"context"
	"fmt"

	"jobboard/pkg/domain"
	"jobboard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const employersTable = "employers"

func (p *PgSQL) CreateEmployer(ctx context.Context, employer domain.Employer) (*domain.Employer, error) {
	var row PgEmployer
	row.FromDomain(employer)

	var stored PgEmployer
	found, err := p.Builder.Insert(employersTable).
		Rows(row).
		Returning(&PgEmployer{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store employer into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert employer returned no row")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) EmployerByID(ctx context.Context, id domain.EmployerID) (*domain.Employer, error) {
	var row PgEmployer
	found, err := p.Builder.From(employersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch employer by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// EmployerByLogin matches the identifier against company_name or email, both
// stored normalized, so the caller must normalize before lookup.
func (p *PgSQL) EmployerByLogin(ctx context.Context, identifier string) (*domain.Employer, error) {
	var row PgEmployer
	found, err := p.Builder.From(employersTable).
		Where(goqu.Or(
			goqu.I("company_name").Eq(identifier),
			goqu.I("email").Eq(identifier),
		)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch employer by login: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateEmployerProfile(ctx context.Context,
	id domain.EmployerID,
	updates storage.EmployerProfileUpdates) (*domain.Employer, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.CompanyName != nil {
		rec["company_name"] = *updates.CompanyName
	}
	if updates.Email != nil {
		rec["email"] = *updates.Email
	}
	if updates.CompanyProfile != nil {
		rec["company_profile"] = *updates.CompanyProfile
	}

	var row PgEmployer
	found, err := p.Builder.Update(employersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgEmployer{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update employer profile in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SetEmployerRefreshToken(ctx context.Context, id domain.EmployerID, token string) error {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if token == "" {
		rec["refresh_token"] = goqu.L("NULL")
	} else {
		rec["refresh_token"] = token
	}

	_, err := p.Builder.Update(employersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set employer refresh token in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) SetEmployerPassword(ctx context.Context, id domain.EmployerID, passwordHash string) error {
	_, err := p.Builder.Update(employersTable).
		Set(goqu.Record{
			"password_hash": passwordHash,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set employer password in pg: %w", err)
	}

	return nil
}
