package postgres

import (
	"context"
	"fmt"

	"jobboard/pkg/domain"
	"jobboard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const jobPostingsTable = "job_postings"

// postingSortColumns whitelists the columns exposed for listing sort keys.
// Unknown sort keys fall back to created_at.
var postingSortColumns = map[string]string{ //nolint: gochecknoglobals
	"title":     "title",
	"location":  "location",
	"salary":    "salary",
	"createdAt": "created_at",
}

func (p *PgSQL) CreateJobPosting(ctx context.Context, posting domain.JobPosting) (*domain.JobPosting, error) {
	var row PgJobPosting
	row.FromDomain(posting)

	var stored PgJobPosting
	found, err := p.Builder.Insert(jobPostingsTable).
		Rows(row).
		Returning(&PgJobPosting{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store job posting into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert job posting returned no row")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) JobPostingByID(ctx context.Context, id domain.JobPostingID) (*domain.JobPosting, error) {
	var row PgJobPosting
	found, err := p.Builder.From(jobPostingsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job posting by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateJobPosting(ctx context.Context,
	id domain.JobPostingID,
	updates storage.JobPostingUpdates) (*domain.JobPosting, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.Requirements != nil {
		rec["requirements"] = *updates.Requirements
	}
	if updates.Location != nil {
		rec["location"] = *updates.Location
	}
	if updates.Salary != nil {
		rec["salary"] = *updates.Salary
	}

	var row PgJobPosting
	found, err := p.Builder.Update(jobPostingsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgJobPosting{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update job posting in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteJobPosting(ctx context.Context, id domain.JobPostingID) (bool, error) {
	res, err := p.Builder.Delete(jobPostingsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete job posting in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) ListJobPostings(ctx context.Context,
	page storage.JobPostingPage) (storage.JobPostingList, error) {
	where := make([]exp.Expression, 0, 1)
	if page.Query != "" {
		where = append(where, goqu.I("title").ILike("%"+page.Query+"%"))
	}

	total, err := p.Builder.From(jobPostingsTable).
		Where(where...).
		CountContext(ctx)
	if err != nil {
		return storage.JobPostingList{}, fmt.Errorf("could not count job postings: %w", err)
	}

	column, ok := postingSortColumns[page.SortBy]
	if !ok {
		column = "created_at"
	}
	order := goqu.I(column).Asc()
	if page.SortDesc {
		order = goqu.I(column).Desc()
	}

	if page.Limit == 0 {
		page.Limit = 10
	}
	offset := uint(0)
	if page.Page > 1 {
		offset = (page.Page - 1) * page.Limit
	}

	var rows []PgJobPosting
	if err := p.Builder.From(jobPostingsTable).
		Where(where...).
		Order(order, goqu.I("id").Asc()).
		Offset(offset).
		Limit(page.Limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.JobPostingList{}, fmt.Errorf("could not fetch job postings from pg: %w", err)
	}

	return storage.JobPostingList{
		Postings: pgJobPostingsToDomain(rows),
		Total:    total,
	}, nil
}

func (p *PgSQL) SearchJobPostings(ctx context.Context,
	filter storage.JobPostingFilter) ([]domain.JobPosting, error) {
	where := make([]exp.Expression, 0, 4)
	if filter.Title != "" {
		where = append(where, goqu.I("title").ILike("%"+filter.Title+"%"))
	}
	if filter.Location != "" {
		where = append(where, goqu.I("location").ILike("%"+filter.Location+"%"))
	}
	if filter.Salary != "" {
		where = append(where, goqu.I("salary").Eq(filter.Salary))
	}
	if filter.EmployerID != nil {
		where = append(where, goqu.I("employer_id").Eq(uuid.UUID(*filter.EmployerID)))
	}

	var rows []PgJobPosting
	if err := p.Builder.From(jobPostingsTable).
		Where(where...).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not search job postings in pg: %w", err)
	}

	return pgJobPostingsToDomain(rows), nil
}
