package postgres

import (
	"context"
	"fmt"

	"jobboard/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const notificationsTable = "notifications"

func (p *PgSQL) CreateNotification(ctx context.Context,
	employerID domain.EmployerID,
	content string) (*domain.Notification, error) {
	var stored PgNotification
	found, err := p.Builder.Insert(notificationsTable).
		Rows(goqu.Record{
			"employer_id": uuid.UUID(employerID),
			"content":     content,
		}).
		Returning(&PgNotification{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store notification into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert notification returned no row")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) NotificationsByEmployer(ctx context.Context,
	employerID domain.EmployerID) ([]domain.Notification, error) {
	var rows []PgNotification
	if err := p.Builder.From(notificationsTable).
		Where(goqu.I("employer_id").Eq(uuid.UUID(employerID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch notifications from pg: %w", err)
	}

	out := make([]domain.Notification, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
