package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/store-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-goals-api/internal/domain"
)

type RedistributionLogRepository interface {
	Save(ctx context.Context, entry *domain.RedistributionLog) error
}

type redistributionLogRepository struct {
	conn postgres.Queryer
}

func NewRedistributionLogRepository(conn postgres.Queryer) RedistributionLogRepository {
	return &redistributionLogRepository{
		conn: conn,
	}
}

func (r *redistributionLogRepository) Save(ctx context.Context, entry *domain.RedistributionLog) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("goal_redistributions").
		Columns(
			"id",
			"store_id",
			"absence_date",
			"absent_count",
			"active_count",
			"quota_pool",
			"stretch_pool",
			"share",
			"collaborators_updated",
		).
		Values(
			entry.ID,
			entry.StoreID,
			entry.AbsenceDate.Format(time.DateOnly),
			entry.AbsentCount,
			entry.ActiveCount,
			entry.QuotaPool,
			entry.StretchPool,
			entry.Share,
			entry.CollaboratorsUpdated,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
