package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-goals-api/internal/domain"
)

const (
	absencesTable = "absences ab"
)

type AbsenceRepository interface {
	ListByDate(ctx context.Context, storeID string, date time.Time) ([]*domain.AbsenceRecord, error)
	ListStoresWithAbsences(ctx context.Context, date time.Time) ([]string, error)
}

type absenceRepository struct {
	conn postgres.Queryer
}

func NewAbsenceRepository(conn postgres.Queryer) AbsenceRepository {
	return &absenceRepository{
		conn: conn,
	}
}

func (r *absenceRepository) ListByDate(ctx context.Context, storeID string, date time.Time) ([]*domain.AbsenceRecord, error) {
	query, args, err := squirrel.
		Select("ab.store_id, ab.collaborator_id, ab.date").
		From(absencesTable).
		Where(squirrel.Eq{"ab.store_id": storeID, "ab.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	absences := make([]*domain.AbsenceRecord, 0)
	for rows.Next() {
		absence := &domain.AbsenceRecord{}
		if err := rows.Scan(&absence.StoreID, &absence.CollaboratorID, &absence.Date); err != nil {
			return nil, fmt.Errorf("erro ao escanear ausência: %w", err)
		}
		absences = append(absences, absence)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return absences, nil
}

// ListStoresWithAbsences retorna as lojas que possuem ao menos uma ausência na data
func (r *absenceRepository) ListStoresWithAbsences(ctx context.Context, date time.Time) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT ab.store_id").
		From(absencesTable).
		Where(squirrel.Eq{"ab.date": date.Format(time.DateOnly)}).
		OrderBy("ab.store_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	storeIDs := make([]string, 0)
	for rows.Next() {
		var storeID string
		if err := rows.Scan(&storeID); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		storeIDs = append(storeIDs, storeID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return storeIDs, nil
}
