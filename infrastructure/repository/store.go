package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-goals-api/internal/domain"
)

const (
	storesTable = "stores s"
)

type StoreRepository interface {
	GetByID(ctx context.Context, storeID string) (*domain.Store, error)
}

type storeRepository struct {
	conn postgres.Queryer
}

func NewStoreRepository(conn postgres.Queryer) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) GetByID(ctx context.Context, storeID string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select("s.id, s.name, s.cnpj, s.secret_name, s.compensate_deficit, s.bonus_ahead").
		From(storesTable).
		Where(squirrel.Eq{"s.id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store := &domain.Store{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&store.ID,
		&store.Name,
		&store.CNPJ,
		&store.SecretName,
		&store.CompensateDeficit,
		&store.BonusAhead,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return store, nil
}
