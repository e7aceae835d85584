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
	collaboratorsTable = "collaborators c"
)

type CollaboratorRepository interface {
	GetByID(ctx context.Context, storeID, collaboratorID string) (*domain.Collaborator, error)
	ListActive(ctx context.Context, storeID string, role string) ([]*domain.Collaborator, error)
}

type collaboratorRepository struct {
	conn postgres.Queryer
}

func NewCollaboratorRepository(conn postgres.Queryer) CollaboratorRepository {
	return &collaboratorRepository{
		conn: conn,
	}
}

func (r *collaboratorRepository) GetByID(ctx context.Context, storeID, collaboratorID string) (*domain.Collaborator, error) {
	query, args, err := squirrel.
		Select("c.id, c.store_id, c.name, c.role, c.active, c.external_employee_id").
		From(collaboratorsTable).
		Where(squirrel.Eq{"c.store_id": storeID, "c.id": collaboratorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	collaborator, err := r.scanCollaborator(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear colaborador: %w", err)
	}

	return collaborator, nil
}

// ListActive retorna o roster ativo da loja; role vazio não filtra por papel
func (r *collaboratorRepository) ListActive(ctx context.Context, storeID string, role string) ([]*domain.Collaborator, error) {
	where := squirrel.Eq{"c.store_id": storeID, "c.active": true}
	if role != "" {
		where["c.role"] = role
	}

	query, args, err := squirrel.
		Select("c.id, c.store_id, c.name, c.role, c.active, c.external_employee_id").
		From(collaboratorsTable).
		Where(where).
		OrderBy("c.name ASC").
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

	collaborators := make([]*domain.Collaborator, 0)
	for rows.Next() {
		collaborator, err := r.scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear colaborador: %w", err)
		}
		collaborators = append(collaborators, collaborator)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return collaborators, nil
}

func (r *collaboratorRepository) scanCollaborator(row scanner) (*domain.Collaborator, error) {
	collaborator := &domain.Collaborator{}

	err := row.Scan(
		&collaborator.ID,
		&collaborator.StoreID,
		&collaborator.Name,
		&collaborator.Role,
		&collaborator.Active,
		&collaborator.ExternalEmployeeID,
	)
	if err != nil {
		return nil, err
	}

	return collaborator, nil
}
