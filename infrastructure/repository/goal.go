// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/store-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-goals-api/internal/domain"
)

const (
	monthlyGoalsTable = "monthly_goals mg"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	// ErrNotFound indica que nenhuma linha foi afetada pela operação
	ErrNotFound = errors.New("registro não encontrado")
)

var monthlyGoalColumns = []string{
	"mg.id",
	"mg.store_id",
	"mg.collaborator_id",
	"mg.month",
	"mg.kind",
	"mg.target_amount",
	"mg.stretch_target_amount",
	"mg.daily_weights",
	"mg.created_at",
	"mg.updated_at",
}

type GoalRepository interface {
	GetStoreGoal(ctx context.Context, storeID string, month string) (*domain.MonthlyGoal, error)
	GetIndividualGoal(ctx context.Context, storeID, collaboratorID, month string) (*domain.MonthlyGoal, error)
	ListIndividualGoals(ctx context.Context, storeID string, month string) (map[string]*domain.MonthlyGoal, error)
	ApplyIncrement(ctx context.Context, increment domain.GoalIncrement) error
}

type goalRepository struct {
	conn postgres.Queryer
}

func NewGoalRepository(conn postgres.Queryer) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) GetStoreGoal(ctx context.Context, storeID string, month string) (*domain.MonthlyGoal, error) {
	return r.getGoal(ctx, squirrel.Eq{
		"mg.store_id": storeID,
		"mg.month":    month,
		"mg.kind":     domain.GoalKindStore,
	})
}

func (r *goalRepository) GetIndividualGoal(ctx context.Context, storeID, collaboratorID, month string) (*domain.MonthlyGoal, error) {
	return r.getGoal(ctx, squirrel.Eq{
		"mg.store_id":        storeID,
		"mg.collaborator_id": collaboratorID,
		"mg.month":           month,
		"mg.kind":            domain.GoalKindIndividual,
	})
}

func (r *goalRepository) getGoal(ctx context.Context, where squirrel.Eq) (*domain.MonthlyGoal, error) {
	query, args, err := squirrel.
		Select(monthlyGoalColumns...).
		From(monthlyGoalsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	goal, err := r.scanGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return goal, nil
}

// ListIndividualGoals retorna as metas individuais do mês indexadas pelo colaborador
func (r *goalRepository) ListIndividualGoals(ctx context.Context, storeID string, month string) (map[string]*domain.MonthlyGoal, error) {
	query, args, err := squirrel.
		Select(monthlyGoalColumns...).
		From(monthlyGoalsTable).
		Where(squirrel.Eq{
			"mg.store_id": storeID,
			"mg.month":    month,
			"mg.kind":     domain.GoalKindIndividual,
		}).
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

	goals := make(map[string]*domain.MonthlyGoal)
	for rows.Next() {
		goal, err := r.scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		if goal.CollaboratorID == nil {
			continue
		}
		goals[*goal.CollaboratorID] = goal
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

// ApplyIncrement soma o acréscimo às duas metas em um único UPDATE atômico
func (r *goalRepository) ApplyIncrement(ctx context.Context, increment domain.GoalIncrement) error {
	query, args, err := squirrel.
		Update("monthly_goals").
		Set("target_amount", squirrel.Expr("target_amount + ?", increment.Target)).
		Set("stretch_target_amount", squirrel.Expr("stretch_target_amount + ?", increment.StretchTarget)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":   increment.GoalID,
			"kind": domain.GoalKindIndividual,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("meta %s: %w", increment.GoalID, ErrNotFound)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *goalRepository) scanGoal(row scanner) (*domain.MonthlyGoal, error) {
	goal := &domain.MonthlyGoal{}
	var weightsJSON []byte

	err := row.Scan(
		&goal.ID,
		&goal.StoreID,
		&goal.CollaboratorID,
		&goal.Month,
		&goal.Kind,
		&goal.TargetAmount,
		&goal.StretchTargetAmount,
		&weightsJSON,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(weightsJSON) > 0 {
		weights := make(domain.DailyWeights)
		if err := json.Unmarshal(weightsJSON, &weights); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de daily_weights: %w", err)
		}
		goal.DailyWeights = weights
	}

	return goal, nil
}
