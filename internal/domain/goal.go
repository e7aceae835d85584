// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type GoalKind string

const (
	GoalKindStore      GoalKind = "STORE"
	GoalKindIndividual GoalKind = "INDIVIDUAL"
)

// MonthFormat é o formato do mês de referência de uma meta (ex: 202401)
const MonthFormat = "200601"

// DailyWeights mapeia a data (YYYY-MM-DD) ao percentual da meta atribuído ao dia
type DailyWeights map[string]decimal.Decimal

// Weight retorna o peso positivo do dia, se existir
func (w DailyWeights) Weight(date time.Time) (decimal.Decimal, bool) {
	if len(w) == 0 {
		return decimal.Zero, false
	}

	weight, exists := w[date.Format(time.DateOnly)]
	if !exists || !weight.IsPositive() {
		return decimal.Zero, false
	}

	return weight, true
}

type MonthlyGoal struct {
	ID                  string          `json:"id"`
	StoreID             string          `json:"store_id"`
	CollaboratorID      *string         `json:"collaborator_id"`
	Month               string          `json:"month"` // Formato yyyymm (ex: 202401)
	Kind                GoalKind        `json:"kind"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	StretchTargetAmount decimal.Decimal `json:"stretch_target_amount"`
	DailyWeights        DailyWeights    `json:"daily_weights,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// GoalIncrement é o acréscimo aditivo aplicado à meta mensal de um colaborador
type GoalIncrement struct {
	GoalID         string
	CollaboratorID string
	Target         decimal.Decimal
	StretchTarget  decimal.Decimal
}
