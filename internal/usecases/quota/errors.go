package quota

import (
	"errors"
	"fmt"
)

// Erros das metas dinâmicas
var (
	// Erros de cálculo (fatais para a chamada)
	ErrInvalidPeriod = errors.New("invalid period: days in month must be positive")
	ErrInvalidMonth  = errors.New("invalid goal month")
	ErrInvalidDate   = errors.New("date outside goal month")
	ErrStoreNotFound = errors.New("store not found")

	// Erros de orquestração (a entidade é ignorada)
	ErrNoActiveCollaborators = errors.New("no active collaborators")
	ErrMissingGoal           = errors.New("monthly goal not found")
	ErrZeroFactor            = errors.New("day factor is zero")
	ErrPersistence           = errors.New("goal persistence error")
)

// GoalError é um erro com contexto adicional para metas
type GoalError struct {
	Err            error  // Erro base
	Code           string // Código de erro para API
	StoreID        string // Loja envolvida (quando aplicável)
	CollaboratorID string // Colaborador envolvido (quando aplicável)
	Details        string // Detalhes adicionais
}

// Error implementa a interface error
func (e *GoalError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError cria um novo GoalError
func NewGoalError(err error, code string, storeID string, details string) *GoalError {
	return &GoalError{
		Err:     err,
		Code:    code,
		StoreID: storeID,
		Details: details,
	}
}

// NewCollaboratorGoalError cria um novo GoalError com o colaborador envolvido
func NewCollaboratorGoalError(err error, code string, storeID, collaboratorID string, details string) *GoalError {
	return &GoalError{
		Err:            err,
		Code:           code,
		StoreID:        storeID,
		CollaboratorID: collaboratorID,
		Details:        details,
	}
}
