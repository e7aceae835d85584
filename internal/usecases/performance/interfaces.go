// Package performance responde quanto um colaborador vendeu até uma data.
package performance

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrStoreNotFound          = errors.New("store not found")
	ErrCollaboratorNotFound   = errors.New("collaborator not found")
	ErrSalesIntegrationAbsent = errors.New("store has no sales integration")
	ErrEmployeeNotLinked      = errors.New("collaborator not linked to an ERP employee")
)

// Tracker é o livro de vendas consultado pelo cálculo de metas
type Tracker interface {
	// GetRealizedToDate retorna o total vendido no mês até uptoDate (inclusive)
	GetRealizedToDate(ctx context.Context, collaboratorID, storeID string, uptoDate time.Time) (decimal.Decimal, error)
}
