package performance

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica"
	ssoticadomain "github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica/domain"
	"github.com/vfg2006/store-goals-api/infrastructure/repository"
	"github.com/vfg2006/store-goals-api/pkg/log"
)

type ordersEntry struct {
	orders    []ssoticadomain.Order
	fetchedAt time.Time
}

// SSOticaTracker soma as vendas do funcionário vinculado ao colaborador no SSOtica
type SSOticaTracker struct {
	storeRepository        repository.StoreRepository
	collaboratorRepository repository.CollaboratorRepository
	ssoticaService         ssotica.SSOticaIntegrator
	ordersTTL              time.Duration
	now                    func() time.Time

	mu     sync.Mutex
	orders map[string]ordersEntry
}

func NewSSOticaTracker(
	storeRepository repository.StoreRepository,
	collaboratorRepository repository.CollaboratorRepository,
	ssoticaService ssotica.SSOticaIntegrator,
	ordersTTL time.Duration,
) *SSOticaTracker {
	return &SSOticaTracker{
		storeRepository:        storeRepository,
		collaboratorRepository: collaboratorRepository,
		ssoticaService:         ssoticaService,
		ordersTTL:              ordersTTL,
		now:                    time.Now,
		orders:                 make(map[string]ordersEntry),
	}
}

func (t *SSOticaTracker) GetRealizedToDate(ctx context.Context, collaboratorID, storeID string, uptoDate time.Time) (decimal.Decimal, error) {
	store, err := t.storeRepository.GetByID(ctx, storeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao buscar loja: %w", err)
	}
	if store == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrStoreNotFound, storeID)
	}
	if !store.HasSalesIntegration() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrSalesIntegrationAbsent, storeID)
	}

	collaborator, err := t.collaboratorRepository.GetByID(ctx, storeID, collaboratorID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao buscar colaborador: %w", err)
	}
	if collaborator == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrCollaboratorNotFound, collaboratorID)
	}
	if collaborator.ExternalEmployeeID == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrEmployeeNotLinked, collaboratorID)
	}

	orders, err := t.monthOrders(ctx, storeID, ssoticadomain.GetSalesParams{
		CNPJ:       *store.CNPJ,
		SecretName: *store.SecretName,
	}, uptoDate)
	if err != nil {
		return decimal.Zero, err
	}

	realized, quantity := ssoticadomain.SumNetAmountByEmployee(orders, *collaborator.ExternalEmployeeID)

	log.ForContext(ctx).WithFields(log.Fields{
		"store_id":        storeID,
		"collaborator_id": collaboratorID,
		"upto_date":       uptoDate.Format(time.DateOnly),
		"sales_quantity":  quantity,
	}).Debug("performance: vendas realizadas calculadas")

	return realized, nil
}

// monthOrders busca as vendas da loja do primeiro dia do mês até uptoDate, reaproveitando
// o resultado por ordersTTL para que o roster inteiro use uma única consulta
func (t *SSOticaTracker) monthOrders(ctx context.Context, storeID string, params ssoticadomain.GetSalesParams, uptoDate time.Time) ([]ssoticadomain.Order, error) {
	key := storeID + ":" + uptoDate.Format(time.DateOnly)

	t.mu.Lock()
	entry, cached := t.orders[key]
	t.mu.Unlock()
	if cached && t.now().Sub(entry.fetchedAt) < t.ordersTTL {
		return entry.orders, nil
	}

	startDate := time.Date(uptoDate.Year(), uptoDate.Month(), 1, 0, 0, 0, 0, uptoDate.Location())
	orders, err := t.ssoticaService.GetSalesByStore(ctx, params, startDate, uptoDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("store_id", storeID).Error("performance: erro ao buscar vendas do SSOtica")
		return nil, fmt.Errorf("erro ao buscar vendas do SSOtica: %w", err)
	}

	t.mu.Lock()
	t.orders[key] = ordersEntry{orders: orders, fetchedAt: t.now()}
	t.mu.Unlock()

	return orders, nil
}

// InvalidateStore descarta as vendas em cache da loja
func (t *SSOticaTracker) InvalidateStore(storeID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prefix := storeID + ":"
	for key := range t.orders {
		if strings.HasPrefix(key, prefix) {
			delete(t.orders, key)
		}
	}
}
