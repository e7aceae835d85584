// Package goaling monta a cota diária exibida para cada colaborador aplicando a política da loja.
package goaling

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-goals-api/infrastructure/repository"
	"github.com/vfg2006/store-goals-api/internal/domain"
	"github.com/vfg2006/store-goals-api/internal/usecases/performance"
	"github.com/vfg2006/store-goals-api/internal/usecases/quota"
	"github.com/vfg2006/store-goals-api/pkg/apiErrors"
	"github.com/vfg2006/store-goals-api/pkg/log"
	"github.com/vfg2006/store-goals-api/pkg/utils"
)

type GoalService interface {
	GetDailyQuota(ctx context.Context, storeID, collaboratorID string, date time.Time) (*domain.DailyQuotaView, error)
	GetStoreDailyQuotas(ctx context.Context, storeID string, date time.Time) (*domain.StoreDailyQuotasResponse, error)
	InvalidateStore(storeID string)
}

// StoreInvalidator é implementado por caches de leitura mantidos por loja
type StoreInvalidator interface {
	InvalidateStore(storeID string)
}

type Service struct {
	storeRepository        repository.StoreRepository
	goalRepository         repository.GoalRepository
	collaboratorRepository repository.CollaboratorRepository
	tracker                performance.Tracker
	collaboratorRole       string
	cache                  *quotaCache
	invalidators           []StoreInvalidator
	now                    func() time.Time
}

func NewService(
	storeRepository repository.StoreRepository,
	goalRepository repository.GoalRepository,
	collaboratorRepository repository.CollaboratorRepository,
	tracker performance.Tracker,
	collaboratorRole string,
	cacheTTL time.Duration,
) *Service {
	return &Service{
		storeRepository:        storeRepository,
		goalRepository:         goalRepository,
		collaboratorRepository: collaboratorRepository,
		tracker:                tracker,
		collaboratorRole:       collaboratorRole,
		cache:                  newQuotaCache(cacheTTL),
		now:                    time.Now,
	}
}

// WithInvalidators registra caches adicionais descartados junto com o cache de cotas
func (s *Service) WithInvalidators(invalidators ...StoreInvalidator) *Service {
	s.invalidators = append(s.invalidators, invalidators...)
	return s
}

func (s *Service) GetDailyQuota(ctx context.Context, storeID, collaboratorID string, date time.Time) (*domain.DailyQuotaView, error) {
	store, err := s.getStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	return s.dailyQuota(ctx, store, collaboratorID, date)
}

func (s *Service) GetStoreDailyQuotas(ctx context.Context, storeID string, date time.Time) (*domain.StoreDailyQuotasResponse, error) {
	logger := log.ForStore(ctx, storeID)

	store, err := s.getStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	collaborators, err := s.collaboratorRepository.ListActive(ctx, storeID, s.collaboratorRole)
	if err != nil {
		logger.WithError(err).Error("goals: erro ao buscar colaboradores ativos")
		return nil, quota.NewGoalError(quota.ErrPersistence, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar colaboradores da loja")
	}

	response := &domain.StoreDailyQuotasResponse{
		StoreID: storeID,
		Date:    date.Format(time.DateOnly),
		Quotas:  make([]*domain.DailyQuotaView, 0, len(collaborators)),
	}

	for _, collaborator := range collaborators {
		view, err := s.dailyQuota(ctx, store, collaborator.ID, date)
		if err != nil {
			if errors.Is(err, quota.ErrMissingGoal) {
				logger.WithField("collaborator_id", collaborator.ID).Warn("goals: colaborador sem meta individual no mês")
				continue
			}
			return nil, err
		}
		response.Quotas = append(response.Quotas, view)
	}

	return response, nil
}

// InvalidateStore descarta as cotas em cache da loja. Deve ser chamado após uma redistribuição.
func (s *Service) InvalidateStore(storeID string) {
	s.cache.invalidate(storeID)
	for _, invalidator := range s.invalidators {
		invalidator.InvalidateStore(storeID)
	}
}

func (s *Service) getStore(ctx context.Context, storeID string) (*domain.Store, error) {
	store, err := s.storeRepository.GetByID(ctx, storeID)
	if err != nil {
		log.ForStore(ctx, storeID).WithError(err).Error("goals: erro ao buscar loja")
		return nil, quota.NewGoalError(quota.ErrPersistence, apiErrors.ErrDatabaseOperation, storeID, "Erro ao buscar loja")
	}
	if store == nil {
		return nil, quota.NewGoalError(quota.ErrStoreNotFound, apiErrors.ErrStoreNotFound, storeID, "Loja não encontrada")
	}
	return store, nil
}

func (s *Service) dailyQuota(ctx context.Context, store *domain.Store, collaboratorID string, date time.Time) (*domain.DailyQuotaView, error) {
	now := s.now()
	if view, ok := s.cache.get(store.ID, collaboratorID, date, now); ok {
		return view, nil
	}

	logger := log.ForStore(ctx, store.ID).WithField("collaborator_id", collaboratorID)

	month := quota.MonthOf(date)
	goal, err := s.goalRepository.GetIndividualGoal(ctx, store.ID, collaboratorID, month)
	if err != nil {
		logger.WithError(err).Error("goals: erro ao buscar meta individual")
		return nil, quota.NewCollaboratorGoalError(quota.ErrPersistence, apiErrors.ErrDatabaseOperation, store.ID, collaboratorID, "Erro ao buscar meta individual")
	}
	if goal == nil {
		return nil, quota.NewCollaboratorGoalError(quota.ErrMissingGoal, apiErrors.ErrGoalNotFound, store.ID, collaboratorID, "Meta individual não encontrada para o mês "+month)
	}

	if err := quota.ValidateDate(goal, date); err != nil {
		logger.WithError(err).Warn("goals: meta retornada não pertence ao mês da data")
		return nil, quota.NewCollaboratorGoalError(err, apiErrors.ErrInvalidPeriod, store.ID, collaboratorID, "Data fora do mês da meta")
	}

	daysInMonth, err := quota.DaysInMonth(goal.Month)
	if err != nil {
		return nil, quota.NewCollaboratorGoalError(err, apiErrors.ErrInvalidPeriod, store.ID, collaboratorID, "Mês da meta inválido")
	}

	base, err := quota.ComputeBaseQuota(goal, date, daysInMonth)
	if err != nil {
		return nil, quota.NewCollaboratorGoalError(err, apiErrors.ErrInvalidPeriod, store.ID, collaboratorID, "Erro ao calcular cota base")
	}

	expected, err := quota.ExpectedToDate(goal, date, daysInMonth)
	if err != nil {
		return nil, quota.NewCollaboratorGoalError(err, apiErrors.ErrInvalidPeriod, store.ID, collaboratorID, "Erro ao calcular meta esperada")
	}

	policy := quota.PolicyConfigFromStore(store)
	mode := policy.Mode()
	remainingDays := quota.RemainingDays(date, daysInMonth)

	view := &domain.DailyQuotaView{
		StoreID:              store.ID,
		CollaboratorID:       collaboratorID,
		Date:                 date.Format(time.DateOnly),
		BaseQuota:            utils.RoundMoney(base.Quota),
		StretchQuota:         utils.RoundMoney(base.StretchQuota),
		ExpectedToDate:       utils.RoundMoney(expected),
		RemainingDays:        remainingDays,
		PerformanceAvailable: true,
		ComputedAt:           now,
	}

	adjusted := base.Quota
	if mode == quota.ModeStatic {
		view.RealizedToDate = decimal.Zero
		view.PerformanceAvailable = false
	} else {
		realized, err := s.realizedUntilYesterday(ctx, store.ID, collaboratorID, date)
		if err != nil {
			logger.WithError(err).Warn("goals: desempenho indisponível, usando cota base")
			mode = quota.ModeStatic
			view.PerformanceAvailable = false
		} else {
			view.RealizedToDate = utils.RoundMoney(realized)
			adjusted = quota.ResolveAdjuster(mode)(quota.Performance{
				BaseQuota:      base.Quota,
				ExpectedToDate: expected,
				RealizedToDate: realized,
				RemainingDays:  remainingDays,
			})
		}
	}

	view.Mode = mode.String()
	view.AdjustedQuota = utils.RoundMoney(adjusted)

	s.cache.put(store.ID, collaboratorID, date, now, view)

	return view, nil
}

// realizedUntilYesterday busca as vendas até ontem, comparáveis com a meta esperada até ontem
func (s *Service) realizedUntilYesterday(ctx context.Context, storeID, collaboratorID string, date time.Time) (decimal.Decimal, error) {
	if date.Day() == 1 {
		return decimal.Zero, nil
	}
	return s.tracker.GetRealizedToDate(ctx, collaboratorID, storeID, date.AddDate(0, 0, -1))
}
