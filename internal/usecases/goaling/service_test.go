package goaling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-goals-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-goals-api/internal/domain"
	performancemocks "github.com/vfg2006/store-goals-api/internal/usecases/performance/mocks"
	"github.com/vfg2006/store-goals-api/internal/usecases/quota"
	"go.uber.org/mock/gomock"
)

const (
	storeID        = "STORE01"
	collaboratorID = "COL01"
	role           = "vendedor"
)

type serviceMocks struct {
	stores        *mocks.MockStoreRepository
	goals         *mocks.MockGoalRepository
	collaborators *mocks.MockCollaboratorRepository
	tracker       *performancemocks.MockTracker
}

func newTestService(t *testing.T, cacheTTL time.Duration) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		stores:        mocks.NewMockStoreRepository(ctrl),
		goals:         mocks.NewMockGoalRepository(ctrl),
		collaborators: mocks.NewMockCollaboratorRepository(ctrl),
		tracker:       performancemocks.NewMockTracker(ctrl),
	}

	service := NewService(m.stores, m.goals, m.collaborators, m.tracker, role, cacheTTL)
	service.now = func() time.Time { return time.Date(2024, 6, 16, 9, 0, 0, 0, time.UTC) }

	return service, m
}

func testStore(compensateDeficit, bonusAhead bool) *domain.Store {
	return &domain.Store{ID: storeID, Name: "Ótica Centro", CompensateDeficit: compensateDeficit, BonusAhead: bonusAhead}
}

func testGoal(target float64) *domain.MonthlyGoal {
	id := collaboratorID
	return &domain.MonthlyGoal{
		ID:                  "GOAL01",
		StoreID:             storeID,
		CollaboratorID:      &id,
		Month:               "202406",
		Kind:                domain.GoalKindIndividual,
		TargetAmount:        decimal.NewFromFloat(target),
		StretchTargetAmount: decimal.NewFromFloat(target * 1.2),
	}
}

func TestService_GetDailyQuota(t *testing.T) {
	date := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	yesterday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name                string
		date                time.Time
		store               *domain.Store
		setup               func(m serviceMocks)
		expectedMode        string
		expectedAdjusted    string
		expectedRealized    string
		expectedPerformance bool
		expectedErr         error
	}{
		{
			name:  "Loja estática - cota base sem consultar vendas",
			date:  date,
			store: testStore(false, false),
			setup: func(m serviceMocks) {
				m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(testGoal(30000), nil)
				m.tracker.EXPECT().GetRealizedToDate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedMode:        "STATIC",
			expectedAdjusted:    "1000",
			expectedRealized:    "0",
			expectedPerformance: false,
		},
		{
			name:  "Modo defensivo atrás do ritmo - déficit dividido pelos dias restantes",
			date:  date,
			store: testStore(true, false),
			setup: func(m serviceMocks) {
				m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(testGoal(30000), nil)
				m.tracker.EXPECT().GetRealizedToDate(gomock.Any(), collaboratorID, storeID, yesterday).Return(decimal.NewFromInt(12000), nil)
			},
			expectedMode:        "DEFENSIVE",
			expectedAdjusted:    "1200",
			expectedRealized:    "12000",
			expectedPerformance: true,
		},
		{
			name:  "Modo agressivo à frente do ritmo - bônus proporcional",
			date:  date,
			store: testStore(false, true),
			setup: func(m serviceMocks) {
				m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(testGoal(30000), nil)
				m.tracker.EXPECT().GetRealizedToDate(gomock.Any(), collaboratorID, storeID, yesterday).Return(decimal.NewFromInt(18000), nil)
			},
			expectedMode:        "AGGRESSIVE",
			expectedAdjusted:    "1200",
			expectedRealized:    "18000",
			expectedPerformance: true,
		},
		{
			name:  "Modo completo exatamente no ritmo - cota base",
			date:  date,
			store: testStore(true, true),
			setup: func(m serviceMocks) {
				m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(testGoal(30000), nil)
				m.tracker.EXPECT().GetRealizedToDate(gomock.Any(), collaboratorID, storeID, yesterday).Return(decimal.NewFromInt(15000), nil)
			},
			expectedMode:        "FULL",
			expectedAdjusted:    "1000",
			expectedRealized:    "15000",
			expectedPerformance: true,
		},
		{
			name:  "Falha no livro de vendas - volta para a cota estática",
			date:  date,
			store: testStore(true, true),
			setup: func(m serviceMocks) {
				m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(testGoal(30000), nil)
				m.tracker.EXPECT().GetRealizedToDate(gomock.Any(), collaboratorID, storeID, yesterday).Return(decimal.Zero, errors.New("ssotica timeout"))
			},
			expectedMode:        "STATIC",
			expectedAdjusted:    "1000",
			expectedRealized:    "0",
			expectedPerformance: false,
		},
		{
			name:  "Primeiro dia do mês - sem vendas anteriores e sem consulta",
			date:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			store: testStore(true, true),
			setup: func(m serviceMocks) {
				m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(testGoal(30000), nil)
				m.tracker.EXPECT().GetRealizedToDate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedMode:        "FULL",
			expectedAdjusted:    "1000",
			expectedRealized:    "0",
			expectedPerformance: true,
		},
		{
			name:  "Colaborador sem meta individual",
			date:  date,
			store: testStore(false, false),
			setup: func(m serviceMocks) {
				m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(nil, nil)
			},
			expectedErr: quota.ErrMissingGoal,
		},
		{
			name:  "Meta retornada de outro mês é rejeitada",
			date:  date,
			store: testStore(false, false),
			setup: func(m serviceMocks) {
				stale := testGoal(30000)
				stale.Month = "202405"
				m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(stale, nil)
				m.tracker.EXPECT().GetRealizedToDate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: quota.ErrInvalidDate,
		},
		{
			name:  "Erro ao buscar meta individual",
			date:  date,
			store: testStore(false, false),
			setup: func(m serviceMocks) {
				m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(nil, errors.New("db down"))
			},
			expectedErr: quota.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t, 0)
			m.stores.EXPECT().GetByID(gomock.Any(), storeID).Return(tt.store, nil)
			tt.setup(m)

			view, err := service.GetDailyQuota(context.Background(), storeID, collaboratorID, tt.date)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, view)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedMode, view.Mode)
			assert.Equal(t, "1000", view.BaseQuota.String())
			assert.Equal(t, "1200", view.StretchQuota.String())
			assert.Equal(t, tt.expectedAdjusted, view.AdjustedQuota.String())
			assert.Equal(t, tt.expectedRealized, view.RealizedToDate.String())
			assert.Equal(t, tt.expectedPerformance, view.PerformanceAvailable)
			assert.Equal(t, tt.date.Format(time.DateOnly), view.Date)
		})
	}
}

func TestService_GetDailyQuota_StoreNotFound(t *testing.T) {
	service, m := newTestService(t, 0)
	m.stores.EXPECT().GetByID(gomock.Any(), storeID).Return(nil, nil)

	_, err := service.GetDailyQuota(context.Background(), storeID, collaboratorID, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))

	var goalErr *quota.GoalError
	require.ErrorAs(t, err, &goalErr)
	assert.ErrorIs(t, err, quota.ErrStoreNotFound)
	assert.Equal(t, "GOAL_005", goalErr.Code)
}

type fakeInvalidator struct {
	stores []string
}

func (f *fakeInvalidator) InvalidateStore(storeID string) {
	f.stores = append(f.stores, storeID)
}

func TestService_GetDailyQuota_CacheAndInvalidate(t *testing.T) {
	service, m := newTestService(t, 5*time.Minute)
	invalidator := &fakeInvalidator{}
	service.WithInvalidators(invalidator)

	date := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)

	m.stores.EXPECT().GetByID(gomock.Any(), storeID).Return(testStore(false, false), nil).Times(3)
	m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(testGoal(30000), nil)
	m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(testGoal(33000), nil)

	first, err := service.GetDailyQuota(context.Background(), storeID, collaboratorID, date)
	require.NoError(t, err)
	assert.Equal(t, "1000", first.AdjustedQuota.String())

	cached, err := service.GetDailyQuota(context.Background(), storeID, collaboratorID, date)
	require.NoError(t, err)
	assert.Same(t, first, cached)

	// Após a redistribuição a meta mudou e o cache precisa ser descartado
	service.InvalidateStore(storeID)
	assert.Equal(t, []string{storeID}, invalidator.stores)

	refreshed, err := service.GetDailyQuota(context.Background(), storeID, collaboratorID, date)
	require.NoError(t, err)
	assert.Equal(t, "1100", refreshed.AdjustedQuota.String())
}

func TestService_GetStoreDailyQuotas(t *testing.T) {
	service, m := newTestService(t, 0)
	date := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)

	m.stores.EXPECT().GetByID(gomock.Any(), storeID).Return(testStore(false, false), nil)
	m.collaborators.EXPECT().ListActive(gomock.Any(), storeID, role).Return([]*domain.Collaborator{
		{ID: collaboratorID, StoreID: storeID, Name: "Ana", Role: role, Active: true},
		{ID: "COL02", StoreID: storeID, Name: "Bruno", Role: role, Active: true},
	}, nil)
	m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, collaboratorID, "202406").Return(testGoal(30000), nil)
	m.goals.EXPECT().GetIndividualGoal(gomock.Any(), storeID, "COL02", "202406").Return(nil, nil)

	response, err := service.GetStoreDailyQuotas(context.Background(), storeID, date)

	require.NoError(t, err)
	assert.Equal(t, storeID, response.StoreID)
	assert.Equal(t, "2024-06-16", response.Date)
	require.Len(t, response.Quotas, 1)
	assert.Equal(t, collaboratorID, response.Quotas[0].CollaboratorID)
}

func TestService_GetStoreDailyQuotas_RosterError(t *testing.T) {
	service, m := newTestService(t, 0)

	m.stores.EXPECT().GetByID(gomock.Any(), storeID).Return(testStore(false, false), nil)
	m.collaborators.EXPECT().ListActive(gomock.Any(), storeID, role).Return(nil, errors.New("db down"))

	response, err := service.GetStoreDailyQuotas(context.Background(), storeID, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))

	assert.Nil(t, response)
	assert.ErrorIs(t, err, quota.ErrPersistence)
}
