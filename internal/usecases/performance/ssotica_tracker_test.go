package performance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ssoticadomain "github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica/domain"
	ssoticamocks "github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica/mocks"
	"github.com/vfg2006/store-goals-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-goals-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func integratedStore() *domain.Store {
	return &domain.Store{ID: "STORE01", Name: "Ótica Centro", CNPJ: stringPtr("12345678000199"), SecretName: stringPtr("loja_centro")}
}

func linkedCollaborator(id string, employeeID int) *domain.Collaborator {
	return &domain.Collaborator{ID: id, StoreID: "STORE01", Name: "Colaborador " + id, Active: true, ExternalEmployeeID: intPtr(employeeID)}
}

func TestSSOticaTracker_GetRealizedToDate(t *testing.T) {
	uptoDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	orders := []ssoticadomain.Order{
		{ID: 1, Status: "finalizada", NetAmount: decimal.NewFromInt(1500), Employee: ssoticadomain.Employee{ID: 10}},
		{ID: 2, Status: "finalizada", NetAmount: decimal.NewFromInt(700), Employee: ssoticadomain.Employee{ID: 10}},
		{ID: 3, Status: "cancelada", NetAmount: decimal.NewFromInt(400), Employee: ssoticadomain.Employee{ID: 10}},
		{ID: 4, Status: "finalizada", NetAmount: decimal.NewFromInt(900), Employee: ssoticadomain.Employee{ID: 11}},
	}

	tests := []struct {
		name          string
		setup         func(stores *mocks.MockStoreRepository, collaborators *mocks.MockCollaboratorRepository, ssotica *ssoticamocks.MockSSOticaIntegrator)
		expected      string
		expectedError error
	}{
		{
			name: "Soma as vendas do funcionário vinculado desde o início do mês",
			setup: func(stores *mocks.MockStoreRepository, collaborators *mocks.MockCollaboratorRepository, ssotica *ssoticamocks.MockSSOticaIntegrator) {
				stores.EXPECT().GetByID(gomock.Any(), "STORE01").Return(integratedStore(), nil)
				collaborators.EXPECT().GetByID(gomock.Any(), "STORE01", "COL01").Return(linkedCollaborator("COL01", 10), nil)
				ssotica.EXPECT().
					GetSalesByStore(gomock.Any(), ssoticadomain.GetSalesParams{CNPJ: "12345678000199", SecretName: "loja_centro"}, monthStart, uptoDate).
					Return(orders, nil)
			},
			expected: "2200",
		},
		{
			name: "Loja sem integração de vendas",
			setup: func(stores *mocks.MockStoreRepository, collaborators *mocks.MockCollaboratorRepository, ssotica *ssoticamocks.MockSSOticaIntegrator) {
				stores.EXPECT().GetByID(gomock.Any(), "STORE01").Return(&domain.Store{ID: "STORE01"}, nil)
			},
			expectedError: ErrSalesIntegrationAbsent,
		},
		{
			name: "Loja não encontrada",
			setup: func(stores *mocks.MockStoreRepository, collaborators *mocks.MockCollaboratorRepository, ssotica *ssoticamocks.MockSSOticaIntegrator) {
				stores.EXPECT().GetByID(gomock.Any(), "STORE01").Return(nil, nil)
			},
			expectedError: ErrStoreNotFound,
		},
		{
			name: "Colaborador sem vínculo com o ERP",
			setup: func(stores *mocks.MockStoreRepository, collaborators *mocks.MockCollaboratorRepository, ssotica *ssoticamocks.MockSSOticaIntegrator) {
				stores.EXPECT().GetByID(gomock.Any(), "STORE01").Return(integratedStore(), nil)
				collaborators.EXPECT().GetByID(gomock.Any(), "STORE01", "COL01").Return(&domain.Collaborator{ID: "COL01"}, nil)
			},
			expectedError: ErrEmployeeNotLinked,
		},
		{
			name: "Colaborador não encontrado",
			setup: func(stores *mocks.MockStoreRepository, collaborators *mocks.MockCollaboratorRepository, ssotica *ssoticamocks.MockSSOticaIntegrator) {
				stores.EXPECT().GetByID(gomock.Any(), "STORE01").Return(integratedStore(), nil)
				collaborators.EXPECT().GetByID(gomock.Any(), "STORE01", "COL01").Return(nil, nil)
			},
			expectedError: ErrCollaboratorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			stores := mocks.NewMockStoreRepository(ctrl)
			collaborators := mocks.NewMockCollaboratorRepository(ctrl)
			ssotica := ssoticamocks.NewMockSSOticaIntegrator(ctrl)
			tt.setup(stores, collaborators, ssotica)

			tracker := NewSSOticaTracker(stores, collaborators, ssotica, time.Minute)
			realized, err := tracker.GetRealizedToDate(context.Background(), "COL01", "STORE01", uptoDate)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, realized.String())
		})
	}
}

func TestSSOticaTracker_ReusesOrdersForRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stores := mocks.NewMockStoreRepository(ctrl)
	collaborators := mocks.NewMockCollaboratorRepository(ctrl)
	ssotica := ssoticamocks.NewMockSSOticaIntegrator(ctrl)

	uptoDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	orders := []ssoticadomain.Order{
		{ID: 1, NetAmount: decimal.NewFromInt(500), Employee: ssoticadomain.Employee{ID: 10}},
		{ID: 2, NetAmount: decimal.NewFromInt(300), Employee: ssoticadomain.Employee{ID: 11}},
	}

	stores.EXPECT().GetByID(gomock.Any(), "STORE01").Return(integratedStore(), nil).Times(3)
	collaborators.EXPECT().GetByID(gomock.Any(), "STORE01", "COL01").Return(linkedCollaborator("COL01", 10), nil).Times(2)
	collaborators.EXPECT().GetByID(gomock.Any(), "STORE01", "COL02").Return(linkedCollaborator("COL02", 11), nil)

	// Uma consulta para o roster, outra depois da invalidação
	ssotica.EXPECT().GetSalesByStore(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(orders, nil).Times(1)
	ssotica.EXPECT().GetSalesByStore(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("ssotica indisponível")).Times(1)

	tracker := NewSSOticaTracker(stores, collaborators, ssotica, time.Hour)

	first, err := tracker.GetRealizedToDate(context.Background(), "COL01", "STORE01", uptoDate)
	require.NoError(t, err)
	assert.Equal(t, "500", first.String())

	second, err := tracker.GetRealizedToDate(context.Background(), "COL02", "STORE01", uptoDate)
	require.NoError(t, err)
	assert.Equal(t, "300", second.String())

	tracker.InvalidateStore("STORE01")

	_, err = tracker.GetRealizedToDate(context.Background(), "COL01", "STORE01", uptoDate)
	assert.Error(t, err)
}
