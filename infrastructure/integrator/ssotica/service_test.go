package ssotica

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ssoticadomain "github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica/domain"
	"github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica/ssoticaclient"
	"github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica/ssoticaclient/mocks"
	"github.com/vfg2006/store-goals-api/internal/config"
	"go.uber.org/mock/gomock"
)

func TestSSOticaService_GetSalesByStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		SSOticaMultiClient: map[string]config.SSOtica{
			"loja_centro": {URL: "https://app.ssotica.com.br/api/v1", AccessToken: "token-centro"},
		},
	}

	startDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Usa o token do secret da loja", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().
			GetSales(gomock.Any(), ssoticaclient.SalesConsultationParams{
				StartDate: "2024-06-01",
				EndDate:   "2024-06-15",
				CNPJ:      "12345678000199",
			}, &config.SSOtica{URL: "https://app.ssotica.com.br/api/v1", AccessToken: "token-centro"}).
			Return(ssoticaclient.SalesConsultationResponse{{ID: 1}, {ID: 2}}, nil)

		service := New(cfg, client)
		orders, err := service.GetSalesByStore(context.Background(), ssoticadomain.GetSalesParams{
			CNPJ:       "12345678000199",
			SecretName: "loja_centro",
		}, startDate, endDate)

		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("Secret não configurado", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().GetSales(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		service := New(cfg, client)
		orders, err := service.GetSalesByStore(context.Background(), ssoticadomain.GetSalesParams{
			CNPJ:       "12345678000199",
			SecretName: "loja_inexistente",
		}, startDate, endDate)

		assert.Error(t, err)
		assert.Nil(t, orders)
	})
}
