package ssotica

import (
	"context"
	"fmt"
	"time"

	ssoticadomain "github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica/domain"
	"github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica/ssoticaclient"
	"github.com/vfg2006/store-goals-api/internal/config"
)

type SSOticaIntegrator interface {
	GetSalesByStore(ctx context.Context, params ssoticadomain.GetSalesParams, startDate, endDate time.Time) ([]ssoticadomain.Order, error)
}

type SSOticaService struct {
	cfg    *config.Config
	Client ssoticaclient.Client
}

func New(cfg *config.Config, client ssoticaclient.Client) SSOticaIntegrator {
	return &SSOticaService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SSOticaService) GetSalesByStore(ctx context.Context, params ssoticadomain.GetSalesParams, startDate, endDate time.Time) ([]ssoticadomain.Order, error) {
	ssoticaConfig, exists := s.cfg.SSOticaMultiClient[params.SecretName]
	if !exists {
		return nil, fmt.Errorf("ssotica: secret %q não configurado", params.SecretName)
	}

	paramsClient := ssoticaclient.SalesConsultationParams{
		StartDate: startDate.Format(time.DateOnly),
		EndDate:   endDate.Format(time.DateOnly),
		CNPJ:      params.CNPJ,
	}

	resp, err := s.Client.GetSales(ctx, paramsClient, &ssoticaConfig)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
