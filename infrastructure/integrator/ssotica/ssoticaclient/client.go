package ssoticaclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/store-goals-api/internal/config"
)

type Client interface {
	GetSales(ctx context.Context, params SalesConsultationParams, ssoticaConfig *config.SSOtica) (SalesConsultationResponse, error)
}

type SSOticaClient struct {
	httpClient *http.Client
}

// NewClient cria uma nova instância do cliente da API do SSOtica.
func NewClient() Client {
	return &SSOticaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
