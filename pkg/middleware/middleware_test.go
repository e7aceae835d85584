package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-goals-api/internal/config"
	"github.com/vfg2006/store-goals-api/internal/domain"
	"github.com/vfg2006/store-goals-api/internal/usecases/authenticating"
)

const testSecret = "segredo-de-teste"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func tokenFor(t *testing.T, claims *domain.Claims) string {
	token, err := authenticating.GenerateToken(testSecret, claims, time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}

// newTestRouter monta as mesmas camadas do servidor para uma rota com :store_id
func newTestRouter() http.Handler {
	authService := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: testSecret}})

	router := httprouter.New()
	router.Handler(http.MethodGet, "/v1/stores/:store_id/quotas", AllRoles()(StoreAccess()(okHandler())))
	router.Handler(http.MethodPost, "/v1/stores/:store_id/redistributions", AdminOrSupervisor()(okHandler()))
	router.Handler(http.MethodGet, "/healthcheck", okHandler())

	return AuthMiddleware(authService)(router)
}

func TestAuthorizationChain(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		authorization  func(t *testing.T) string
		expectedStatus int
	}{
		{
			name:           "Healthcheck não exige token",
			method:         http.MethodGet,
			path:           "/healthcheck",
			authorization:  func(t *testing.T) string { return "" },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem cabeçalho Authorization",
			method:         http.MethodGet,
			path:           "/v1/stores/STORE01/quotas",
			authorization:  func(t *testing.T) string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token sem prefixo Bearer",
			method:         http.MethodGet,
			path:           "/v1/stores/STORE01/quotas",
			authorization:  func(t *testing.T) string { return "abc" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Gerente consulta loja vinculada",
			method: http.MethodGet,
			path:   "/v1/stores/STORE01/quotas",
			authorization: func(t *testing.T) string {
				return tokenFor(t, &domain.Claims{UserID: 3, UserActive: true, UserRoleID: RoleManager, UserStores: []string{"STORE01"}})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Gerente consulta loja de outro usuário",
			method: http.MethodGet,
			path:   "/v1/stores/STORE02/quotas",
			authorization: func(t *testing.T) string {
				return tokenFor(t, &domain.Claims{UserID: 3, UserActive: true, UserRoleID: RoleManager, UserStores: []string{"STORE01"}})
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Supervisor consulta qualquer loja",
			method: http.MethodGet,
			path:   "/v1/stores/STORE02/quotas",
			authorization: func(t *testing.T) string {
				return tokenFor(t, &domain.Claims{UserID: 2, UserActive: true, UserRoleID: RoleSupervisor})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Gerente não pode redistribuir",
			method: http.MethodPost,
			path:   "/v1/stores/STORE01/redistributions",
			authorization: func(t *testing.T) string {
				return tokenFor(t, &domain.Claims{UserID: 3, UserActive: true, UserRoleID: RoleManager, UserStores: []string{"STORE01"}})
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Administrador redistribui",
			method: http.MethodPost,
			path:   "/v1/stores/STORE01/redistributions",
			authorization: func(t *testing.T) string {
				return tokenFor(t, &domain.Claims{UserID: 1, UserActive: true, UserRoleID: RoleAdmin})
			},
			expectedStatus: http.StatusOK,
		},
	}

	handler := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if auth := tt.authorization(t); auth != "" {
				req.Header.Set("Authorization", auth)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000/", " https://metas.exemplo.com.br"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req.Header.Set("Origin", "https://metas.exemplo.com.br")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "https://metas.exemplo.com.br", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Origem não permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req.Header.Set("Origin", "https://outro.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/stores/STORE01/quotas", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	handler := LogPanicMiddleware()(LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})))

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
