package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/store-goals-api/internal/usecases/quota"
	"github.com/vfg2006/store-goals-api/pkg/apiErrors"
	"github.com/vfg2006/store-goals-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeGoalError traduz erros das metas para o formato padronizado da API
func writeGoalError(w http.ResponseWriter, err error, details any) {
	var goalErr *quota.GoalError
	if errors.As(err, &goalErr) && goalErr.Code != "" {
		apiErrors.WriteError(w, goalErr.Code, goalErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, quota.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada", details)
	case errors.Is(err, quota.ErrMissingGoal):
		apiErrors.WriteError(w, apiErrors.ErrGoalNotFound, "Meta não encontrada", details)
	case errors.Is(err, quota.ErrInvalidPeriod), errors.Is(err, quota.ErrInvalidMonth), errors.Is(err, quota.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), details)
	case errors.Is(err, quota.ErrNoActiveCollaborators):
		apiErrors.WriteError(w, apiErrors.ErrNoActiveCollaborators, "Nenhum colaborador presente", details)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar metas", details)
	}
}
