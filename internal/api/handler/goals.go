package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/store-goals-api/internal/usecases/goaling"
	"github.com/vfg2006/store-goals-api/pkg/apiErrors"
	"github.com/vfg2006/store-goals-api/pkg/log"
	"github.com/vfg2006/store-goals-api/pkg/utils"
)

// GetStoreDailyQuotas retorna a cota do dia de todos os colaboradores ativos da loja
func GetStoreDailyQuotas(service goaling.GoalService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		logger := log.ForStore(r.Context(), storeID)

		date, err := utils.ParseDateOrToday(r.URL.Query().Get("date"), loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		response, err := service.GetStoreDailyQuotas(r.Context(), storeID, date)
		if err != nil {
			logger.WithError(err).Error("Erro ao calcular cotas da loja")
			writeGoalError(w, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

// GetCollaboratorDailyQuota retorna a cota do dia de um colaborador
func GetCollaboratorDailyQuota(service goaling.GoalService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		storeID := params.ByName("store_id")
		collaboratorID := params.ByName("collaborator_id")

		date, err := utils.ParseDateOrToday(r.URL.Query().Get("date"), loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		view, err := service.GetDailyQuota(r.Context(), storeID, collaboratorID, date)
		if err != nil {
			log.ForStore(r.Context(), storeID).WithError(err).WithField("collaborator_id", collaboratorID).Warn("Erro ao calcular cota do colaborador")
			writeGoalError(w, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, view)
	})
}
