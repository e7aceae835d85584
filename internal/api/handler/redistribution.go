package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-goals-api/internal/domain"
	"github.com/vfg2006/store-goals-api/internal/usecases/goaling"
	"github.com/vfg2006/store-goals-api/internal/usecases/redistributing"
	"github.com/vfg2006/store-goals-api/pkg/apiErrors"
	"github.com/vfg2006/store-goals-api/pkg/log"
	"github.com/vfg2006/store-goals-api/pkg/utils"
)

// Redistribute transfere a cota dos ausentes na data para os colaboradores presentes.
// Cada chamada aplica um novo incremento nas metas mensais.
func Redistribute(redistributor redistributing.Redistributor, goalService goaling.GoalService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		logger := log.ForStore(r.Context(), storeID)

		request, err := decodeRedistributionRequest(r)
		if err != nil {
			logger.WithError(err).Warn("Requisição de redistribuição inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		absenceDate, err := utils.ParseDateOrToday(request.Date, loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithField("absence_date", absenceDate.Format(time.DateOnly)).Info("INIT - Redistribute")

		result, err := redistributor.Redistribute(r.Context(), storeID, absenceDate)
		if result != nil && result.CollaboratorsUpdated > 0 {
			goalService.InvalidateStore(storeID)
		}
		if err != nil {
			logger.WithError(err).Warn("Redistribuição não aplicada")
			writeGoalError(w, err, result)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func decodeRedistributionRequest(r *http.Request) (*domain.RedistributionRequest, error) {
	request := &domain.RedistributionRequest{}
	if r.Body == nil {
		return request, nil
	}

	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "corpo da requisição inválido")
	}

	return request, nil
}
