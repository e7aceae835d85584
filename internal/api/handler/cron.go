package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-goals-api/internal/scheduler"
	"github.com/vfg2006/store-goals-api/pkg/apiErrors"
	"github.com/vfg2006/store-goals-api/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAbsenceRedistribution = "absence-redistribution"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	AbsenceRedistributionService *scheduler.AbsenceRedistributionService
}

// RunCronJob executa manualmente uma cron job específica. Aceita ?date=yyyy-mm-dd.
func RunCronJob(services CronJobServices, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAbsenceRedistribution:
			if services.AbsenceRedistributionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de redistribuição de ausências não disponível", nil)
				return
			}

			date, err := utils.ParseDateOrToday(r.URL.Query().Get("date"), loc)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			if err := services.AbsenceRedistributionService.TriggerManualSync(date); err != nil {
				if errors.Is(err, scheduler.ErrRunInProgress) {
					apiErrors.WriteError(w, apiErrors.ErrRunInProgress, "Redistribuição de ausências já em execução", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
				return
			}

			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": "Cron job iniciada com sucesso",
				"type":    cronType,
				"date":    date.Format(time.DateOnly),
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeAbsenceRedistribution, nil)
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.AbsenceRedistributionService != nil {
			status[CronJobTypeAbsenceRedistribution] = services.AbsenceRedistributionService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
