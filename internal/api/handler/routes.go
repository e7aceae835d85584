package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/store-goals-api/internal/api/handler/router"
	"github.com/vfg2006/store-goals-api/internal/usecases/goaling"
	"github.com/vfg2006/store-goals-api/internal/usecases/redistributing"
	"github.com/vfg2006/store-goals-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Goals(service goaling.GoalService, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:store_id/quotas",
			Method:      http.MethodGet,
			Handler:     GetStoreDailyQuotas(service, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(), middleware.StoreAccess()},
		},
		{
			Path:        "/v1/stores/:store_id/collaborators/:collaborator_id/quota",
			Method:      http.MethodGet,
			Handler:     GetCollaboratorDailyQuota(service, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(), middleware.StoreAccess()},
		},
	}
}

func Redistributions(redistributor redistributing.Redistributor, goalService goaling.GoalService, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:store_id/redistributions",
			Method:      http.MethodPost,
			Handler:     Redistribute(redistributor, goalService, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
