package handler

import (
	"net/http"

	"github.com/vfg2006/sales-achievement-api/internal/api/handler/router"
	"github.com/vfg2006/sales-achievement-api/internal/config"
	"github.com/vfg2006/sales-achievement-api/internal/usecases/achieving"
	"github.com/vfg2006/sales-achievement-api/pkg/middleware"
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

func Uploads(service achieving.Achiever, cfg config.Upload) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/uploads",
			Method:      http.MethodPost,
			Handler:     UploadAchievements(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.MaxBodySize(cfg.MaxSizeMB << 20)},
		},
		{
			Path:    "/v1/uploads",
			Method:  http.MethodGet,
			Handler: ListUploadBatches(service),
		},
	}
}

func Achievements(service achieving.Achiever) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/achievements/report",
			Method:  http.MethodGet,
			Handler: GetAchievementReport(service),
		},
		{
			Path:    "/v1/achievements/periods",
			Method:  http.MethodGet,
			Handler: GetAvailableAchievementPeriods(service),
		},
		{
			Path:    "/v1/achievements",
			Method:  http.MethodDelete,
			Handler: ClearAchievementPeriod(service),
		},
	}
}

func Salespeople(service achieving.Achiever) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/salespeople",
			Method:  http.MethodGet,
			Handler: ListSalespeople(service),
		},
		{
			Path:    "/v1/salespeople",
			Method:  http.MethodPut,
			Handler: UpsertSalesperson(service),
		},
	}
}

func Targets(service achieving.Achiever) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/targets",
			Method:  http.MethodPut,
			Handler: UpsertTarget(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
