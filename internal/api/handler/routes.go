package handler

import (
	"net/http"

	"github.com/vfg2006/serp-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/serp-tracker-api/internal/usecases/summarizing"
	"github.com/vfg2006/serp-tracker-api/internal/usecases/tracking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Keywords retorna as rotas de análise sobre snapshots armazenados
func Keywords(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/keywords/:keyword/history",
			Method:  http.MethodGet,
			Handler: GetKeywordHistory(service),
		},
		{
			Path:    "/v1/keywords/:keyword/diff",
			Method:  http.MethodGet,
			Handler: GetKeywordDiff(service),
		},
		{
			Path:    "/v1/keywords/:keyword/features",
			Method:  http.MethodGet,
			Handler: GetKeywordFeatures(service),
		},
	}
}

// Serp retorna as rotas de análise sobre snapshots enviados no corpo
func Serp(service tracking.Tracker) []router.Route {
	requireJSON := []func(http.Handler) http.Handler{router.RequireJSON()}

	return []router.Route{
		{
			Path:        "/v1/serp/history",
			Method:      http.MethodPost,
			Handler:     BuildHistory(service),
			Middlewares: requireJSON,
		},
		{
			Path:        "/v1/serp/diff",
			Method:      http.MethodPost,
			Handler:     DiffSnapshots(service),
			Middlewares: requireJSON,
		},
		{
			Path:        "/v1/serp/features",
			Method:      http.MethodPost,
			Handler:     CountFeatures(service),
			Middlewares: requireJSON,
		},
	}
}

func Stats(service summarizing.StatsSummarizer) []router.Route {
	requireJSON := []func(http.Handler) http.Handler{router.RequireJSON()}

	return []router.Route{
		{
			Path:        "/v1/stats/keyword-gap",
			Method:      http.MethodPost,
			Handler:     KeywordGapStats(service),
			Middlewares: requireJSON,
		},
		{
			Path:        "/v1/stats/domain-intersection",
			Method:      http.MethodPost,
			Handler:     DomainIntersectionStats(service),
			Middlewares: requireJSON,
		},
		{
			Path:        "/v1/stats/domain-whois",
			Method:      http.MethodPost,
			Handler:     DomainWhoisStats(service),
			Middlewares: requireJSON,
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
