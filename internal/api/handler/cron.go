package handler

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/serp-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/serp-tracker-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshots = "snapshots"
	CronJobTypeAll       = "all"
)

// SyncJob é um agendador que pode ser disparado manualmente
type SyncJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron, indexados pelo tipo usado na URL
type CronJobServices map[string]SyncJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for jobType := range s {
		types = append(types, jobType)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			for _, jobType := range services.types() {
				if job := services[jobType]; job != nil {
					job.TriggerManualSync()
				}
			}
		} else {
			job, exists := services[cronType]
			if !exists || job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
					"accepted": append(services.types(), CronJobTypeAll),
				})
				return
			}
			job.TriggerManualSync()
		}

		logger.WithField("sync_type", cronType).Info("cron: manual sync triggered")

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := make(map[string]any, len(services))
		for jobType, job := range services {
			if job != nil {
				status[jobType] = job.GetStatus()
			}
		}

		writeJSON(w, logger, http.StatusOK, status)
	})
}
