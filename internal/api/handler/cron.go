package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-achievement-api/pkg/apiErrors"
	"github.com/vfg2006/sales-achievement-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRetention = "retention"
)

// CronJob é uma rotina agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	RetentionService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRetention:
			if services.RetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de dados antigos não disponível", nil)
				return
			}
			if !services.RetentionService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrSchedulerBusy, "Limpeza de dados antigos já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: retention", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

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

		status := map[string]any{}
		if services.RetentionService != nil {
			status[CronJobTypeRetention] = services.RetentionService.GetStatus()
		}

		writeJSON(w, logger, http.StatusOK, status)
	})
}
