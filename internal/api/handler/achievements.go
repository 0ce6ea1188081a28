package handler

import (
	"net/http"

	"github.com/vfg2006/sales-achievement-api/internal/usecases/achieving"
	"github.com/vfg2006/sales-achievement-api/pkg/apiErrors"
	"github.com/vfg2006/sales-achievement-api/pkg/log"
)

// GetAchievementReport retorna o relatório de metas e conquistas de um período
func GetAchievementReport(service achieving.Achiever) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := periodFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Informe mês (01-12) e ano (quatro dígitos) nos parâmetros", nil)
			return
		}

		logger.WithField("period", period.String()).Info("achievements-report: buscando relatório do período")

		report, err := service.GetMonthlyReport(period)
		if err != nil {
			logger.WithError(err).WithField("period", period.String()).Error("achievements-report: erro ao gerar relatório")
			writeServiceError(w, err, "Erro ao gerar relatório de conquistas")
			return
		}

		logger.WithFields(log.Fields{
			"period":               period.String(),
			"salespeople_returned": len(report),
		}).Info("achievements-report: relatório gerado com sucesso")

		writeJSON(w, logger, http.StatusOK, report)
	})
}

// GetAvailableAchievementPeriods retorna os períodos com conquistas registradas
func GetAvailableAchievementPeriods(service achieving.Achiever) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("achievements-periods: buscando períodos disponíveis")

		periods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("achievements-periods: erro ao buscar períodos disponíveis")
			writeServiceError(w, err, "Erro ao buscar períodos disponíveis")
			return
		}

		writeJSON(w, logger, http.StatusOK, periods)
	})
}

// ClearAchievementPeriod apaga os acumulados e os lotes de um período
func ClearAchievementPeriod(service achieving.Achiever) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := periodFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Informe mês (01-12) e ano (quatro dígitos) nos parâmetros", nil)
			return
		}

		deleted, err := service.ClearPeriod(r.Context(), period)
		if err != nil {
			logger.WithError(err).WithField("period", period.String()).Error("achievements-clear: erro ao limpar período")
			writeServiceError(w, err, "Erro ao limpar período")
			return
		}

		logger.WithFields(log.Fields{
			"period":  period.String(),
			"deleted": deleted,
		}).Warn("achievements-clear: período apagado")

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"period":  period.String(),
			"deleted": deleted,
		})
	})
}
