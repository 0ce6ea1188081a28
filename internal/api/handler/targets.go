package handler

import (
	"net/http"

	"github.com/vfg2006/sales-achievement-api/internal/domain"
	"github.com/vfg2006/sales-achievement-api/internal/usecases/achieving"
	"github.com/vfg2006/sales-achievement-api/pkg/apiErrors"
	"github.com/vfg2006/sales-achievement-api/pkg/log"
	"github.com/vfg2006/sales-achievement-api/pkg/utils"
)

// UpsertTarget define as metas mensais de um vendedor
func UpsertTarget(service achieving.Achiever) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.UpsertTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if details := utils.ValidateStruct(request); details != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados da requisição inválidos", details)
			return
		}

		target, err := service.SetTarget(&request)
		if err != nil {
			logger.WithError(err).WithField("salesperson_id", request.SalespersonID).Error("targets: erro ao salvar meta")
			writeServiceError(w, err, "Erro ao salvar meta")
			return
		}

		writeJSON(w, logger, http.StatusOK, target)
	})
}
