package handler

import (
	"net/http"

	"github.com/vfg2006/sales-achievement-api/internal/domain"
	"github.com/vfg2006/sales-achievement-api/internal/usecases/achieving"
	"github.com/vfg2006/sales-achievement-api/pkg/apiErrors"
	"github.com/vfg2006/sales-achievement-api/pkg/log"
	"github.com/vfg2006/sales-achievement-api/pkg/utils"
)

func ListSalespeople(service achieving.Achiever) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		salespeople, err := service.ListSalespeople()
		if err != nil {
			logger.WithError(err).Error("salespeople: erro ao listar vendedores")
			writeServiceError(w, err, "Erro ao listar vendedores")
			return
		}

		writeJSON(w, logger, http.StatusOK, salespeople)
	})
}

// UpsertSalesperson cria ou atualiza um vendedor pelo nome canônico
func UpsertSalesperson(service achieving.Achiever) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.UpsertSalespersonRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if details := utils.ValidateStruct(request); details != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados da requisição inválidos", details)
			return
		}

		salesperson, err := service.UpsertSalesperson(&request)
		if err != nil {
			logger.WithError(err).WithField("name", request.Name).Error("salespeople: erro ao salvar vendedor")
			writeServiceError(w, err, "Erro ao salvar vendedor")
			return
		}

		logger.WithFields(log.Fields{
			"salesperson_id": salesperson.ID,
			"name":           salesperson.Name,
		}).Info("salespeople: vendedor salvo com sucesso")

		writeJSON(w, logger, http.StatusOK, salesperson)
	})
}
