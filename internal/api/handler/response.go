package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
	"github.com/vfg2006/sales-achievement-api/internal/usecases/achieving"
	"github.com/vfg2006/sales-achievement-api/pkg/apiErrors"
	"github.com/vfg2006/sales-achievement-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON codifica a resposta com o status informado
func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz erros da camada de serviço para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var achievementErr *achieving.AchievementError
	if errors.As(err, &achievementErr) {
		apiErrors.WriteError(w, achievementErr.Code, achievementErr.Error(), nil)
		return
	}

	if errors.Is(err, domain.ErrInvalidPeriod) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

// periodFromQuery lê month e year da query string
func periodFromQuery(r *http.Request) (domain.Period, error) {
	query := r.URL.Query()
	return domain.ParsePeriod(query.Get("month"), query.Get("year"))
}
