package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-achievement-api/internal/config"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
	"github.com/vfg2006/sales-achievement-api/internal/usecases/achieving"
	"github.com/vfg2006/sales-achievement-api/pkg/apiErrors"
	"github.com/vfg2006/sales-achievement-api/pkg/log"
)

const (
	defaultSalesField   = "sales"
	defaultReturnsField = "returns"
	multipartMemory     = 8 << 20
)

// UploadAchievements recebe as planilhas de vendas e devoluções de um mês e soma as conquistas
func UploadAchievements(service achieving.Achiever, cfg config.Upload) http.Handler {
	salesField := cfg.SalesField
	if salesField == "" {
		salesField = defaultSalesField
	}
	returnsField := cfg.ReturnsField
	if returnsField == "" {
		returnsField = defaultReturnsField
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivos excedem o tamanho máximo permitido", map[string]any{
					"limit_bytes": maxBytesErr.Limit,
				})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formulário multipart inválido", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		period, err := domain.ParsePeriod(r.FormValue("month"), r.FormValue("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Informe mês (01-12) e ano (quatro dígitos) no formulário", nil)
			return
		}

		replace := false
		if raw := r.FormValue("replace"); raw != "" {
			replace, err = strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro replace deve ser true ou false", nil)
				return
			}
		}

		factor := 1
		if raw := r.FormValue("factor"); raw != "" {
			factor, err = strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro factor deve ser 1 ou -1", nil)
				return
			}
		}

		salesHeaders := r.MultipartForm.File[salesField]
		if len(salesHeaders) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Envie ao menos uma planilha de vendas", map[string]any{
				"field": salesField,
			})
			return
		}

		headers := append([]*multipart.FileHeader{}, salesHeaders...)
		returnsHeaders := r.MultipartForm.File[returnsField]
		if len(returnsHeaders) > 1 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie no máximo uma planilha de devoluções", nil)
			return
		}
		headers = append(headers, returnsHeaders...)

		for _, header := range headers {
			if !hasAllowedSuffix(header.Filename, cfg.AllowedSuffixes) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de arquivo não suportado", map[string]any{
					"file":    header.Filename,
					"allowed": cfg.AllowedSuffixes,
				})
				return
			}
		}

		request := &achieving.UploadRequest{
			Period:  period,
			Factor:  factor,
			Replace: replace,
			Sales:   make([]achieving.UploadFile, 0, len(salesHeaders)),
		}

		for _, header := range salesHeaders {
			file, err := header.Open()
			if err != nil {
				logger.WithError(err).WithField("file", header.Filename).Error("uploads: erro ao abrir arquivo enviado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível ler o arquivo enviado", nil)
				return
			}
			defer file.Close()

			request.Sales = append(request.Sales, achieving.UploadFile{Name: header.Filename, Content: file})
		}

		if len(returnsHeaders) == 1 {
			file, err := returnsHeaders[0].Open()
			if err != nil {
				logger.WithError(err).WithField("file", returnsHeaders[0].Filename).Error("uploads: erro ao abrir arquivo de devoluções")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível ler o arquivo de devoluções", nil)
				return
			}
			defer file.Close()

			request.Returns = &achieving.UploadFile{Name: returnsHeaders[0].Filename, Content: file}
		}

		logger.WithFields(log.Fields{
			"period":       period.String(),
			"sales_files":  len(request.Sales),
			"returns_file": request.Returns != nil,
			"replace":      replace,
			"factor":       factor,
		}).Info("uploads: processando envio de planilhas")

		result, err := service.ProcessUpload(r.Context(), request)
		if err != nil {
			logger.WithError(err).WithField("period", period.String()).Error("uploads: erro ao processar envio")
			writeServiceError(w, err, "Erro ao processar planilhas")
			return
		}

		writeJSON(w, logger, http.StatusCreated, result)
	})
}

// ListUploadBatches lista os lotes enviados, opcionalmente filtrando por período
func ListUploadBatches(service achieving.Achiever) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var period *domain.Period
		query := r.URL.Query()
		if query.Get("month") != "" || query.Get("year") != "" {
			p, err := periodFromQuery(r)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Informe mês (01-12) e ano (quatro dígitos) nos parâmetros", nil)
				return
			}
			period = &p
		}

		batches, err := service.ListBatches(period)
		if err != nil {
			logger.WithError(err).Error("uploads: erro ao listar lotes")
			writeServiceError(w, err, "Erro ao listar lotes de upload")
			return
		}

		writeJSON(w, logger, http.StatusOK, batches)
	})
}

func hasAllowedSuffix(filename string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, suffix := range suffixes {
		if ext == strings.ToLower(strings.TrimSpace(suffix)) {
			return true
		}
	}
	return false
}
