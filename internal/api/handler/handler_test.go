package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-achievement-api/internal/api/handler/router"
	"github.com/vfg2006/sales-achievement-api/internal/config"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
	"github.com/vfg2006/sales-achievement-api/internal/usecases/achieving"
	"github.com/vfg2006/sales-achievement-api/internal/usecases/achieving/mocks"
	"github.com/vfg2006/sales-achievement-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var october = domain.Period{Year: 2025, Month: 10}

type fakeCronJob struct {
	busy      bool
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() bool {
	if f.busy {
		return false
	}
	f.triggered++
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.busy}
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func uploadConfig() config.Upload {
	return config.Upload{
		MaxSizeMB:       1,
		SalesField:      "sales",
		ReturnsField:    "returns",
		AllowedSuffixes: []string{".xlsx", ".csv"},
	}
}

func newTestRouter(service achieving.Achiever, cron CronJob, db Pinger) http.Handler {
	return router.New(
		router.WithRoutes(Healthcheck(db)...),
		router.WithRoutes(Uploads(service, uploadConfig())...),
		router.WithRoutes(Achievements(service)...),
		router.WithRoutes(Salespeople(service)...),
		router.WithRoutes(Targets(service)...),
		router.WithRoutes(CronJobs(CronJobServices{RetentionService: cron})...),
	)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

type multipartFile struct {
	field   string
	name    string
	content string
}

func multipartRequest(t *testing.T, fields map[string]string, files ...multipartFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestGetAchievementReport(t *testing.T) {
	t.Run("Retorna o relatório do período", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAchiever(ctrl)

		service.EXPECT().GetMonthlyReport(october).Return([]*domain.AchievementReport{
			{SalespersonID: "SP1", SalespersonName: "ANIL KUMAR", Period: "10-2025", TotalPercent: 50},
		}, nil)

		rec := httptest.NewRecorder()
		newTestRouter(service, nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/achievements/report?month=10&year=2025", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var report []*domain.AchievementReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		require.Len(t, report, 1)
		assert.Equal(t, "SP1", report[0].SalespersonID)
		assert.Equal(t, 50.0, report[0].TotalPercent)
	})

	t.Run("Período inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAchiever(ctrl)

		rec := httptest.NewRecorder()
		newTestRouter(service, nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/achievements/report?month=13&year=2025", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("Erro do serviço usa o código do AchievementError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAchiever(ctrl)

		service.EXPECT().GetMonthlyReport(october).Return(nil,
			achieving.NewAchievementError(achieving.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "timeout"))

		rec := httptest.NewRecorder()
		newTestRouter(service, nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/achievements/report?month=10&year=2025", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)
	})
}

func TestAvailablePeriodsAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAchiever(ctrl)
	rt := newTestRouter(service, nil, nil)

	service.EXPECT().GetAvailablePeriods().Return(&domain.AvailablePeriods{
		Periods: []string{"09-2025", "10-2025"},
	}, nil)
	service.EXPECT().ClearPeriod(gomock.Any(), october).Return(int64(3), nil)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/achievements/periods", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "10-2025")

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/achievements?month=10&year=2025", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["deleted"])
	assert.Equal(t, "10-2025", body["period"])
}

func TestUploadAchievements(t *testing.T) {
	t.Run("Envia vendas e devoluções ao serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAchiever(ctrl)

		service.EXPECT().ProcessUpload(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, request *achieving.UploadRequest) (*achieving.UploadResult, error) {
				assert.Equal(t, october, request.Period)
				assert.True(t, request.Replace)
				assert.Equal(t, -1, request.Factor)
				require.Len(t, request.Sales, 2)
				assert.Equal(t, "vendas-1.xlsx", request.Sales[0].Name)

				content, err := io.ReadAll(request.Sales[1].Content)
				require.NoError(t, err)
				assert.Equal(t, "segundo", string(content))

				require.NotNil(t, request.Returns)
				assert.Equal(t, "devolucoes.csv", request.Returns.Name)

				return &achieving.UploadResult{
					Batch:   &domain.UploadBatch{ID: "abc123", Year: 2025, Month: 10},
					Summary: &achieving.Summary{Period: "10-2025", Own: decimal.NewFromInt(10)},
				}, nil
			})

		req := multipartRequest(t,
			map[string]string{"month": "10", "year": "2025", "replace": "true", "factor": "-1"},
			multipartFile{field: "sales", name: "vendas-1.xlsx", content: "primeiro"},
			multipartFile{field: "sales", name: "vendas-2.xlsx", content: "segundo"},
			multipartFile{field: "returns", name: "devolucoes.csv", content: "GI/1"},
		)

		rec := httptest.NewRecorder()
		newTestRouter(service, nil, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "abc123")
	})

	tests := []struct {
		name     string
		fields   map[string]string
		files    []multipartFile
		status   int
		expected string
	}{
		{
			name:     "Sem planilha de vendas",
			fields:   map[string]string{"month": "10", "year": "2025"},
			status:   http.StatusBadRequest,
			expected: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Extensão não permitida",
			fields:   map[string]string{"month": "10", "year": "2025"},
			files:    []multipartFile{{field: "sales", name: "vendas.pdf", content: "x"}},
			status:   http.StatusBadRequest,
			expected: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "Ano com dois dígitos",
			fields:   map[string]string{"month": "10", "year": "25"},
			files:    []multipartFile{{field: "sales", name: "vendas.xlsx", content: "x"}},
			status:   http.StatusBadRequest,
			expected: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "Replace inválido",
			fields:   map[string]string{"month": "10", "year": "2025", "replace": "talvez"},
			files:    []multipartFile{{field: "sales", name: "vendas.xlsx", content: "x"}},
			status:   http.StatusBadRequest,
			expected: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "Arquivo acima do limite",
			fields:   map[string]string{"month": "10", "year": "2025"},
			files:    []multipartFile{{field: "sales", name: "vendas.xlsx", content: strings.Repeat("x", 2<<20)}},
			status:   http.StatusRequestEntityTooLarge,
			expected: apiErrors.ErrPayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAchiever(ctrl)

			rec := httptest.NewRecorder()
			newTestRouter(service, nil, nil).ServeHTTP(rec, multipartRequest(t, tt.fields, tt.files...))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.expected, decodeError(t, rec).Code)
		})
	}
}

func TestListUploadBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAchiever(ctrl)
	rt := newTestRouter(service, nil, nil)

	service.EXPECT().ListBatches(gomock.Nil()).Return([]*domain.UploadBatch{{ID: "a"}}, nil)
	service.EXPECT().ListBatches(&october).Return([]*domain.UploadBatch{}, nil)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/uploads", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/uploads?month=10&year=2025", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSalespeopleAndTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAchiever(ctrl)
	rt := newTestRouter(service, nil, nil)

	brand := "VIDEUM"
	service.EXPECT().UpsertSalesperson(&domain.UpsertSalespersonRequest{Name: "Anil Kumar", Brand: &brand, Section: "TV"}).
		Return(&domain.Salesperson{ID: "SP1", Name: "ANIL KUMAR", Brand: &brand, Section: "TV"}, nil)
	service.EXPECT().ListSalespeople().Return([]*domain.Salesperson{{ID: "SP1", Name: "ANIL KUMAR"}}, nil)
	service.EXPECT().SetTarget(gomock.Any()).Return(nil,
		achieving.NewAchievementError(achieving.ErrSalespersonNotFound, apiErrors.ErrNotFound, "SP9"))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/salespeople",
		strings.NewReader(`{"name":"Anil Kumar","brand":"VIDEUM","section":"TV"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ANIL KUMAR")

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/salespeople", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/targets",
		strings.NewReader(`{"salesperson_id":"SP9","month":10,"year":2025,"own_target":"100","other_target":"50"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/targets",
		strings.NewReader(`{"salesperson_id":"SP1","month":13,"year":2025}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	assert.Equal(t, map[string]any{"month": "max"}, apiErr.Details)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/salespeople", strings.NewReader(`{"section":"TV"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/targets", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestCronJobs(t *testing.T) {
	t.Run("Dispara a limpeza", func(t *testing.T) {
		cron := &fakeCronJob{}
		rec := httptest.NewRecorder()
		newTestRouter(nil, cron, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/retention/run", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, cron.triggered)
	})

	t.Run("Limpeza em andamento", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestRouter(nil, &fakeCronJob{busy: true}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/retention/run", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrSchedulerBusy, decodeError(t, rec).Code)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestRouter(nil, &fakeCronJob{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/meta/run", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestRouter(nil, &fakeCronJob{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"retention":{"sync_running":false}}`, rec.Body.String())
	})
}

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(nil, nil, fakePinger{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	newTestRouter(nil, nil, fakePinger{err: errors.New("down")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
