package achieving

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-achievement-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
	"github.com/vfg2006/sales-achievement-api/internal/reconciliation"
	"github.com/vfg2006/sales-achievement-api/pkg/apiErrors"
	"github.com/vfg2006/sales-achievement-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

// stubReader devolve linhas fixas por nome de arquivo
type stubReader map[string][][]string

func (s stubReader) ReadFirstSheet(name string, _ io.Reader) ([][]string, error) {
	rows, ok := s[name]
	if !ok {
		return nil, errors.New("arquivo corrompido")
	}
	return rows, nil
}

type serviceMocks struct {
	salespeople  *mocks.MockSalespersonRepository
	achievements *mocks.MockMonthlyAchievementRepository
	targets      *mocks.MockMonthlyTargetRepository
	batches      *mocks.MockUploadBatchRepository
}

func newTestService(ctrl *gomock.Controller, reader SheetReader) (Achiever, serviceMocks) {
	m := serviceMocks{
		salespeople:  mocks.NewMockSalespersonRepository(ctrl),
		achievements: mocks.NewMockMonthlyAchievementRepository(ctrl),
		targets:      mocks.NewMockMonthlyTargetRepository(ctrl),
		batches:      mocks.NewMockUploadBatchRepository(ctrl),
	}

	reconciler := NewReconciler(reconciliation.NewEngine(), m.salespeople, m.achievements)
	return NewService(reconciler, reader, m.salespeople, m.achievements, m.targets, m.batches), m
}

func stringPtr(s string) *string {
	return &s
}

func TestService_ProcessUpload(t *testing.T) {
	reader := stubReader{
		"vendas.xlsx":     salesSheet().Rows,
		"devolucoes.xlsx": returnsSheet().Rows,
	}

	t.Run("Concilia, soma ao acumulado e registra o lote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl, reader)

		m.achievements.EXPECT().ClearPeriod(gomock.Any(), october).Return(int64(3), nil)
		m.salespeople.EXPECT().GetByName("ANIL KUMAR").Return(&domain.Salesperson{ID: "SP1", Name: "ANIL KUMAR", Brand: stringPtr("VIDEUM")}, nil)
		m.salespeople.EXPECT().GetByName("BEENA").Return(&domain.Salesperson{ID: "SP2", Name: "BEENA"}, nil)
		m.salespeople.EXPECT().GetByName("CARLOS").Return(nil, nil)

		m.achievements.EXPECT().
			Merge("SP1", october, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, _ domain.Period, own, other decimal.Decimal) error {
				assert.True(t, dec("5000").Equal(own), "own: %s", own)
				assert.True(t, other.IsZero())
				return nil
			})
		m.achievements.EXPECT().
			Merge("SP2", october, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, _ domain.Period, own, other decimal.Decimal) error {
				assert.True(t, own.IsZero())
				assert.True(t, dec("300").Equal(other))
				return nil
			})

		var saved *domain.UploadBatch
		m.batches.EXPECT().Save(gomock.Any()).DoAndReturn(func(batch *domain.UploadBatch) error {
			saved = batch
			return nil
		})

		result, err := service.ProcessUpload(context.Background(), &UploadRequest{
			Period:  october,
			Factor:  1,
			Replace: true,
			Sales:   []UploadFile{{Name: "vendas.xlsx", Content: strings.NewReader("")}},
			Returns: &UploadFile{Name: "devolucoes.xlsx", Content: strings.NewReader("")},
		})
		require.NoError(t, err)
		require.NotNil(t, saved)

		assert.Equal(t, saved, result.Batch)
		assert.Len(t, saved.ID, utils.BatchIDSize)
		assert.Equal(t, []string{"vendas.xlsx", "devolucoes.xlsx"}, saved.Files)
		assert.True(t, saved.Replaced)
		assert.Equal(t, 2, saved.ProcessedBlocks)
		assert.Equal(t, 1, saved.SkippedBlocks)
		assert.Equal(t, 1, saved.ReturnsExcluded)
		assert.True(t, dec("5000").Equal(saved.OwnAchievement))
		assert.True(t, dec("300").Equal(saved.OtherAchievement))
	})

	t.Run("Planilha ilegível não altera o acumulado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newTestService(ctrl, reader)

		_, err := service.ProcessUpload(context.Background(), &UploadRequest{
			Period: october,
			Factor: 1,
			Sales:  []UploadFile{{Name: "outra.xlsx", Content: strings.NewReader("")}},
		})

		var achievementErr *AchievementError
		require.True(t, errors.As(err, &achievementErr))
		assert.Equal(t, apiErrors.ErrInvalidFormat, achievementErr.Code)
		assert.True(t, errors.Is(err, ErrInvalidSpreadsheet))
	})

	t.Run("Sem arquivos de vendas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newTestService(ctrl, reader)

		_, err := service.ProcessUpload(context.Background(), &UploadRequest{Period: october, Factor: 1})
		assert.True(t, errors.Is(err, ErrMissingSalesFile))
	})

	t.Run("Falha ao gravar acumulado interrompe o envio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl, reader)

		m.salespeople.EXPECT().GetByName("ANIL KUMAR").Return(&domain.Salesperson{ID: "SP1"}, nil)
		m.achievements.EXPECT().Merge("SP1", october, gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))

		_, err := service.ProcessUpload(context.Background(), &UploadRequest{
			Period: october,
			Factor: 1,
			Sales:  []UploadFile{{Name: "vendas.xlsx", Content: strings.NewReader("")}},
		})
		assert.True(t, errors.Is(err, ErrMergeAchievement))
	})
}

func TestService_GetMonthlyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, nil)

	m.salespeople.EXPECT().List().Return([]*domain.Salesperson{
		{ID: "SP1", Name: "ANIL KUMAR", Brand: stringPtr("VIDEUM")},
		{ID: "SP2", Name: "BEENA"},
		{ID: "SP3", Name: "SEM MOVIMENTO"},
	}, nil)
	m.targets.EXPECT().GetByPeriod(october).Return([]*domain.MonthlyTarget{
		{SalespersonID: "SP1", OwnTarget: dec("10000"), OtherTarget: dec("5000")},
	}, nil)
	m.achievements.EXPECT().GetByPeriod(october).Return([]*domain.MonthlyAchievement{
		{SalespersonID: "SP1", OwnAchievement: dec("3333"), OtherAchievement: dec("0"), TotalAchievement: dec("3333")},
		{SalespersonID: "SP2", OwnAchievement: dec("0"), OtherAchievement: dec("9000"), TotalAchievement: dec("9000")},
	}, nil)

	report, err := service.GetMonthlyReport(october)
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, "SP2", report[0].SalespersonID, "ordenado pelo total realizado")
	assert.Equal(t, 0.0, report[0].TotalPercent, "sem meta o percentual é zero")

	anil := report[1]
	assert.Equal(t, "10-2025", anil.Period)
	assert.True(t, dec("15000").Equal(anil.TotalTarget))
	assert.Equal(t, 33.33, anil.OwnPercent)
	assert.Equal(t, 0.0, anil.OtherPercent)
	assert.Equal(t, 22.22, anil.TotalPercent)
}

func TestService_GetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, nil)
	m.achievements.EXPECT().GetAllPeriods().Return([]string{"11-2024", "02-2025", "10-2025"}, nil)

	periods, err := service.GetAvailablePeriods()
	require.NoError(t, err)
	assert.Equal(t, []string{"11-2024", "02-2025", "10-2025"}, periods.Periods)
	assert.Equal(t, []string{"2024", "2025"}, periods.Years)
	assert.Equal(t, []string{"02", "10", "11"}, periods.Months)
}

func TestService_SetTarget(t *testing.T) {
	tests := []struct {
		name        string
		request     *domain.UpsertTargetRequest
		setup       func(m serviceMocks)
		expectedErr error
	}{
		{
			name:    "Grava a meta do vendedor",
			request: &domain.UpsertTargetRequest{SalespersonID: "SP1", Month: 10, Year: 2025, OwnTarget: dec("1000"), OtherTarget: dec("500")},
			setup: func(m serviceMocks) {
				m.salespeople.EXPECT().GetByID("SP1").Return(&domain.Salesperson{ID: "SP1"}, nil)
				m.targets.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
		},
		{
			name:    "Vendedor inexistente",
			request: &domain.UpsertTargetRequest{SalespersonID: "SP9", Month: 10, Year: 2025},
			setup: func(m serviceMocks) {
				m.salespeople.EXPECT().GetByID("SP9").Return(nil, nil)
			},
			expectedErr: ErrSalespersonNotFound,
		},
		{
			name:        "Meta negativa",
			request:     &domain.UpsertTargetRequest{SalespersonID: "SP1", Month: 10, Year: 2025, OwnTarget: dec("-1")},
			setup:       func(m serviceMocks) {},
			expectedErr: ErrInvalidTarget,
		},
		{
			name:        "Mês inválido",
			request:     &domain.UpsertTargetRequest{SalespersonID: "SP1", Month: 0, Year: 2025},
			setup:       func(m serviceMocks) {},
			expectedErr: domain.ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, nil)
			tt.setup(m)

			target, err := service.SetTarget(tt.request)
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr), "erro: %v", err)
				return
			}

			require.NoError(t, err)
			assert.True(t, dec("1500").Equal(target.TotalTarget()))
		})
	}
}

func TestService_UpsertSalesperson(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, nil)

	m.salespeople.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(s *domain.Salesperson) (*domain.Salesperson, error) {
			assert.Equal(t, "ANIL KUMAR", s.Name)
			require.NotNil(t, s.Brand)
			assert.Equal(t, "VIDEUM", *s.Brand)
			return s, nil
		})

	saved, err := service.UpsertSalesperson(&domain.UpsertSalespersonRequest{Name: "  anil   kumar ", Brand: stringPtr(" videum ")})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	_, err = service.UpsertSalesperson(&domain.UpsertSalespersonRequest{Name: "   "})
	assert.True(t, errors.Is(err, ErrSalespersonNameRequired))
}

func TestService_ClearPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, nil)
	m.achievements.EXPECT().ClearPeriod(gomock.Any(), october).Return(int64(4), nil)

	deleted, err := service.ClearPeriod(context.Background(), october)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)

	_, err = service.ClearPeriod(context.Background(), domain.Period{Year: 2025})
	assert.True(t, errors.Is(err, domain.ErrInvalidPeriod))
}
