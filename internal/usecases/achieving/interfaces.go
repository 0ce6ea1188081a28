package achieving

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
)

// Accumulator soma os deltas conciliados ao acumulado de cada vendedor no período
type Accumulator interface {
	// Merge adiciona own e other ao registro existente ou cria um novo com esses valores
	Merge(salespersonID string, period domain.Period, own, other decimal.Decimal) error

	// ClearPeriod apaga os acumulados do período antes de um envio que substitui os dados
	ClearPeriod(ctx context.Context, period domain.Period) (int64, error)
}

// Directory resolve vendedores pelo nome canônico usado nas planilhas
type Directory interface {
	GetByName(name string) (*domain.Salesperson, error)
}

// SheetReader lê a primeira aba de uma planilha como linhas de texto
type SheetReader interface {
	ReadFirstSheet(name string, src io.Reader) ([][]string, error)
}

// Achiever é a interface usada pela API
type Achiever interface {
	ProcessUpload(ctx context.Context, request *UploadRequest) (*UploadResult, error)
	GetMonthlyReport(period domain.Period) ([]*domain.AchievementReport, error)
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
	ClearPeriod(ctx context.Context, period domain.Period) (int64, error)
	ListBatches(period *domain.Period) ([]*domain.UploadBatch, error)
	SetTarget(request *domain.UpsertTargetRequest) (*domain.MonthlyTarget, error)
	ListSalespeople() ([]*domain.Salesperson, error)
	UpsertSalesperson(request *domain.UpsertSalespersonRequest) (*domain.Salesperson, error)
}
