package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTarget é a meta mensal de um vendedor
type MonthlyTarget struct {
	SalespersonID string          `json:"salesperson_id"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	OwnTarget     decimal.Decimal `json:"own_target"`
	OtherTarget   decimal.Decimal `json:"other_target"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TotalTarget soma as metas own e other
func (t *MonthlyTarget) TotalTarget() decimal.Decimal {
	return t.OwnTarget.Add(t.OtherTarget)
}

type UpsertTargetRequest struct {
	SalespersonID string          `json:"salesperson_id" validate:"required"`
	Month         int             `json:"month" validate:"min=1,max=12"`
	Year          int             `json:"year" validate:"min=2000,max=9999"`
	OwnTarget     decimal.Decimal `json:"own_target"`
	OtherTarget   decimal.Decimal `json:"other_target"`
}
