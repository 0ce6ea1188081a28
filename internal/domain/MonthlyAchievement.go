package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAchievement representa o acumulado mensal de vendas de um vendedor armazenado no banco
type MonthlyAchievement struct {
	ID               int64           `json:"id"`
	SalespersonID    string          `json:"salesperson_id"`
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	OwnAchievement   decimal.Decimal `json:"own_achievement"`
	OtherAchievement decimal.Decimal `json:"other_achievement"`
	TotalAchievement decimal.Decimal `json:"total_achievement"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Period retorna o período do registro
func (a *MonthlyAchievement) Period() Period {
	return Period{Year: a.Year, Month: a.Month}
}
