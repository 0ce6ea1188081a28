package domain

import "github.com/shopspring/decimal"

// AchievementReport combina meta e realizado de um vendedor em um período
type AchievementReport struct {
	SalespersonID    string          `json:"salesperson_id"`
	SalespersonName  string          `json:"salesperson_name"`
	Brand            *string         `json:"brand,omitempty"`
	Section          string          `json:"section,omitempty"`
	Period           string          `json:"period"` // Período no formato mm-yyyy
	OwnTarget        decimal.Decimal `json:"own_target"`
	OtherTarget      decimal.Decimal `json:"other_target"`
	TotalTarget      decimal.Decimal `json:"total_target"`
	OwnAchievement   decimal.Decimal `json:"own_achievement"`
	OtherAchievement decimal.Decimal `json:"other_achievement"`
	TotalAchievement decimal.Decimal `json:"total_achievement"`
	OwnPercent       float64         `json:"own_percent"`
	OtherPercent     float64         `json:"other_percent"`
	TotalPercent     float64         `json:"total_percent"`
}
