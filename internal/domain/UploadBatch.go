package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UploadBatch registra um envio de planilhas e o que ele somou ao acumulado
type UploadBatch struct {
	ID               string          `json:"id"`
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	Files            []string        `json:"files"`
	Replaced         bool            `json:"replaced"`
	Factor           int             `json:"factor"`
	ProcessedBlocks  int             `json:"processed_blocks"`
	SkippedBlocks    int             `json:"skipped_blocks"`
	ReturnsExcluded  int             `json:"returns_excluded"`
	OwnAchievement   decimal.Decimal `json:"own_achievement"`
	OtherAchievement decimal.Decimal `json:"other_achievement"`
	CreatedAt        time.Time       `json:"created_at"`
}
