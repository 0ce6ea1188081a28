package achieving

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
)

type memoryKey struct {
	salespersonID string
	period        domain.Period
}

// MemoryAccumulator guarda os acumulados em memória. Usado pela CLI de conciliação offline.
type MemoryAccumulator struct {
	mu      sync.Mutex
	records map[memoryKey]*domain.MonthlyAchievement
	nextID  int64
}

func NewMemoryAccumulator() *MemoryAccumulator {
	return &MemoryAccumulator{
		records: make(map[memoryKey]*domain.MonthlyAchievement),
	}
}

func (m *MemoryAccumulator) Merge(salespersonID string, period domain.Period, own, other decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := memoryKey{salespersonID: salespersonID, period: period}
	now := time.Now()

	record, ok := m.records[key]
	if !ok {
		m.nextID++
		record = &domain.MonthlyAchievement{
			ID:               m.nextID,
			SalespersonID:    salespersonID,
			Year:             period.Year,
			Month:            period.Month,
			OwnAchievement:   decimal.Zero,
			OtherAchievement: decimal.Zero,
			TotalAchievement: decimal.Zero,
			CreatedAt:        now,
		}
		m.records[key] = record
	}

	record.OwnAchievement = record.OwnAchievement.Add(own)
	record.OtherAchievement = record.OtherAchievement.Add(other)
	record.TotalAchievement = record.TotalAchievement.Add(own.Add(other))
	record.UpdatedAt = now

	return nil
}

func (m *MemoryAccumulator) ClearPeriod(_ context.Context, period domain.Period) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for key := range m.records {
		if key.period == period {
			delete(m.records, key)
			deleted++
		}
	}

	return deleted, nil
}

// Snapshot retorna cópias dos acumulados do período ordenadas pelo ID do vendedor
func (m *MemoryAccumulator) Snapshot(period domain.Period) []*domain.MonthlyAchievement {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.MonthlyAchievement, 0)
	for key, record := range m.records {
		if key.period != period {
			continue
		}
		copied := *record
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SalespersonID < result[j].SalespersonID
	})

	return result
}
