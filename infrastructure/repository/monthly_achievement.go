package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-achievement-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
)

const (
	monthlyAchievementsTable = "monthly_achievements ma"
)

type MonthlyAchievementRepository interface {
	Merge(salespersonID string, period domain.Period, own, other decimal.Decimal) error
	ClearPeriod(ctx context.Context, period domain.Period) (int64, error)
	GetByPeriod(period domain.Period) ([]*domain.MonthlyAchievement, error)
	GetAllPeriods() ([]string, error)
	DeleteOlderThan(months int) (int64, error)
}

type monthlyAchievementRepository struct {
	conn *postgres.Connection
}

func NewMonthlyAchievementRepository(conn *postgres.Connection) MonthlyAchievementRepository {
	return &monthlyAchievementRepository{
		conn: conn,
	}
}

// Merge soma os deltas ao acumulado do vendedor no período, criando o registro se necessário.
// A soma acontece dentro do próprio upsert, então chamadas concorrentes para a mesma chave não perdem atualização.
func (r *monthlyAchievementRepository) Merge(salespersonID string, period domain.Period, own, other decimal.Decimal) error {
	query := squirrel.StatementBuilder.
		Insert("monthly_achievements").
		Columns("salesperson_id", "year", "month", "own_achievement", "other_achievement", "total_achievement").
		Values(
			salespersonID,
			period.Year,
			period.Month,
			own,
			other,
			own.Add(other),
		).
		Suffix(`
			ON CONFLICT (salesperson_id, year, month) DO UPDATE SET
				own_achievement = monthly_achievements.own_achievement + EXCLUDED.own_achievement,
				other_achievement = monthly_achievements.other_achievement + EXCLUDED.other_achievement,
				total_achievement = monthly_achievements.total_achievement + EXCLUDED.total_achievement,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ClearPeriod apaga os acumulados e os lotes de upload do período na mesma transação.
// Retorna a quantidade de acumulados removidos.
func (r *monthlyAchievementRepository) ClearPeriod(ctx context.Context, period domain.Period) (int64, error) {
	var deleted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		deleted, err = deletePeriod(tx, "monthly_achievements", period)
		if err != nil {
			return err
		}

		_, err = deletePeriod(tx, "upload_batches", period)
		return err
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

func deletePeriod(q postgres.Queryer, table string, period domain.Period) (int64, error) {
	sqlQuery, args, err := squirrel.Delete(table).
		Where(squirrel.Eq{"year": period.Year, "month": period.Month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao apagar %s do período %s: %w", table, period, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *monthlyAchievementRepository) GetByPeriod(period domain.Period) ([]*domain.MonthlyAchievement, error) {
	query, args, err := squirrel.
		Select("ma.id, ma.salesperson_id, ma.year, ma.month, ma.own_achievement, ma.other_achievement, ma.total_achievement, ma.created_at, ma.updated_at").
		From(monthlyAchievementsTable).
		Where(squirrel.Eq{"ma.year": period.Year, "ma.month": period.Month}).
		OrderBy("ma.total_achievement DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	achievements := make([]*domain.MonthlyAchievement, 0)
	for rows.Next() {
		achievement := &domain.MonthlyAchievement{}
		if err := rows.Scan(
			&achievement.ID,
			&achievement.SalespersonID,
			&achievement.Year,
			&achievement.Month,
			&achievement.OwnAchievement,
			&achievement.OtherAchievement,
			&achievement.TotalAchievement,
			&achievement.CreatedAt,
			&achievement.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear acumulado mensal: %w", err)
		}
		achievements = append(achievements, achievement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return achievements, nil
}

// GetAllPeriods retorna todos os períodos disponíveis no formato mm-yyyy
func (r *monthlyAchievementRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT year, month").
		From("monthly_achievements").
		OrderBy("year ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period domain.Period
		if err := rows.Scan(&period.Year, &period.Month); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period.String())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

// DeleteOlderThan remove acumulados de períodos anteriores ao mês de corte
func (r *monthlyAchievementRepository) DeleteOlderThan(months int) (int64, error) {
	cutoff := domain.PeriodOf(time.Now().AddDate(0, -months, 0))

	query := squirrel.Delete("monthly_achievements").
		Where(squirrel.Lt{"year * 100 + month": cutoff.Year*100 + cutoff.Month}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
