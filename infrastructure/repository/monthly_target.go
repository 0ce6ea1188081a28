package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-achievement-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
)

const (
	monthlyTargetsTable = "monthly_targets mt"
)

type MonthlyTargetRepository interface {
	SaveOrUpdate(target *domain.MonthlyTarget) error
	GetByPeriod(period domain.Period) ([]*domain.MonthlyTarget, error)
}

type monthlyTargetRepository struct {
	conn *postgres.Connection
}

func NewMonthlyTargetRepository(conn *postgres.Connection) MonthlyTargetRepository {
	return &monthlyTargetRepository{
		conn: conn,
	}
}

func (r *monthlyTargetRepository) SaveOrUpdate(target *domain.MonthlyTarget) error {
	query := squirrel.StatementBuilder.
		Insert("monthly_targets").
		Columns("salesperson_id", "year", "month", "own_target", "other_target").
		Values(
			target.SalespersonID,
			target.Year,
			target.Month,
			target.OwnTarget,
			target.OtherTarget,
		).
		Suffix(`
			ON CONFLICT (salesperson_id, year, month) DO UPDATE SET
				own_target = EXCLUDED.own_target,
				other_target = EXCLUDED.other_target,
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

func (r *monthlyTargetRepository) GetByPeriod(period domain.Period) ([]*domain.MonthlyTarget, error) {
	query, args, err := squirrel.
		Select("mt.salesperson_id, mt.year, mt.month, mt.own_target, mt.other_target, mt.updated_at").
		From(monthlyTargetsTable).
		Where(squirrel.Eq{"mt.year": period.Year, "mt.month": period.Month}).
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

	targets := make([]*domain.MonthlyTarget, 0)
	for rows.Next() {
		target := &domain.MonthlyTarget{}
		if err := rows.Scan(
			&target.SalespersonID,
			&target.Year,
			&target.Month,
			&target.OwnTarget,
			&target.OtherTarget,
			&target.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta mensal: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}
