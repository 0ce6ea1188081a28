package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-achievement-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
)

const (
	salespeopleTable = "salespeople s"
)

var salespersonColumns = "s.id, s.name, s.brand, s.section, s.created_at, s.updated_at"

type SalespersonRepository interface {
	GetByName(name string) (*domain.Salesperson, error)
	GetByID(id string) (*domain.Salesperson, error)
	List() ([]*domain.Salesperson, error)
	SaveOrUpdate(salesperson *domain.Salesperson) (*domain.Salesperson, error)
}

type salespersonRepository struct {
	conn *postgres.Connection
}

func NewSalespersonRepository(conn *postgres.Connection) SalespersonRepository {
	return &salespersonRepository{
		conn: conn,
	}
}

// GetByName busca pelo nome canônico (maiúsculo, espaços colapsados). Retorna nil quando não existe.
func (r *salespersonRepository) GetByName(name string) (*domain.Salesperson, error) {
	return r.get(squirrel.Eq{"s.name": name})
}

func (r *salespersonRepository) GetByID(id string) (*domain.Salesperson, error) {
	return r.get(squirrel.Eq{"s.id": id})
}

func (r *salespersonRepository) get(whereClause squirrel.Eq) (*domain.Salesperson, error) {
	query, args, err := squirrel.
		Select(salespersonColumns).
		From(salespeopleTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	salesperson, err := r.scanSalesperson(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
	}

	return salesperson, nil
}

func (r *salespersonRepository) List() ([]*domain.Salesperson, error) {
	query, args, err := squirrel.
		Select(salespersonColumns).
		From(salespeopleTable).
		OrderBy("s.name ASC").
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

	salespeople := make([]*domain.Salesperson, 0)
	for rows.Next() {
		salesperson, err := r.scanSalesperson(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
		}
		salespeople = append(salespeople, salesperson)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return salespeople, nil
}

// SaveOrUpdate insere o vendedor ou atualiza marca e seção quando o nome já existe
func (r *salespersonRepository) SaveOrUpdate(salesperson *domain.Salesperson) (*domain.Salesperson, error) {
	query := squirrel.StatementBuilder.
		Insert("salespeople").
		Columns("id", "name", "brand", "section").
		Values(
			salesperson.ID,
			salesperson.Name,
			salesperson.Brand,
			salesperson.Section,
		).
		Suffix(`
			ON CONFLICT (name) DO UPDATE SET
				brand = EXCLUDED.brand,
				section = EXCLUDED.section,
				updated_at = NOW()
			RETURNING id, name, brand, section, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	saved, err := r.scanSalesperson(r.conn.QueryRow(sqlQuery, args...))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return saved, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *salespersonRepository) scanSalesperson(row scanner) (*domain.Salesperson, error) {
	salesperson := &domain.Salesperson{}
	var brand sql.NullString

	if err := row.Scan(
		&salesperson.ID,
		&salesperson.Name,
		&brand,
		&salesperson.Section,
		&salesperson.CreatedAt,
		&salesperson.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if brand.Valid && brand.String != "" {
		salesperson.Brand = &brand.String
	}

	return salesperson, nil
}
