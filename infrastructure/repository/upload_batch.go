package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-achievement-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
)

const (
	uploadBatchesTable = "upload_batches ub"
)

type UploadBatchRepository interface {
	Save(batch *domain.UploadBatch) error
	List(period *domain.Period) ([]*domain.UploadBatch, error)
	DeleteOlderThan(days int) (int64, error)
}

type uploadBatchRepository struct {
	conn *postgres.Connection
}

func NewUploadBatchRepository(conn *postgres.Connection) UploadBatchRepository {
	return &uploadBatchRepository{
		conn: conn,
	}
}

func (r *uploadBatchRepository) Save(batch *domain.UploadBatch) error {
	query := squirrel.StatementBuilder.
		Insert("upload_batches").
		Columns(
			"id", "year", "month", "files", "replaced", "factor",
			"processed_blocks", "skipped_blocks", "returns_excluded",
			"own_achievement", "other_achievement",
		).
		Values(
			batch.ID,
			batch.Year,
			batch.Month,
			pq.Array(batch.Files),
			batch.Replaced,
			batch.Factor,
			batch.ProcessedBlocks,
			batch.SkippedBlocks,
			batch.ReturnsExcluded,
			batch.OwnAchievement,
			batch.OtherAchievement,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&batch.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// List retorna os lotes mais recentes primeiro; period nulo lista todos
func (r *uploadBatchRepository) List(period *domain.Period) ([]*domain.UploadBatch, error) {
	queryBuilder := squirrel.
		Select("ub.id, ub.year, ub.month, ub.files, ub.replaced, ub.factor, ub.processed_blocks, ub.skipped_blocks, ub.returns_excluded, ub.own_achievement, ub.other_achievement, ub.created_at").
		From(uploadBatchesTable).
		OrderBy("ub.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if period != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ub.year": period.Year, "ub.month": period.Month})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	batches := make([]*domain.UploadBatch, 0)
	for rows.Next() {
		batch := &domain.UploadBatch{}
		if err := rows.Scan(
			&batch.ID,
			&batch.Year,
			&batch.Month,
			pq.Array(&batch.Files),
			&batch.Replaced,
			&batch.Factor,
			&batch.ProcessedBlocks,
			&batch.SkippedBlocks,
			&batch.ReturnsExcluded,
			&batch.OwnAchievement,
			&batch.OtherAchievement,
			&batch.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear lote de upload: %w", err)
		}
		batches = append(batches, batch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return batches, nil
}

func (r *uploadBatchRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query := squirrel.Delete("upload_batches").
		Where(squirrel.Lt{"created_at": cutoff}).
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
