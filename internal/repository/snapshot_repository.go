package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/online-edu/platform/internal/model"
)

// SnapshotRepository — архив сохранённых документов системы в Postgres.
// Файлы остаются основным хранилищем, архив только дополняет их.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Create сохраняет снапшот в архив.
func (r *SnapshotRepository) Create(ctx context.Context, snapshot *model.Snapshot) error {
	query := `
		INSERT INTO snapshots (format, payload)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, snapshot.Format, snapshot.Payload).
		Scan(&snapshot.ID, &snapshot.CreatedAt)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	return nil
}

// Latest возвращает последний снапшот заданного формата, nil если
// архив пуст.
func (r *SnapshotRepository) Latest(ctx context.Context, format string) (*model.Snapshot, error) {
	query := `
		SELECT id, format, payload, created_at
		FROM snapshots
		WHERE format = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var snapshot model.Snapshot
	err := r.pool.QueryRow(ctx, query, format).Scan(
		&snapshot.ID,
		&snapshot.Format,
		&snapshot.Payload,
		&snapshot.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Снапшотов ещё нет
		}
		return nil, fmt.Errorf("get latest snapshot: %w", err)
	}

	return &snapshot, nil
}

// List возвращает последние снапшоты без содержимого.
func (r *SnapshotRepository) List(ctx context.Context, limit int) ([]*model.Snapshot, error) {
	query := `
		SELECT id, format, created_at
		FROM snapshots
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*model.Snapshot
	for rows.Next() {
		var snapshot model.Snapshot
		if err := rows.Scan(&snapshot.ID, &snapshot.Format, &snapshot.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snapshots = append(snapshots, &snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	return snapshots, nil
}
