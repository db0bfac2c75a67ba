package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskwise/backend/repository"
)

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation of
// OrderRepository over the tasks.order_index column.
func NewOrderRepository(pool *pgxpool.Pool) repository.OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) ListOrder(ctx context.Context, ownerID string) ([]string, error) {
	const query = `
	SELECT id
	FROM tasks
	WHERE owner_id = $1
	ORDER BY order_index ASC, created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *orderRepository) UpdateTaskOrder(ctx context.Context, taskID string, index int, ownerID string) error {
	const query = `
	UPDATE tasks
	SET order_index = $2
	WHERE id = $1 AND owner_id = $3
	`
	_, err := r.pool.Exec(ctx, query, taskID, index, ownerID)
	return err
}
