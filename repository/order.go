package repository

import "context"

// OrderRepository persists the per-owner custom ordering. UpdateTaskOrder is
// idempotent and is invoked once per task per reorder, in ascending index
// order. Failures are best-effort territory: the in-memory order stays
// authoritative for the session.
type OrderRepository interface {
	ListOrder(ctx context.Context, ownerID string) ([]string, error)
	UpdateTaskOrder(ctx context.Context, taskID string, index int, ownerID string) error
}
