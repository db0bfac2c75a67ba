package repository

import (
	"context"

	"github.com/taskwise/backend/domain"
)

type TaskFilter struct {
	OwnerID string
	Status  string
	Limit   int
	Offset  int
}

// TaskRepository is the durable TaskStore collaborator. All operations are
// scoped to one owner.
type TaskRepository interface {
	GetByID(ctx context.Context, ownerID, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	UpdateStatus(ctx context.Context, ownerID, id string, status domain.TaskStatus) error
	Delete(ctx context.Context, ownerID, id string) error
}
