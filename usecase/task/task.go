// Package task orchestrates the task lifecycle against the durable store:
// create, edit, toggle and delete, keeping the custom order index in step
// and notifying derived views after every mutation.
package task

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/taskwise/backend/domain"
	"github.com/taskwise/backend/pkg/duetime"
	"github.com/taskwise/backend/repository"
	"github.com/taskwise/backend/usecase/order"
)

// Lifecycle holds no cached derived state itself; the invalidate hook tells
// read models to recompute on next access.
type Lifecycle struct {
	tasks      repository.TaskRepository
	order      *order.Service
	invalidate func()
	logger     *zap.Logger
}

func New(tasks repository.TaskRepository, orderSvc *order.Service, invalidate func(), logger *zap.Logger) *Lifecycle {
	if logger == nil {
		logger = zap.NewNop()
	}
	if invalidate == nil {
		invalidate = func() {}
	}
	return &Lifecycle{
		tasks:      tasks,
		order:      orderSvc,
		invalidate: invalidate,
		logger:     logger,
	}
}

func (l *Lifecycle) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return l.tasks.List(ctx, filter)
}

func (l *Lifecycle) Get(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	return l.tasks.GetByID(ctx, ownerID, id)
}

// Create validates, stores and appends the new task to the tail of the
// owner's custom order.
func (l *Lifecycle) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if t == nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := validate(t); err != nil {
		return nil, err
	}
	t.Due = duetime.Canonicalize(t.Due)
	if t.Status == "" {
		t.Status = domain.StatusPending
	}

	created, err := l.tasks.Create(ctx, t)
	if err != nil {
		return nil, err
	}

	l.appendToOrderTail(ctx, created)
	l.invalidate()
	return created, nil
}

// Edit updates title, description, category and due moment. An absent task
// ID is a no-op, not an error.
func (l *Lifecycle) Edit(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if t == nil || t.ID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if err := validate(t); err != nil {
		return nil, err
	}
	t.Due = duetime.Canonicalize(t.Due)

	if err := l.tasks.Update(ctx, t); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return t, nil
		}
		return nil, err
	}
	l.invalidate()
	return t, nil
}

// Toggle flips pending and completed. Absent IDs are a no-op.
func (l *Lifecycle) Toggle(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	current, err := l.tasks.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}

	next := current.Toggled()
	if err := l.tasks.UpdateStatus(ctx, ownerID, id, next); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}
	current.Status = next
	l.invalidate()
	return current, nil
}

// Delete removes the task and compacts the owner's order index. Absent IDs
// are a no-op.
func (l *Lifecycle) Delete(ctx context.Context, ownerID, id string) error {
	if err := l.tasks.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil
		}
		return err
	}

	l.compactOrder(ctx, ownerID)
	l.invalidate()
	return nil
}

func (l *Lifecycle) appendToOrderTail(ctx context.Context, created *domain.Task) {
	if l.order == nil {
		return
	}
	ids, err := l.ownedIDs(ctx, created.OwnerID)
	if err != nil {
		l.logger.Warn("order tail append skipped", zap.String("task_id", created.ID), zap.Error(err))
		return
	}
	l.order.Persist(ctx, created.OwnerID, l.order.Load(ctx, created.OwnerID, ids))
}

func (l *Lifecycle) compactOrder(ctx context.Context, ownerID string) {
	if l.order == nil {
		return
	}
	ids, err := l.ownedIDs(ctx, ownerID)
	if err != nil {
		l.logger.Warn("order compaction skipped", zap.String("owner_id", ownerID), zap.Error(err))
		return
	}
	l.order.Persist(ctx, ownerID, l.order.Load(ctx, ownerID, ids))
}

func (l *Lifecycle) ownedIDs(ctx context.Context, ownerID string) ([]string, error) {
	tasks, err := l.tasks.List(ctx, repository.TaskFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids, nil
}

func validate(t *domain.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return domain.ErrEmptyTitle
	}
	if !domain.ValidCategory(t.Category) {
		return domain.ErrBadCategory
	}
	return nil
}
