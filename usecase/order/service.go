package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskwise/backend/domain"
	"github.com/taskwise/backend/repository"
)

// WriteBuffer captures order writes that could not reach the store so they
// can be retried later. Optional.
type WriteBuffer interface {
	BufferOrderWrite(ctx context.Context, ownerID, taskID string, index int) error
}

// Service wraps the pure order algebra with best-effort persistence. A
// persistence failure never rolls back the in-memory order: it is logged,
// handed to the write buffer when one is configured, and otherwise ignored.
type Service struct {
	repo   repository.OrderRepository
	buffer WriteBuffer
	logger *zap.Logger
}

func New(repo repository.OrderRepository, buffer WriteBuffer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		buffer: buffer,
		logger: logger,
	}
}

// Load returns the owner's normalized order for the given existing task IDs.
// A read failure degrades to creation order rather than failing the render.
func (s *Service) Load(ctx context.Context, ownerID string, allTaskIDs []string) []string {
	var tracked []string
	if s.repo != nil {
		stored, err := s.repo.ListOrder(ctx, ownerID)
		if err != nil {
			s.logger.Warn("order read failed, falling back to creation order",
				zap.String("owner_id", ownerID), zap.Error(err))
		} else {
			tracked = stored
		}
	}
	return Normalize(tracked, allTaskIDs)
}

// Reorder merges a drag gesture into the global order and persists the
// result. It is rejected up front unless the active sort mode is Custom;
// reordering under a computed mode would be overwritten on the next render.
func (s *Service) Reorder(ctx context.Context, ownerID string, mode domain.SortMode, globalOrder, visibleIDs []string, oldPos, newPos int) ([]string, error) {
	if mode != domain.SortCustom {
		return nil, domain.ErrReorderUnavailable
	}
	merged := ReorderVisible(globalOrder, visibleIDs, oldPos, newPos)
	s.Persist(ctx, ownerID, merged)
	return merged, nil
}

// Persist writes (task_id, index) pairs in ascending index order. Failures
// are swallowed after logging and buffering.
func (s *Service) Persist(ctx context.Context, ownerID string, orderedIDs []string) {
	if s.repo == nil {
		return
	}
	for index, taskID := range orderedIDs {
		err := s.repo.UpdateTaskOrder(ctx, taskID, index, ownerID)
		if err == nil {
			continue
		}
		s.logger.Warn("order write failed",
			zap.String("owner_id", ownerID),
			zap.String("task_id", taskID),
			zap.Int("index", index),
			zap.Error(err))
		if s.buffer != nil {
			if bufErr := s.buffer.BufferOrderWrite(ctx, ownerID, taskID, index); bufErr != nil {
				s.logger.Error("order write could not be buffered", zap.Error(bufErr))
			}
		}
	}
}
