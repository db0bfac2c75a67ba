package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/taskwise/backend/internal/infrastructure/buffer"
	"github.com/taskwise/backend/repository"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
}

// FlusherConfig controls how frequently buffered order writes are replayed.
type FlusherConfig struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// OrderFlusher replays buffered order-index writes against the primary store.
// It implements the order service's WriteBuffer port, so failed writes flow
// straight into the Bolt buffer and drain on a cron schedule.
type OrderFlusher struct {
	store     *buffer.Store
	monitor   ConnectionHealth
	orderRepo repository.OrderRepository
	logger    *zap.Logger
	cron      *cron.Cron
	cfg       FlusherConfig
}

func NewOrderFlusher(
	store *buffer.Store,
	monitor ConnectionHealth,
	orderRepo repository.OrderRepository,
	logger *zap.Logger,
	cfg FlusherConfig,
) *OrderFlusher {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &OrderFlusher{
		store:     store,
		monitor:   monitor,
		orderRepo: orderRepo,
		logger:    logger,
		cfg:       cfg,
		cron:      cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = f.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := f.Drain(ctx); err != nil {
			f.logger.Error("order buffer drain failed", zap.Error(err))
		}
	})

	return f
}

// BufferOrderWrite enqueues a failed order write for later replay. The UI
// action is never blocked on this path.
func (f *OrderFlusher) BufferOrderWrite(ctx context.Context, ownerID, taskID string, index int) error {
	if f == nil || f.store == nil {
		return nil
	}
	return f.store.Enqueue(buffer.Entry{
		OwnerID: ownerID,
		TaskID:  taskID,
		Index:   index,
	})
}

// Start launches the cron scheduler.
func (f *OrderFlusher) Start() {
	if f == nil || f.cron == nil {
		return
	}
	f.cron.Start()
	f.logger.Info("order flusher started")
}

// Stop gracefully stops the scheduler.
func (f *OrderFlusher) Stop(ctx context.Context) {
	if f == nil || f.cron == nil {
		return
	}
	stopCtx := f.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	f.logger.Info("order flusher stopped")
}

// Drain replays buffered entries synchronously.
func (f *OrderFlusher) Drain(ctx context.Context) error {
	if f == nil || f.store == nil {
		return nil
	}
	if f.monitor != nil && !f.monitor.IsOnline() {
		f.logger.Debug("skipping order drain (offline)")
		return nil
	}

	entries, err := f.store.GetBatch(f.cfg.BatchSize)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := f.orderRepo.UpdateTaskOrder(ctx, entry.TaskID, entry.Index, entry.OwnerID)
		if err == nil {
			if remErr := f.store.Remove(entry); remErr != nil {
				f.logger.Warn("failed to remove drained entry", zap.Error(remErr))
			}
			continue
		}

		entry.Retries++
		if entry.Retries >= f.cfg.MaxRetries {
			f.logger.Warn("dropping order write after max retries",
				zap.String("task_id", entry.TaskID),
				zap.Int("retries", entry.Retries),
				zap.Error(err))
			_ = f.store.Remove(entry)
			continue
		}

		if remErr := f.store.Remove(entry); remErr != nil {
			f.logger.Warn("failed to remove entry before requeue", zap.Error(remErr))
		}
		if reqErr := f.store.Requeue(entry); reqErr != nil {
			f.logger.Error("failed to requeue order write", zap.Error(reqErr))
		}
	}

	f.logger.Info("order buffer drained", zap.Int("entries", len(entries)))
	return nil
}
