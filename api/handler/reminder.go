package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskwise/backend/pkg/clock"
	"github.com/taskwise/backend/pkg/httpcontext"
	"github.com/taskwise/backend/repository"
	"github.com/taskwise/backend/usecase/reminder"
	taskUC "github.com/taskwise/backend/usecase/task"
)

type ReminderHandler struct {
	baseHandler
	lifecycle *taskUC.Lifecycle
	clock     clock.Clock
	horizon   time.Duration
}

func NewReminderHandler(lifecycle *taskUC.Lifecycle, clk clock.Clock, horizon time.Duration, adapter *httpcontext.Adapter, logger *zap.Logger) *ReminderHandler {
	if clk == nil {
		clk = clock.System{}
	}
	if horizon <= 0 {
		horizon = reminder.DefaultHorizon
	}
	return &ReminderHandler{
		baseHandler: newBaseHandler(adapter, logger),
		lifecycle:   lifecycle,
		clock:       clk,
		horizon:     horizon,
	}
}

type reminderResponse struct {
	Count int             `json:"count"`
	Items []reminder.Item `json:"items"`
}

// @Summary Pending tasks due within the reminder horizon, ascending
// @Tags reminders
// @Router /api/v1/reminders [get]
func (h *ReminderHandler) GetDueSoon(ctx *fasthttp.RequestCtx) {
	ownerID := h.ownerID(ctx)
	if ownerID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.lifecycle.List(stdCtx, repository.TaskFilter{OwnerID: ownerID})
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	items := reminder.DueSoon(tasks, h.clock.Now(), h.horizon)
	if items == nil {
		items = []reminder.Item{}
	}
	h.respondSuccess(ctx, http.StatusOK, reminderResponse{
		Count: len(items),
		Items: items,
	})
}
