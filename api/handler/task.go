package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskwise/backend/api/transport"
	"github.com/taskwise/backend/domain"
	"github.com/taskwise/backend/pkg/clock"
	"github.com/taskwise/backend/pkg/duetime"
	"github.com/taskwise/backend/pkg/httpcontext"
	"github.com/taskwise/backend/repository"
	orderUC "github.com/taskwise/backend/usecase/order"
	"github.com/taskwise/backend/usecase/reminder"
	taskUC "github.com/taskwise/backend/usecase/task"
	"github.com/taskwise/backend/usecase/view"
)

type TaskHandler struct {
	baseHandler
	lifecycle *taskUC.Lifecycle
	order     *orderUC.Service
	clock     clock.Clock
}

func NewTaskHandler(lifecycle *taskUC.Lifecycle, order *orderUC.Service, clk clock.Clock, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	if clk == nil {
		clk = clock.System{}
	}
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		lifecycle:   lifecycle,
		order:       order,
		clock:       clk,
	}
}

// @Summary List tasks with filter, search and sort applied
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	ownerID := h.ownerID(ctx)
	if ownerID == "" {
		return
	}

	filterCategory := string(ctx.QueryArgs().Peek("category"))
	searchText := string(ctx.QueryArgs().Peek("q"))
	mode := domain.ParseSortMode(string(ctx.QueryArgs().Peek("sort")))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.lifecycle.List(stdCtx, repository.TaskFilter{OwnerID: ownerID})
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var orderIDs []string
	if mode == domain.SortCustom {
		// normalization before every Custom-mode read keeps freshly
		// created tasks visible at the tail
		orderIDs = h.order.Load(stdCtx, ownerID, taskIDs(tasks))
	}

	visible := view.Apply(tasks, filterCategory, searchText, mode, orderIDs)
	h.respondSuccess(ctx, http.StatusOK, visible)
}

// @Summary Task counters for the analytics panel
// @Tags tasks
// @Router /api/v1/tasks/summary [get]
func (h *TaskHandler) GetSummary(ctx *fasthttp.RequestCtx) {
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

	overdue := reminder.CountOverdue(tasks, h.clock.Now())
	h.respondSuccess(ctx, http.StatusOK, view.Summarize(tasks, overdue))
}

// @Summary Dates in a month that carry at least one due task
// @Tags tasks
// @Router /api/v1/tasks/calendar [get]
func (h *TaskHandler) GetCalendar(ctx *fasthttp.RequestCtx) {
	ownerID := h.ownerID(ctx)
	if ownerID == "" {
		return
	}

	now := h.clock.Now()
	year, err1 := strconv.Atoi(string(ctx.QueryArgs().Peek("year")))
	month, err2 := strconv.Atoi(string(ctx.QueryArgs().Peek("month")))
	if err1 != nil {
		year = now.Year()
	}
	if err2 != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.lifecycle.List(stdCtx, repository.TaskFilter{OwnerID: ownerID})
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"year":      year,
		"month":     month,
		"due_dates": view.DueDatesInMonth(tasks, year, month),
	})
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	ownerID := h.ownerID(ctx)
	if ownerID == "" {
		return
	}

	task, ok := h.parseTask(ctx, ownerID)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.lifecycle.Create(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Edit task fields
// @Tags tasks
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	ownerID := h.ownerID(ctx)
	if ownerID == "" {
		return
	}

	task, ok := h.parseTask(ctx, ownerID)
	if !ok {
		return
	}
	if task.ID == "" {
		if id, ok := ctx.UserValue("id").(string); ok {
			task.ID = id
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.lifecycle.Edit(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Toggle task status between pending and completed
// @Tags tasks
// @Router /api/v1/tasks/{id}/status [patch]
func (h *TaskHandler) ToggleStatus(ctx *fasthttp.RequestCtx) {
	ownerID := h.ownerID(ctx)
	if ownerID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	toggled, err := h.lifecycle.Toggle(stdCtx, ownerID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, toggled)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	ownerID := h.ownerID(ctx)
	if ownerID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.lifecycle.Delete(stdCtx, ownerID, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Merge a drag-reorder of the visible subset into the global order
// @Tags tasks
// @Router /api/v1/tasks/reorder [post]
func (h *TaskHandler) ReorderTasks(ctx *fasthttp.RequestCtx) {
	ownerID := h.ownerID(ctx)
	if ownerID == "" {
		return
	}

	var req transport.ReorderRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	// The client must state the mode it reordered under. An omitted or
	// unknown mode must not pass for Custom.
	mode, ok := domain.SortModeFrom(req.SortMode)
	if !ok {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "unknown sort mode", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.lifecycle.List(stdCtx, repository.TaskFilter{OwnerID: ownerID})
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	globalOrder := h.order.Load(stdCtx, ownerID, taskIDs(tasks))
	merged, err := h.order.Reorder(stdCtx, ownerID, mode, globalOrder, req.VisibleIDs, req.OldPos, req.NewPos)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, merged)
}

func (h *TaskHandler) parseTask(ctx *fasthttp.RequestCtx, ownerID string) (*domain.Task, bool) {
	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	task := &domain.Task{
		ID:          req.ID,
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Due:         combineDue(req.DueDate, req.DueTime),
		Status:      domain.TaskStatus(req.Status),
	}
	return task, true
}

// combineDue builds the canonical due string from raw date/time fields. A
// malformed time degrades to date-only; a malformed date means no due moment.
func combineDue(dateText, timeText string) string {
	date, ok := duetime.ParseDate(dateText)
	if !ok {
		return ""
	}
	if tod, ok := duetime.ParseTime(timeText); ok {
		return duetime.Combine(date, &tod)
	}
	return duetime.Combine(date, nil)
}

func taskIDs(tasks []domain.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
