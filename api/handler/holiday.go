package handler

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskwise/backend/api/transport"
	"github.com/taskwise/backend/domain"
	"github.com/taskwise/backend/pkg/clock"
	"github.com/taskwise/backend/pkg/holiday"
	"github.com/taskwise/backend/pkg/httpcontext"
)

type HolidayHandler struct {
	baseHandler
	calendar *holiday.Calendar
	clock    clock.Clock
}

func NewHolidayHandler(calendar *holiday.Calendar, clk clock.Clock, adapter *httpcontext.Adapter, logger *zap.Logger) *HolidayHandler {
	if calendar == nil {
		calendar = holiday.NewCalendar()
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &HolidayHandler{
		baseHandler: newBaseHandler(adapter, logger),
		calendar:    calendar,
		clock:       clk,
	}
}

type holidayResponse struct {
	Year     int                   `json:"year"`
	Holidays []domain.HolidayEntry `json:"holidays"`
}

// @Summary Public holidays for a year, sorted by date
// @Tags holidays
// @Router /api/v1/holidays [get]
func (h *HolidayHandler) GetHolidays(ctx *fasthttp.RequestCtx) {
	year := h.clock.Now().Year()
	if raw := string(ctx.QueryArgs().Peek("year")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1583 || parsed > 9999 {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid year", nil))
			return
		}
		year = parsed
	}

	byDate := h.calendar.ForYear(year)
	entries := make([]domain.HolidayEntry, 0, len(byDate))
	for date, name := range byDate {
		entries = append(entries, domain.HolidayEntry{Date: date, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	h.respondSuccess(ctx, http.StatusOK, holidayResponse{Year: year, Holidays: entries})
}
