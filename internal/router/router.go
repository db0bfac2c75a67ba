package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskwise/backend/api/handler"
)

type Handlers struct {
	Task     *apiHandler.TaskHandler
	Reminder *apiHandler.ReminderHandler
	Holiday  *apiHandler.HolidayHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Holidays are public: the calendar is the same for every owner.
	r.GET("/api/v1/holidays", handlers.Holiday.GetHolidays)

	// Protected routes
	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.CreateTask))
	r.GET("/api/v1/tasks/summary", authMiddleware(handlers.Task.GetSummary))
	r.GET("/api/v1/tasks/calendar", authMiddleware(handlers.Task.GetCalendar))
	r.POST("/api/v1/tasks/reorder", authMiddleware(handlers.Task.ReorderTasks))
	r.PUT("/api/v1/tasks/{id}", authMiddleware(handlers.Task.UpdateTask))
	r.PATCH("/api/v1/tasks/{id}/status", authMiddleware(handlers.Task.ToggleStatus))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))

	r.GET("/api/v1/reminders", authMiddleware(handlers.Reminder.GetDueSoon))

	return r
}
