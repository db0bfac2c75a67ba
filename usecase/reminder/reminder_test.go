package reminder

import (
	"testing"
	"time"

	"github.com/taskwise/backend/domain"
)

func pending(id, due string) domain.Task {
	return domain.Task{ID: id, Title: id, Due: due, Status: domain.StatusPending}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)

	if !IsOverdue(pending("t", "2025-01-09 5:00 PM"), now) {
		t.Error("past timed due must be overdue")
	}
	if IsOverdue(pending("t", "2025-01-11"), now) {
		t.Error("future due must not be overdue")
	}
	if IsOverdue(pending("t", ""), now) {
		t.Error("no due date is never overdue")
	}
	if IsOverdue(pending("t", "garbage"), now) {
		t.Error("corrupt due string is never overdue")
	}

	done := pending("t", "2020-01-01")
	done.Status = domain.StatusCompleted
	if IsOverdue(done, now) {
		t.Error("completed task is never overdue, regardless of due date")
	}
}

func TestDateOnlyDueTodayNotOverdueBeforeEndOfDay(t *testing.T) {
	now := time.Date(2025, 1, 10, 23, 58, 0, 0, time.Local)
	if IsOverdue(pending("t", "2025-01-10"), now) {
		t.Error("date-only due for today must not be overdue before 23:59")
	}

	later := time.Date(2025, 1, 10, 23, 59, 30, 0, time.Local)
	if !IsOverdue(pending("t", "2025-01-10"), later) {
		t.Error("date-only due becomes overdue after 23:59")
	}
}

func TestDueSoonHorizon(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		pending("inside", "2025-01-11 8:00 AM"),
		pending("outside", "2025-01-11 10:00 AM"),
	}

	items := DueSoon(tasks, now, 24*time.Hour)
	if len(items) != 1 || items[0].Task.ID != "inside" {
		t.Errorf("due soon = %v", items)
	}
}

func TestDueSoonIncludesOverdueExcludesCompleted(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)

	done := pending("done", "2025-01-10 10:00 AM")
	done.Status = domain.StatusCompleted

	tasks := []domain.Task{
		done,
		pending("overdue", "2025-01-08"),
		pending("later", "2025-01-10 11:00 AM"),
		pending("undated", ""),
	}

	items := DueSoon(tasks, now, 0) // 0 falls back to the 24h default
	if len(items) != 2 {
		t.Fatalf("due soon = %d items", len(items))
	}
	if items[0].Task.ID != "overdue" || items[1].Task.ID != "later" {
		t.Errorf("order = [%s %s], want ascending by instant", items[0].Task.ID, items[1].Task.ID)
	}
}

func TestDueSoonStableTies(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		pending("first", "2025-01-10 10:00 AM"),
		pending("second", "2025-01-10 10:00 AM"),
	}
	items := DueSoon(tasks, now, 24*time.Hour)
	if len(items) != 2 || items[0].Task.ID != "first" || items[1].Task.ID != "second" {
		t.Errorf("tie order not stable: %v", items)
	}
}

func TestCountOverdue(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		pending("a", "2025-01-01"),
		pending("b", "2025-02-01"),
	}
	if got := CountOverdue(tasks, now); got != 1 {
		t.Errorf("CountOverdue = %d", got)
	}
}
