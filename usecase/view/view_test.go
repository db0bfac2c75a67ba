package view

import (
	"testing"
	"time"

	"github.com/taskwise/backend/domain"
)

func task(id, title, category, due string, status domain.TaskStatus, created time.Time) domain.Task {
	return domain.Task{
		ID:        id,
		OwnerID:   "u1",
		Title:     title,
		Category:  category,
		Due:       due,
		Status:    status,
		CreatedAt: created,
	}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equal(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterCategory(t *testing.T) {
	tasks := []domain.Task{
		task("1", "Pay bills", "Bills", "", domain.StatusPending, time.Time{}),
		task("2", "Gym", "Personal", "", domain.StatusPending, time.Time{}),
	}

	if got := Apply(tasks, domain.FilterAll, "", domain.SortCustom, nil); len(got) != 2 {
		t.Errorf("All Tasks filter kept %d", len(got))
	}
	if got := Apply(tasks, "bills", "", domain.SortCustom, nil); !equal(ids(got), "1") {
		t.Errorf("case-insensitive category filter = %v", ids(got))
	}
	if got := Apply(tasks, "Work", "", domain.SortCustom, nil); len(got) != 0 {
		t.Errorf("unmatched category kept %d", len(got))
	}
}

func TestSearchTitleAndDescription(t *testing.T) {
	tasks := []domain.Task{
		{ID: "1", Title: "Client Call", Description: "weekly check-in"},
		{ID: "2", Title: "Groceries", Description: "milk and EGGS"},
	}

	if got := Apply(tasks, "", "call", domain.SortCustom, nil); !equal(ids(got), "1") {
		t.Errorf("title search = %v", ids(got))
	}
	if got := Apply(tasks, "", "eggs", domain.SortCustom, nil); !equal(ids(got), "2") {
		t.Errorf("description search = %v", ids(got))
	}
	if got := Apply(tasks, "", "", domain.SortCustom, nil); len(got) != 2 {
		t.Errorf("empty search filtered to %d", len(got))
	}
}

func TestSortName(t *testing.T) {
	tasks := []domain.Task{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "cherry"},
	}
	got := Apply(tasks, "", "", domain.SortName, nil)
	if !equal(ids(got), "2", "1", "3") {
		t.Errorf("name sort = %v", ids(got))
	}
}

func TestSortCreatedNewestFirst(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		task("old", "t", "", "", domain.StatusPending, base),
		task("new", "t", "", "", domain.StatusPending, base.AddDate(0, 0, 5)),
		task("none", "t", "", "", domain.StatusPending, time.Time{}),
	}
	got := Apply(tasks, "", "", domain.SortCreated, nil)
	if !equal(ids(got), "new", "old", "none") {
		t.Errorf("created sort = %v, want missing timestamp last", ids(got))
	}
}

func TestSortDueDateUndatedLast(t *testing.T) {
	tasks := []domain.Task{
		task("A", "a", "", "2025-01-10", domain.StatusPending, time.Time{}),
		task("B", "b", "", "2025-01-05", domain.StatusPending, time.Time{}),
		task("C", "c", "", "", domain.StatusPending, time.Time{}),
	}
	got := Apply(tasks, "", "", domain.SortDueDate, nil)
	if !equal(ids(got), "B", "A", "C") {
		t.Errorf("due date sort = %v, want [B A C]", ids(got))
	}
}

func TestSortDueDateTimedBeforeEndOfDay(t *testing.T) {
	tasks := []domain.Task{
		task("allday", "a", "", "2025-01-10", domain.StatusPending, time.Time{}),
		task("timed", "b", "", "2025-01-10 8:00 AM", domain.StatusPending, time.Time{}),
	}
	got := Apply(tasks, "", "", domain.SortDueDate, nil)
	if !equal(ids(got), "timed", "allday") {
		t.Errorf("due date sort = %v, all-day counts as 23:59", ids(got))
	}
}

func TestSortCustomFollowsOrderList(t *testing.T) {
	tasks := []domain.Task{
		{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "stray"},
	}
	got := Apply(tasks, "", "", domain.SortCustom, []string{"C", "A", "B"})
	if !equal(ids(got), "C", "A", "B", "stray") {
		t.Errorf("custom sort = %v, untracked ID must sort last", ids(got))
	}
}

func TestSummarize(t *testing.T) {
	tasks := []domain.Task{
		task("1", "a", "Work", "", domain.StatusCompleted, time.Time{}),
		task("2", "b", "work", "", domain.StatusPending, time.Time{}),
		task("3", "c", "", "", domain.StatusPending, time.Time{}),
	}
	s := Summarize(tasks, 1)
	if s.Total != 3 || s.Completed != 1 || s.Overdue != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.ByCategory["Work"] != 2 {
		t.Errorf("Work count = %d", s.ByCategory["Work"])
	}
}

func TestDueDatesInMonth(t *testing.T) {
	tasks := []domain.Task{
		task("1", "a", "", "2025-01-10", domain.StatusPending, time.Time{}),
		task("2", "b", "", "2025-01-10 2:00 PM", domain.StatusPending, time.Time{}),
		task("3", "c", "", "2025-02-01", domain.StatusPending, time.Time{}),
		task("4", "d", "", "", domain.StatusPending, time.Time{}),
	}
	marked := DueDatesInMonth(tasks, 2025, 1)
	if len(marked) != 1 || !marked["2025-01-10"] {
		t.Errorf("marked = %v", marked)
	}
}
