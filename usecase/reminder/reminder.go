// Package reminder classifies tasks as overdue or due-soon. It is a pure
// read model over tasks and a clock: nothing is marked seen or dismissed,
// every query recomputes from scratch.
package reminder

import (
	"sort"
	"time"

	"github.com/taskwise/backend/domain"
	"github.com/taskwise/backend/pkg/duetime"
)

// DefaultHorizon is the "due soon" lookahead window.
const DefaultHorizon = 24 * time.Hour

// Item is a due-soon entry: the task plus its resolved due instant.
type Item struct {
	Task  domain.Task `json:"task"`
	DueAt time.Time   `json:"due_at"`
}

// IsOverdue reports whether a pending task's due instant lies before now.
// Completed tasks and tasks without a parseable due moment are never overdue.
func IsOverdue(task domain.Task, now time.Time) bool {
	if !task.IsPending() {
		return false
	}
	instant, ok := duetime.OrderableInstant(task.Due)
	if !ok {
		return false
	}
	return instant.Before(now)
}

// CountOverdue counts overdue tasks; feeds the summary panel.
func CountOverdue(tasks []domain.Task, now time.Time) int {
	count := 0
	for _, t := range tasks {
		if IsOverdue(t, now) {
			count++
		}
	}
	return count
}

// DueSoon returns pending tasks whose due instant falls at or before
// now+horizon, including already-overdue ones, ascending by due instant.
// Ties keep the input order.
func DueSoon(tasks []domain.Task, now time.Time, horizon time.Duration) []Item {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	limit := now.Add(horizon)

	var items []Item
	for _, t := range tasks {
		if !t.IsPending() {
			continue
		}
		instant, ok := duetime.OrderableInstant(t.Due)
		if !ok {
			continue
		}
		if !instant.After(limit) {
			items = append(items, Item{Task: t, DueAt: instant})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueAt.Before(items[j].DueAt)
	})
	return items
}
