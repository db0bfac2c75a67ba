// Package view computes the visible task list: category filter, text search
// and one of four sort modes applied to a task collection. It is a pure read
// model; nothing here mutates tasks or the custom order.
package view

import (
	"sort"
	"strings"

	"github.com/taskwise/backend/domain"
	"github.com/taskwise/backend/pkg/duetime"
)

// Apply filters tasks by category and search text, then orders them by the
// requested sort mode. orderIDs is the owner's normalized custom order and is
// only consulted in Custom mode.
func Apply(tasks []domain.Task, filterCategory, searchText string, mode domain.SortMode, orderIDs []string) []domain.Task {
	visible := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesCategory(t, filterCategory) && matchesSearch(t, searchText) {
			visible = append(visible, t)
		}
	}

	switch mode {
	case domain.SortName:
		sort.SliceStable(visible, func(i, j int) bool {
			return strings.ToLower(visible[i].Title) < strings.ToLower(visible[j].Title)
		})
	case domain.SortCreated:
		// newest first; a missing timestamp sorts as oldest
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].CreatedAt.After(visible[j].CreatedAt)
		})
	case domain.SortDueDate:
		sort.SliceStable(visible, func(i, j int) bool {
			di, iOK := duetime.OrderableInstant(visible[i].Due)
			dj, jOK := duetime.OrderableInstant(visible[j].Due)
			if iOK != jOK {
				return iOK // undated tasks sort last
			}
			if !iOK {
				return false
			}
			return di.Before(dj)
		})
	case domain.SortCustom:
		rank := make(map[string]int, len(orderIDs))
		for i, id := range orderIDs {
			rank[id] = i
		}
		unranked := len(orderIDs)
		pos := func(t domain.Task) int {
			if r, ok := rank[t.ID]; ok {
				return r
			}
			return unranked // missing from the order list sorts last, stable
		}
		sort.SliceStable(visible, func(i, j int) bool {
			return pos(visible[i]) < pos(visible[j])
		})
	}

	return visible
}

func matchesCategory(t domain.Task, filterCategory string) bool {
	if filterCategory == "" || filterCategory == domain.FilterAll {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(t.Category), strings.TrimSpace(filterCategory))
}

func matchesSearch(t domain.Task, searchText string) bool {
	q := strings.ToLower(strings.TrimSpace(searchText))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

// Summary aggregates the counters shown next to the task list.
type Summary struct {
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Overdue    int            `json:"overdue"`
	ByCategory map[string]int `json:"by_category"`
}

// Summarize counts completed and per-category tasks; overdue is filled in by
// the caller, which owns the clock.
func Summarize(tasks []domain.Task, overdue int) Summary {
	s := Summary{
		Total:      len(tasks),
		Overdue:    overdue,
		ByCategory: make(map[string]int, len(domain.Categories)),
	}
	for _, c := range domain.Categories {
		s.ByCategory[c] = 0
	}
	for _, t := range tasks {
		if t.IsCompleted() {
			s.Completed++
		}
		for _, c := range domain.Categories {
			if strings.EqualFold(strings.TrimSpace(t.Category), c) {
				s.ByCategory[c]++
				break
			}
		}
	}
	return s
}

// DueDatesInMonth returns the set of canonical dates within (year, month)
// that have at least one due task, keyed "YYYY-MM-DD". Used by the calendar
// month view to mark days.
func DueDatesInMonth(tasks []domain.Task, year int, month int) map[string]bool {
	marked := make(map[string]bool)
	for _, t := range tasks {
		date, _, ok := duetime.Split(t.Due)
		if !ok {
			continue
		}
		if date.Year() == year && int(date.Month()) == month {
			marked[date.Format("2006-01-02")] = true
		}
	}
	return marked
}
