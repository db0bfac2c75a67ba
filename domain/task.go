package domain

import (
	"strings"
	"time"
)

// TaskStatus enumerates the two task states.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// Categories is the fixed category set; a task may also carry no category.
var Categories = []string{"Personal", "Work", "Study", "Bills", "Others"}

// FilterAll is the filter label that passes every category.
const FilterAll = "All Tasks"

// Task represents a user-owned activity item. Due holds the canonical due
// string ("YYYY-MM-DD" or "YYYY-MM-DD h:mm AM/PM"); empty means no due moment.
type Task struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Due         string     `json:"due,omitempty"`
	Status      TaskStatus `json:"status"`
	OrderIndex  int        `json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

func (t *Task) IsPending() bool {
	return t != nil && t.Status != StatusCompleted
}

// Toggled returns the opposite status. Anything not completed flips to
// completed, so an unknown stored status heals into the enum.
func (t *Task) Toggled() TaskStatus {
	if t.IsCompleted() {
		return StatusPending
	}
	return StatusCompleted
}

// ValidCategory reports whether c is empty or one of the fixed set,
// compared case-insensitively.
func ValidCategory(c string) bool {
	if strings.TrimSpace(c) == "" {
		return true
	}
	for _, known := range Categories {
		if strings.EqualFold(known, c) {
			return true
		}
	}
	return false
}
