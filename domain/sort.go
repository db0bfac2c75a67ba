package domain

import "strings"

// SortMode selects how the visible task list is ordered.
type SortMode string

const (
	SortName    SortMode = "name"
	SortCreated SortMode = "created"
	SortDueDate SortMode = "due_date"
	SortCustom  SortMode = "custom"
)

// SortModeFrom maps a request parameter onto a sort mode. The second return
// is false for empty or unrecognized input.
func SortModeFrom(s string) (SortMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortName, true
	case "created":
		return SortCreated, true
	case "due_date", "due", "duedate":
		return SortDueDate, true
	case "custom":
		return SortCustom, true
	default:
		return "", false
	}
}

// ParseSortMode is the lenient variant for list views, defaulting to Custom.
func ParseSortMode(s string) SortMode {
	if mode, ok := SortModeFrom(s); ok {
		return mode
	}
	return SortCustom
}
