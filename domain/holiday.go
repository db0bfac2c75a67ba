package domain

// HolidayEntry pairs a calendar date (canonical "YYYY-MM-DD" form) with a
// holiday name. Entries are ephemeral: recomputed per year and cached in
// memory, never persisted.
type HolidayEntry struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
