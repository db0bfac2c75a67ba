package transport

// TaskRequest carries task create/edit payloads. DueDate and DueTime arrive
// as the UI's raw text fields; the core canonicalizes them.
type TaskRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"`
	Status      string `json:"status"`
}

// ReorderRequest is a completed drag gesture: the IDs visible under the
// current filter/search snapshot, plus the drag positions within that subset.
type ReorderRequest struct {
	VisibleIDs []string `json:"visible_ids"`
	OldPos     int      `json:"old_pos"`
	NewPos     int      `json:"new_pos"`
	SortMode   string   `json:"sort_mode"`
}
