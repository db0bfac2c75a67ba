package monitor

import "time"

// Status is a point-in-time snapshot of dependency health. PendingWrites
// counts order-index writes waiting in the local buffer for replay.
type Status struct {
	PostgreSQL    bool      `json:"postgresql"`
	Redis         bool      `json:"redis"`
	OrderBuffer   bool      `json:"order_buffer"`
	PendingWrites int       `json:"pending_writes"`
	LastCheck     time.Time `json:"last_check"`
}
