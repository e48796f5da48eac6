package model

import "time"

// Todo is the domain model for one task.
// ID is assigned by the store and never changes; Completed only moves to true.
type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Status is the human label for the completion flag.
func (t Todo) Status() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}
