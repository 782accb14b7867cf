package domain

import "time"

// Todo is the single entity this service manages.
// Description is a pointer so an absent value round-trips as JSON null,
// matching the nullable column.
type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
