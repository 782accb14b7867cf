package transport

// CreateTodoRequest is the body accepted by POST /api/todos.
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateTodoRequest is the body accepted by PUT /api/todos/{id}. Every field
// is optional; pointers distinguish "absent" from zero values.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Empty reports whether the update carries no fields at all.
func (r UpdateTodoRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Completed == nil
}
