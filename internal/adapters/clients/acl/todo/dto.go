// Package todo implements the Anti-Corruption Layer translators for the
// remote service's todo resources.
package todo

// TodoDTO matches the remote Todo schema.
type TodoDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	UserID      int64  `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateTodoRequestDTO matches the remote CreateTodoRequest schema.
type CreateTodoRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateTodoRequestDTO matches the remote UpdateTodoRequest schema.
// All fields are optional; nil means "do not change this field".
type UpdateTodoRequestDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// BatchRequestDTO is the body of both batch endpoints.
type BatchRequestDTO struct {
	IDs []int64 `json:"ids"`
}

// FailedItemDTO is one entry of a batch response's failed list.
type FailedItemDTO struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

// BatchCompleteResponseDTO matches POST /todos/batch-complete.
type BatchCompleteResponseDTO struct {
	Succeeded []TodoDTO       `json:"succeeded"`
	Failed    []FailedItemDTO `json:"failed"`
}

// BatchDeleteResponseDTO matches POST /todos/batch-delete.
type BatchDeleteResponseDTO struct {
	Succeeded []int64         `json:"succeeded"`
	Failed    []FailedItemDTO `json:"failed"`
}
