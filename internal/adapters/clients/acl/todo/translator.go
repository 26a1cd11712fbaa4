package todo

import (
	"time"

	domtodo "github.com/atsushi-h/go-todo/internal/domain/todo"
)

// ToDomainTodo converts a remote TodoDTO to a domain Todo, parsing RFC 3339
// timestamps. Unparseable timestamps become the zero time.
func ToDomainTodo(dto *TodoDTO) domtodo.Todo {
	return domtodo.Todo{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Completed:   dto.Completed,
		UserID:      dto.UserID,
		CreatedAt:   parseTime(dto.CreatedAt),
		UpdatedAt:   parseTime(dto.UpdatedAt),
	}
}

// ToDomainTodoList converts a remote todo list. A null list becomes an
// empty, non-nil slice.
func ToDomainTodoList(dtos []TodoDTO) []domtodo.Todo {
	todos := make([]domtodo.Todo, len(dtos))
	for i := range dtos {
		todos[i] = ToDomainTodo(&dtos[i])
	}
	return todos
}

// ToCreateTodoRequest converts a validated draft.
func ToCreateTodoRequest(d domtodo.Draft) CreateTodoRequestDTO {
	return CreateTodoRequestDTO{
		Title:       d.Title,
		Description: d.Description,
	}
}

// ToUpdateTodoRequest converts a patch. Only the fields set on the patch
// are sent, so a completed toggle never overwrites an edited title.
func ToUpdateTodoRequest(p domtodo.Patch) UpdateTodoRequestDTO {
	return UpdateTodoRequestDTO{
		Title:       p.Title,
		Description: p.Description,
		Completed:   p.Completed,
	}
}

// ToBatchRequest converts a batch request.
func ToBatchRequest(req domtodo.BatchRequest) BatchRequestDTO {
	return BatchRequestDTO{IDs: req.IDs()}
}

// ToDomainBatchComplete reconciles a batch-complete response against the
// request. Success is implied by absence from the failed list.
func ToDomainBatchComplete(req domtodo.BatchRequest, dto *BatchCompleteResponseDTO) domtodo.BatchResult {
	result := domtodo.Reconcile(req, toFailedItems(dto.Failed))
	result.Completed = ToDomainTodoList(dto.Succeeded)
	return result
}

// ToDomainBatchDelete reconciles a batch-delete response against the request.
func ToDomainBatchDelete(req domtodo.BatchRequest, dto *BatchDeleteResponseDTO) domtodo.BatchResult {
	return domtodo.Reconcile(req, toFailedItems(dto.Failed))
}

func toFailedItems(dtos []FailedItemDTO) []domtodo.FailedItem {
	items := make([]domtodo.FailedItem, len(dtos))
	for i, f := range dtos {
		items[i] = domtodo.FailedItem{ID: f.ID, Reason: f.Error}
	}
	return items
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
