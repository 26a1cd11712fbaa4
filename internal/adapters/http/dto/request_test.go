package dto_test

import (
	"errors"
	"testing"

	"github.com/atsushi-h/go-todo/internal/adapters/http/dto"
	"github.com/atsushi-h/go-todo/internal/domain"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		wantField string
	}{
		{name: "title only", req: dto.CreateTodoRequest{Title: "Buy milk"}},
		{name: "title and description", req: dto.CreateTodoRequest{Title: "Buy milk", Description: "2 liters"}},
		{name: "empty title", req: dto.CreateTodoRequest{}, wantField: "title"},
		{name: "whitespace title", req: dto.CreateTodoRequest{Title: " \t\n"}, wantField: "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		wantField string
	}{
		{name: "completed only", req: dto.UpdateTodoRequest{Completed: boolPtr(true)}},
		{name: "uncomplete", req: dto.UpdateTodoRequest{Completed: boolPtr(false)}},
		{name: "clear description", req: dto.UpdateTodoRequest{Description: stringPtr("")}},
		{name: "nothing set", req: dto.UpdateTodoRequest{}, wantField: "body"},
		{name: "blank title", req: dto.UpdateTodoRequest{Title: stringPtr("   ")}, wantField: "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateTodoRequest_ToPatch(t *testing.T) {
	t.Parallel()

	req := dto.UpdateTodoRequest{
		Title:     stringPtr("  Walk the dog "),
		Completed: boolPtr(true),
	}
	p := req.ToPatch()

	if p.Title == nil || *p.Title != "Walk the dog" {
		t.Errorf("Title = %v, want trimmed %q", p.Title, "Walk the dog")
	}
	if p.Description != nil {
		t.Errorf("Description = %q, want nil", *p.Description)
	}
	if p.Completed == nil || !*p.Completed {
		t.Errorf("Completed = %v, want true", p.Completed)
	}

	*req.Completed = false
	if !*p.Completed {
		t.Error("patch aliases the request's Completed field")
	}
}

func TestBatchRequest_UsesSelection(t *testing.T) {
	t.Parallel()

	if !(&dto.BatchRequest{}).UsesSelection() {
		t.Error("empty request should use the selection")
	}
	if (&dto.BatchRequest{IDs: []int64{1}}).UsesSelection() {
		t.Error("explicit ids should not use the selection")
	}
}
