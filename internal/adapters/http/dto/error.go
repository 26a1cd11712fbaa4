package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document. Kind and Retryable let the
// page choose between sending the user to log in, offering a retry and
// showing the message as is.
type ErrorResponse struct {
	Type      string        `json:"type"`
	Title     string        `json:"title"`
	Status    int           `json:"status"`
	Detail    string        `json:"detail,omitempty"`
	Instance  string        `json:"instance,omitempty"`
	Kind      domain.Kind   `json:"kind,omitempty"`
	Retryable bool          `json:"retryable"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one invalid field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statuses is checked in order; the first match wins.
var statuses = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusServiceUnavailable},
	{domain.ErrTransport, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusOf(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.target) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse describes err for the browser. Detail is the
// user-facing message for the error's kind; the error text itself can name
// upstream hosts and is never copied.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusOf(err)
	msg, retryable := domain.UserMessage(err)

	resp := ErrorResponse{
		Type:      "about:blank",
		Title:     http.StatusText(status),
		Status:    status,
		Detail:    msg,
		Instance:  r.RequestURI,
		Kind:      domain.KindOf(err),
		Retryable: retryable,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, field := range slices.Sorted(maps.Keys(verr.Fields)) {
			resp.Errors = append(resp.Errors, ErrorDetail{Location: "body." + field, Message: verr.Fields[field]})
		}
	}
	return resp
}

// WriteErrorResponse sends err as application/problem+json. 5xx answers
// are logged with the full error first.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	ctx := r.Context()
	log := logging.FromContext(ctx)

	if resp.Status >= http.StatusInternalServerError {
		log.ErrorContext(ctx, "request failed", slog.Int("status", resp.Status), slog.Any("error", err))
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		log.WarnContext(ctx, "writing problem response", slog.Any("error", encErr))
	}
}
