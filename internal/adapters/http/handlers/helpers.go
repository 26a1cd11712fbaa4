package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/atsushi-h/go-todo/internal/adapters/http/dto"
	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
)

const maxBodyBytes = 1 << 20

var errMalformedBody = &domain.ValidationError{Fields: map[string]string{"body": "invalid JSON"}}

// pathID reads the {id} route parameter as a positive todo id.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Fields: map[string]string{"id": "must be a positive integer"}}
	}
	return id, nil
}

// respond writes v as JSON with status.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response", slog.Any("error", err))
	}
}

// bind decodes the JSON body into dst, answering 400 itself on failure.
// With optional set an empty body is accepted and leaves dst unchanged.
func bind(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	dto.WriteErrorResponse(w, r, errMalformedBody)
	return false
}

type validatable interface {
	Validate() error
}

// bindValid is bind for a required body followed by dst.Validate.
func bindValid(w http.ResponseWriter, r *http.Request, dst validatable) bool {
	if !bind(w, r, dst, false) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
