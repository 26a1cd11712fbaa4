// Package acl implements the Anti-Corruption Layer between the remote todo
// service's JSON representations and domain types. Resource translators live
// in subpackages (acl/todo, acl/user); shared error mapping lives here.
package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sony/gobreaker/v2"

	"github.com/atsushi-h/go-todo/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody covers both error shapes the service emits: the generated
// handlers' {"message": ...} and RFC 9457 problem details.
type errorBody struct {
	Message string        `json:"message"`
	Error   string        `json:"error"`
	Detail  string        `json:"detail"`
	Errors  []errorDetail `json:"errors"`
}

// errorDetail is a single field-level error within a problem details body.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (b errorBody) text() string {
	for _, s := range []string{b.Detail, b.Message, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// TranslateHTTPError maps an HTTP error response to a domain error.
//
//	400, 422 -> ErrValidation (*domain.ValidationError when fields are listed)
//	401      -> ErrUnauthorized
//	403      -> ErrForbidden
//	404      -> ErrNotFound
//	409      -> ErrConflict
//	429, 5xx -> ErrUnavailable
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	detail := body.text()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			return toValidationError(body.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case code == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnauthorized)

	case code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case code == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

// TranslateTransportError maps an error returned before any usable response
// was received. Cancellation passes through unchanged so callers can tell an
// aborted call from a failed one.
func TranslateTransportError(op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrTransport, err)
	}
}

// parseErrorBody reads a JSON error body. Plain-text bodies yield a Message
// with the trimmed text. Returns an empty errorBody when nothing is usable.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if strings.Contains(ct, "json") {
		var body errorBody
		if err := json.Unmarshal(raw, &body); err == nil {
			return body
		}
		return errorBody{}
	}

	if strings.HasPrefix(ct, "text/plain") {
		return errorBody{Message: strings.TrimSpace(string(raw))}
	}
	return errorBody{}
}

// toValidationError converts field-level error details to a domain
// ValidationError. It strips the "body." prefix from locations.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
