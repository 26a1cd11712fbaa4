package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/atsushi-h/go-todo/internal/platform/httpclient"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
)

// caller runs one JSON exchange with the todo service and turns every
// failure into a domain error.
type caller struct {
	client *httpclient.Client
	logger *slog.Logger
}

// call sends in as the JSON body when non-nil and decodes a 2xx answer into
// out when out is non-nil and the status is not 204.
func (c caller) call(ctx context.Context, method, path string, in, out any) error {
	op := method + " " + path

	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", op, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("building %s: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				c.logger.WarnContext(ctx, "closing response body", slog.String("operation", op), slog.Any("error", cerr))
			}
		}()
	}

	switch {
	case resp != nil && !ok(resp.StatusCode):
		// Also covers a retry budget spent on 429 or 5xx: the response
		// says more than the retry error.
		return c.rejected(ctx, op, resp)
	case err != nil:
		if ctx.Err() == nil {
			c.logger.ErrorContext(ctx, "request failed", slog.String("operation", op), slog.Any("error", err))
		}
		return TranslateTransportError(op, err)
	case out == nil || resp.StatusCode == http.StatusNoContent:
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", op, err)
	}
	return nil
}

func (c caller) rejected(ctx context.Context, op string, resp *http.Response) error {
	err := TranslateHTTPError(resp)
	level := slog.LevelWarn
	if resp.StatusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	c.logger.Log(ctx, level, "request rejected",
		slog.String("operation", op),
		slog.Int("status", resp.StatusCode),
		slog.Any("error", err),
	)
	return err
}

func ok(code int) bool {
	return code >= 200 && code < 300
}

func newCaller(client *httpclient.Client, logger *slog.Logger) caller {
	return caller{client: client, logger: logging.OrDiscard(logger)}
}
