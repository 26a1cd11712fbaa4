// Package middleware holds the inbound pipeline of the web frontend. The
// server installs it in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging,
//	ForwardSession, Timeout
//
// SessionGate is applied by the router to the /todos group only.
package middleware

import "net/http"

// statusRecorder remembers the status a handler sent so the outer
// middleware can log, trace and recover with it.
type statusRecorder struct {
	http.ResponseWriter

	status int
	sent   bool
	bytes  int64
}

func record(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.sent {
		return
	}
	s.status, s.sent = code, true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.sent = true
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
