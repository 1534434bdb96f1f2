package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerLogsMethodAndPath(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	h := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/employees/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one log entry, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["method"] != "GET" || fields["path"] != "/employees/" || fields["request_id"] != "req-123" {
		t.Fatalf("unexpected fields %v", fields)
	}
	if fields["status"] != int64(http.StatusNoContent) {
		t.Fatalf("status field = %v, want 204", fields["status"])
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	h := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/up", nil))
	fields := logs.All()[0].ContextMap()
	if fields["status"] != int64(http.StatusOK) || fields["bytes"] != int64(2) {
		t.Fatalf("unexpected fields %v", fields)
	}
	if _, ok := fields["latency"]; !ok {
		t.Fatalf("missing latency field: %v", fields)
	}
	if fields["request_id"] != "-" {
		t.Fatalf("request_id = %v, want -", fields["request_id"])
	}
}

func TestNewNamesLogger(t *testing.T) {
	t.Parallel()

	logger, err := New("web", true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected debug level enabled")
	}
}
