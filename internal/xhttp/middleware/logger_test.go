package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mihrab-app/mihrab/internal/xslog"
)

func TestLoggerInjectsRequestScopedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xslog.FromContext(r.Context()).InfoContext(r.Context(), "handled")
	})

	wrapped := Chain(handler, RequestID(), Logger(base))

	req := httptest.NewRequest(http.MethodGet, "/v1/next", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, "handled") {
		t.Fatalf("handler log did not flow through the injected logger: %q", out)
	}
	if !strings.Contains(out, "request_id=") {
		t.Errorf("log line missing request_id attr: %q", out)
	}
}

func TestLoggerWithoutRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xslog.FromContext(r.Context()).InfoContext(r.Context(), "handled")
	})

	wrapped := Logger(base)(handler)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, "handled") {
		t.Fatalf("handler log did not flow through the injected logger: %q", out)
	}
	if strings.Contains(out, "request_id=") {
		t.Errorf("unexpected request_id attr without the upstream middleware: %q", out)
	}
}
