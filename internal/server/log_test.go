package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordtrie/pkg/trie"
)

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should return default logger when none set")
	}
}

func TestWithLogger(t *testing.T) {
	logger := log.New(&bytes.Buffer{})
	if got := loggerFromContext(withLogger(context.Background(), logger)); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestRequestLoggerCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(trie.New(), Options{Logger: logger})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/words", strings.NewReader(`{"words": ["hi"]}`))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	out := buf.String()
	if !strings.Contains(out, "inserted words") {
		t.Errorf("handler log missing: %q", out)
	}
	if !strings.Contains(out, "request_id=") {
		t.Errorf("request_id missing from log: %q", out)
	}
	if !strings.Contains(out, "status=200") {
		t.Errorf("access log missing status: %q", out)
	}
}
