package words

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wordtrie/pkg/errors"
)

// replyWith returns a generateContent response whose text part is text.
func replyWith(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{
				"role":  "model",
				"parts": []any{map[string]any{"text": text}},
			}},
		},
	}
}

func newFakeGemini(t *testing.T, handler http.HandlerFunc) (*Gemini, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	g := NewGemini(GeminiConfig{
		APIKey:     "test-key",
		Endpoint:   srv.URL,
		Attempts:   3,
		RetryDelay: time.Millisecond,
	})
	return g, &calls
}

func TestGeminiWords(t *testing.T) {
	g, calls := newFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) && assert.Len(t, req.Contents, 1) {
			assert.Contains(t, req.Contents[0].Parts[0].Text, "Generate exactly 5 unique single words related to 'space'")
		}
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)
		if assert.NotNil(t, req.GenerationConfig.ResponseSchema) {
			assert.Equal(t, "ARRAY", req.GenerationConfig.ResponseSchema.Properties["words"].Type)
		}

		_ = json.NewEncoder(w).Encode(replyWith(`{"words": ["Planet", "orbit", "planet", " Comet "]}`))
	})

	words, err := g.Words(context.Background(), "space", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"planet", "orbit", "comet"}, words)
	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, "gemini/gemini-2.5-flash", g.Name())
}

func TestGeminiTruncatesToCount(t *testing.T) {
	g, _ := newFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(replyWith(`{"words": ["a", "b", "c", "d"]}`))
	})

	words, err := g.Words(context.Background(), "letters", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, words)
}

func TestGeminiErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      any
		wantCode  errors.Code
		wantCalls int32
	}{
		{"rate limited", http.StatusTooManyRequests, map[string]any{}, errors.ErrCodeRateLimited, 1},
		{"unauthorized", http.StatusUnauthorized, map[string]any{}, errors.ErrCodeUnauthorized, 1},
		{"forbidden", http.StatusForbidden, map[string]any{}, errors.ErrCodeUnauthorized, 1},
		{"server error retried", http.StatusServiceUnavailable, map[string]any{}, errors.ErrCodeNetwork, 3},
		{"bad request", http.StatusBadRequest, map[string]any{}, errors.ErrCodeNetwork, 1},
		{"no candidates", http.StatusOK, map[string]any{"candidates": []any{}}, errors.ErrCodeInvalidResponse, 1},
		{"text not json", http.StatusOK, replyWith("planet, orbit"), errors.ErrCodeInvalidResponse, 1},
		{"empty list", http.StatusOK, replyWith(`{"words": ["", " "]}`), errors.ErrCodeInvalidResponse, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, calls := newFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.body)
			})

			_, err := g.Words(context.Background(), "space", 5)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err), "err = %v", err)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestGeminiMissingKey(t *testing.T) {
	g := NewGemini(GeminiConfig{Endpoint: "http://127.0.0.1:1"})
	_, err := g.Words(context.Background(), "space", 5)
	assert.True(t, errors.Is(err, errors.ErrCodeUnauthorized), "got %v", err)
}

func TestGeminiValidatesInput(t *testing.T) {
	g := NewGemini(GeminiConfig{APIKey: "k", Endpoint: "http://127.0.0.1:1"})

	_, err := g.Words(context.Background(), "", 5)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidTheme), "got %v", err)

	_, err = g.Words(context.Background(), "space", 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
}

func TestGeminiNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	g := NewGemini(GeminiConfig{APIKey: "k", Endpoint: srv.URL, Attempts: 2, RetryDelay: time.Millisecond})
	_, err := g.Words(context.Background(), "space", 5)
	assert.True(t, errors.Is(err, errors.ErrCodeNetwork), "got %v", err)
}
