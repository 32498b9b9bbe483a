package words

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/wordtrie/pkg/errors"
	"github.com/matzehuels/wordtrie/pkg/httputil"
	"github.com/matzehuels/wordtrie/pkg/observability"
)

const (
	// DefaultModel is the Gemini model asked for word lists.
	DefaultModel = "gemini-2.5-flash"
	// DefaultEndpoint is the Generative Language REST base URL.
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	// APIKeyEnv is the environment variable holding the API key.
	APIKeyEnv = "GOOGLE_API_KEY"

	maxErrorBody = 4 << 10
)

// GeminiConfig configures a [Gemini] source. Zero values take defaults.
type GeminiConfig struct {
	APIKey     string
	Model      string
	Endpoint   string
	Timeout    time.Duration
	Attempts   int           // total tries for transient failures (default 3)
	RetryDelay time.Duration // first backoff delay (default 1s)
	Logger     *log.Logger
	HTTPClient *http.Client
}

// Gemini generates themed word lists with the Gemini generateContent API.
type Gemini struct {
	apiKey   string
	model    string
	endpoint string
	attempts int
	delay    time.Duration
	http     *http.Client
	logger   *log.Logger
}

// NewGemini creates a Gemini source from cfg.
func NewGemini(cfg GeminiConfig) *Gemini {
	g := &Gemini{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		attempts: cfg.Attempts,
		delay:    cfg.RetryDelay,
		http:     cfg.HTTPClient,
		logger:   cfg.Logger,
	}
	if g.model == "" {
		g.model = DefaultModel
	}
	if g.endpoint == "" {
		g.endpoint = DefaultEndpoint
	}
	if g.attempts <= 0 {
		g.attempts = 3
	}
	if g.delay <= 0 {
		g.delay = time.Second
	}
	if g.http == nil {
		g.http = httputil.NewClient(cfg.Timeout)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// Name implements Source.
func (g *Gemini) Name() string { return "gemini/" + g.model }

// Words asks the model for count unique single words about theme.
//
// Failures carry a pkg/errors code: UNAUTHORIZED (no key, 401, 403),
// RATE_LIMITED (429), NETWORK_ERROR (transport failures and 5xx, retried with
// backoff) and INVALID_RESPONSE (undecodable reply or no usable words).
func (g *Gemini) Words(ctx context.Context, theme string, count int) ([]string, error) {
	if err := errors.ValidateTheme(theme); err != nil {
		return nil, err
	}
	if err := errors.ValidateCount(count); err != nil {
		return nil, err
	}
	if g.apiKey == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized, "%s is not set", APIKeyEnv)
	}

	logger := g.logger.With("request_id", uuid.NewString(), "model", g.model)
	hooks := observability.Source()
	hooks.OnGenerateStart(ctx, g.Name(), theme, count)
	start := time.Now()

	body, err := json.Marshal(g.buildRequest(theme, count))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var words []string
	err = httputil.Retry(ctx, g.attempts, g.delay, func() error {
		logger.Debug("generating words", "theme", theme, "count", count)
		var err error
		words, err = g.generate(ctx, body)
		if err != nil {
			logger.Debug("generation attempt failed", "error", err)
		}
		return err
	})
	hooks.OnGenerateComplete(ctx, g.Name(), theme, len(words), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if len(words) > count {
		words = words[:count]
	}
	logger.Debug("generated words", "theme", theme, "words", len(words), "duration", time.Since(start))
	return words, nil
}

func (g *Gemini) generate(ctx context.Context, body []byte) ([]string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", g.endpoint, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "generate words")
		}
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "generate words")}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidResponse, err, "decode response")
	}
	return parseCandidates(out)
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	if code == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := strings.TrimSpace(string(msg))

	switch {
	case code == http.StatusTooManyRequests:
		after := httputil.RetryAfter(resp.Header)
		return errors.Wrap(errors.ErrCodeRateLimited,
			&errors.RateLimitedError{RetryAfter: after, Detail: detail},
			"model quota exhausted")
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return errors.New(errors.ErrCodeUnauthorized, "status %d: %s", code, detail)
	case code >= 500:
		return &httputil.RetryableError{
			Err:   errors.New(errors.ErrCodeNetwork, "status %d: %s", code, detail),
			After: httputil.RetryAfter(resp.Header),
		}
	default:
		return errors.New(errors.ErrCodeNetwork, "status %d: %s", code, detail)
	}
}

func parseCandidates(out generateResponse) ([]string, error) {
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidResponse, "response has no candidates")
	}
	var list wordList
	text := out.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidResponse, err, "decode word list")
	}
	words := Normalize(list.Words)
	if len(words) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidResponse, "model returned no words")
	}
	return words, nil
}

func (g *Gemini) buildRequest(theme string, count int) generateRequest {
	prompt := fmt.Sprintf("Generate exactly %d unique single words related to '%s'. Return JSON:\n"+
		`{"words": ["word1", "word2"]}`, count, theme)
	return generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"words": {Type: "ARRAY", Items: &schema{Type: "STRING"}},
				},
				Required: []string{"words"},
			},
		},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type       string             `json:"type"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Items      *schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

var _ Source = (*Gemini)(nil)
