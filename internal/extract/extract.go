// Package extract implements the analyzer: it assembles a few-shot prompt for
// an analysis task, makes a single blocking call to the configured model, and
// relays the labeled spans the model returns. There is deliberately no retry,
// backoff, or caching here.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"grammar-lens/internal/examples"
	"grammar-lens/internal/llm"
)

// Depth controls how much detail the model is asked to attach to each span.
type Depth string

const (
	DepthBasic    Depth = "basic"    // class and grammatical role only
	DepthDetailed Depth = "detailed" // full attributes: meaning, usage, level
)

// Valid reports whether d names a supported depth.
func (d Depth) Valid() bool {
	return d == DepthBasic || d == DepthDetailed
}

// Span is one labeled substring of the analyzed text. Start and End are rune
// offsets, end exclusive; the engine guarantees 0 <= Start <= End <= length
// on every span it returns.
type Span struct {
	Class      string            `json:"class"`
	Text       string            `json:"text"`
	Start      int               `json:"start"`
	End        int               `json:"end"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Request describes one analysis invocation.
type Request struct {
	Text     string
	Task     examples.Task
	Model    string // optional model id override
	Depth    Depth
	Language examples.Language
}

// Result is the outcome of one analysis call.
type Result struct {
	ID    uuid.UUID `json:"analysis_id"`
	Text  string    `json:"text"`
	Model string    `json:"model,omitempty"`
	Spans []Span    `json:"spans"`
}

// Engine delegates analysis to an LLM provider.
type Engine struct {
	client llm.Client
	log    *slog.Logger
}

// NewEngine builds an engine on top of an LLM client.
func NewEngine(client llm.Client, log *slog.Logger) *Engine {
	return &Engine{client: client, log: log}
}

// Analyze runs one synchronous analysis round trip. All failure modes
// (missing key, network, unparseable output) surface as a single wrapped
// "analysis failed" error.
func (e *Engine) Analyze(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Result{}, fmt.Errorf("analysis failed: empty text")
	}
	if !req.Task.Valid() {
		return Result{}, fmt.Errorf("analysis failed: unknown task %q", req.Task)
	}
	if req.Depth == "" {
		req.Depth = DepthDetailed
	}
	if req.Language == "" {
		req.Language = examples.LangChinese
	}

	reply, err := e.client.Complete(ctx, llm.Request{
		Model:  req.Model,
		System: systemPrompt(req),
		User:   userPrompt(req),
	})
	if err != nil {
		return Result{}, fmt.Errorf("analysis failed: %w", err)
	}

	raw, err := parseSpans(reply)
	if err != nil {
		return Result{}, fmt.Errorf("analysis failed: %w", err)
	}

	spans := e.alignSpans(req.Text, raw)
	return Result{
		ID:    uuid.New(),
		Text:  req.Text,
		Model: req.Model,
		Spans: spans,
	}, nil
}
