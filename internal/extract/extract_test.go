package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"grammar-lens/internal/examples"
	"grammar-lens/internal/llm"
)

const foxSentence = "The quick brown fox jumps over the lazy dog."

func newTestEngine(client llm.Client) *Engine {
	return NewEngine(client, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAnalyzeRelaysSpans(t *testing.T) {
	reply := `[
		{"class":"subject","text":"The quick brown fox","start":0,"end":19,"attributes":{"role":"主语"}},
		{"class":"verb","text":"jumps","start":20,"end":25,"attributes":{"tense":"present"}},
		{"class":"adverbial","text":"over the lazy dog","start":26,"end":43}
	]`
	mockLLM := &llm.MockClient{}
	mockLLM.On("Complete", mock.Anything, mock.Anything).Return(reply, nil).Once()

	res, err := newTestEngine(mockLLM).Analyze(context.Background(), Request{
		Text: foxSentence,
		Task: examples.TaskGrammar,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(res.Spans))
	}
	if res.Spans[0].Class != "subject" || res.Spans[0].Start != 0 || res.Spans[0].End != 19 {
		t.Errorf("unexpected first span: %+v", res.Spans[0])
	}
	if res.Spans[0].Attributes["role"] != "主语" {
		t.Errorf("expected role attribute, got %v", res.Spans[0].Attributes)
	}
	if res.ID.String() == "" {
		t.Error("expected non-empty analysis id")
	}
	mockLLM.AssertExpectations(t)
}

func TestAnalyzeToleratesFencedOutput(t *testing.T) {
	reply := "Here is the analysis:\n```json\n[{\"class\":\"verb\",\"text\":\"jumps\",\"start\":20,\"end\":25}]\n```\nDone."
	mockLLM := &llm.MockClient{}
	mockLLM.On("Complete", mock.Anything, mock.Anything).Return(reply, nil).Once()

	res, err := newTestEngine(mockLLM).Analyze(context.Background(), Request{
		Text: foxSentence,
		Task: examples.TaskGrammar,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Spans) != 1 || res.Spans[0].Text != "jumps" {
		t.Fatalf("unexpected spans: %+v", res.Spans)
	}
}

func TestAnalyzeRealignsWrongOffsets(t *testing.T) {
	// The model quotes the right text but claims offsets shifted by two.
	reply := `[{"class":"verb","text":"jumps","start":22,"end":27}]`
	mockLLM := &llm.MockClient{}
	mockLLM.On("Complete", mock.Anything, mock.Anything).Return(reply, nil).Once()

	res, err := newTestEngine(mockLLM).Analyze(context.Background(), Request{
		Text: foxSentence,
		Task: examples.TaskGrammar,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Spans) != 1 {
		t.Fatalf("expected span to survive realignment, got %d spans", len(res.Spans))
	}
	if res.Spans[0].Start != 20 || res.Spans[0].End != 25 {
		t.Errorf("expected realigned [20,25), got [%d,%d)", res.Spans[0].Start, res.Spans[0].End)
	}
}

func TestAnalyzeRealignmentPrefersNearestOccurrence(t *testing.T) {
	text := "the cat saw the dog near the cat"
	// "the cat" occurs at 0 and 25; a claimed start of 20 must pick 25.
	reply := `[{"class":"subject","text":"the cat","start":20,"end":27}]`
	mockLLM := &llm.MockClient{}
	mockLLM.On("Complete", mock.Anything, mock.Anything).Return(reply, nil).Once()

	res, err := newTestEngine(mockLLM).Analyze(context.Background(), Request{
		Text: text,
		Task: examples.TaskGrammar,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Spans) != 1 || res.Spans[0].Start != 25 {
		t.Fatalf("expected nearest occurrence at 25, got %+v", res.Spans)
	}
}

func TestAnalyzeDropsUnlocatableSpans(t *testing.T) {
	reply := `[
		{"class":"verb","text":"jumps","start":20,"end":25},
		{"class":"subject","text":"A slow red cat","start":0,"end":14},
		{"class":"verb","text":"","start":1,"end":2}
	]`
	mockLLM := &llm.MockClient{}
	mockLLM.On("Complete", mock.Anything, mock.Anything).Return(reply, nil).Once()

	res, err := newTestEngine(mockLLM).Analyze(context.Background(), Request{
		Text: foxSentence,
		Task: examples.TaskGrammar,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Spans) != 1 {
		t.Fatalf("expected 1 surviving span, got %d", len(res.Spans))
	}
	runes := []rune(foxSentence)
	for _, sp := range res.Spans {
		if sp.Start < 0 || sp.Start > sp.End || sp.End > len(runes) {
			t.Errorf("span %+v violates offset bounds", sp)
		}
	}
}

func TestAnalyzeOffsetsAreRuneBased(t *testing.T) {
	text := "他说 the early bird catches the worm 对吗"
	reply := `[{"class":"idiom","text":"the early bird catches the worm","start":3,"end":34}]`
	mockLLM := &llm.MockClient{}
	mockLLM.On("Complete", mock.Anything, mock.Anything).Return(reply, nil).Once()

	res, err := newTestEngine(mockLLM).Analyze(context.Background(), Request{
		Text: text,
		Task: examples.TaskPhrase,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(res.Spans))
	}
	runes := []rune(text)
	sp := res.Spans[0]
	if got := string(runes[sp.Start:sp.End]); got != sp.Text {
		t.Errorf("rune slice [%d,%d) yields %q, span says %q", sp.Start, sp.End, got, sp.Text)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		reply   string
		llmErr  error
		wantErr string
	}{
		{
			name:    "empty text",
			req:     Request{Text: "   ", Task: examples.TaskGrammar},
			wantErr: "analysis failed",
		},
		{
			name:    "unknown task",
			req:     Request{Text: foxSentence, Task: examples.Task("syntax")},
			wantErr: "analysis failed",
		},
		{
			name:    "provider failure",
			req:     Request{Text: foxSentence, Task: examples.TaskGrammar},
			llmErr:  errors.New("401 unauthorized"),
			wantErr: "analysis failed",
		},
		{
			name:    "no JSON in reply",
			req:     Request{Text: foxSentence, Task: examples.TaskGrammar},
			reply:   "I am unable to analyze this sentence.",
			wantErr: "analysis failed",
		},
		{
			name:    "broken JSON",
			req:     Request{Text: foxSentence, Task: examples.TaskGrammar},
			reply:   `[{"class":"verb","text":"jumps",`,
			wantErr: "analysis failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLLM := &llm.MockClient{}
			mockLLM.On("Complete", mock.Anything, mock.Anything).Return(tt.reply, tt.llmErr)

			_, err := newTestEngine(mockLLM).Analyze(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPromptsIncludeDemonstrationsAndText(t *testing.T) {
	req := Request{
		Text:     foxSentence,
		Task:     examples.TaskGrammar,
		Depth:    DepthDetailed,
		Language: examples.LangChinese,
	}
	user := userPrompt(req)
	if !strings.Contains(user, foxSentence) {
		t.Error("user prompt missing the sentence under analysis")
	}
	if !strings.Contains(user, "She gave me a beautiful gift yesterday.") {
		t.Error("user prompt missing few-shot demonstration")
	}
	if !strings.Contains(user, `"start"`) {
		t.Error("demonstrations should be serialized as JSON with offsets")
	}

	sys := systemPrompt(req)
	if !strings.Contains(sys, "JSON array") {
		t.Error("system prompt missing output format contract")
	}

	basic := systemPrompt(Request{Text: foxSentence, Task: examples.TaskGrammar, Depth: DepthBasic})
	if !strings.Contains(basic, "minimal") {
		t.Error("basic depth should restrict attributes")
	}
}

func TestSummarize(t *testing.T) {
	res := Result{
		Text: foxSentence,
		Spans: []Span{
			{Class: "subject", Start: 0, End: 19},
			{Class: "verb", Start: 20, End: 25},
			{Class: "adverbial", Start: 26, End: 43},
		},
	}
	stats := Summarize(res)
	if stats.TotalSpans != 3 {
		t.Errorf("expected 3 spans, got %d", stats.TotalSpans)
	}
	if stats.ByClass["verb"] != 1 {
		t.Errorf("expected 1 verb, got %d", stats.ByClass["verb"])
	}
	if stats.TextLength != 44 {
		t.Errorf("expected length 44, got %d", stats.TextLength)
	}
	want := float64(19+5+17) / 44 * 100
	if stats.CoveragePct < want-0.01 || stats.CoveragePct > want+0.01 {
		t.Errorf("expected coverage %.1f, got %.1f", want, stats.CoveragePct)
	}
}

func TestSummarizeEmptyText(t *testing.T) {
	stats := Summarize(Result{})
	if stats.CoveragePct != 0 {
		t.Errorf("expected 0 coverage for empty text, got %f", stats.CoveragePct)
	}
}
