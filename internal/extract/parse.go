package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// rawSpan is what the model claims before alignment. Attribute values arrive
// as arbitrary JSON; they are stringified during alignment.
type rawSpan struct {
	Class      string         `json:"class"`
	Text       string         `json:"text"`
	Start      int            `json:"start"`
	End        int            `json:"end"`
	Attributes map[string]any `json:"attributes"`
}

// parseSpans decodes the model reply. Models wrap JSON in markdown fences or
// prose often enough that we cut from the first '[' to the last ']'.
func parseSpans(reply string) ([]rawSpan, error) {
	payload := jsonArraySlice(reply)
	if payload == "" {
		return nil, errors.New("no JSON array in model output")
	}
	var raw []rawSpan
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("malformed model output: %w", err)
	}
	return raw, nil
}

func jsonArraySlice(s string) string {
	start := -1
	for i, c := range s {
		if c == '[' {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}
	for i := len(s) - 1; i > start; i-- {
		if s[i] == ']' {
			return s[start : i+1]
		}
	}
	return ""
}

// alignSpans verifies every claimed span against the analyzed text. A span
// whose offsets quote the text exactly is kept as is; otherwise the quoted
// text is searched for and the occurrence nearest the claimed start wins.
// Spans whose text cannot be located are dropped, which also enforces
// 0 <= start <= end <= len(text) on everything returned.
func (e *Engine) alignSpans(text string, raw []rawSpan) []Span {
	runes := []rune(text)
	out := make([]Span, 0, len(raw))
	for _, r := range raw {
		if r.Text == "" || r.Class == "" {
			continue
		}
		start, end, ok := locate(runes, r)
		if !ok {
			e.log.Warn("dropping span not found in text",
				"class", r.Class, "text", r.Text, "claimed_start", r.Start, "claimed_end", r.End)
			continue
		}
		out = append(out, Span{
			Class:      r.Class,
			Text:       string(runes[start:end]),
			Start:      start,
			End:        end,
			Attributes: stringAttrs(r.Attributes),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

func locate(runes []rune, r rawSpan) (int, int, bool) {
	want := []rune(r.Text)
	if len(want) == 0 || len(want) > len(runes) {
		return 0, 0, false
	}
	if r.Start >= 0 && r.Start <= r.End && r.End <= len(runes) && string(runes[r.Start:r.End]) == r.Text {
		return r.Start, r.End, true
	}
	best, found := -1, false
	for i := 0; i+len(want) <= len(runes); i++ {
		if !runesEqual(runes[i:i+len(want)], want) {
			continue
		}
		if !found || abs(i-r.Start) < abs(best-r.Start) {
			best, found = i, true
		}
	}
	if !found {
		return 0, 0, false
	}
	return best, best + len(want), true
}

func runesEqual(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func stringAttrs(attrs map[string]any) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		switch t := v.(type) {
		case string:
			out[k] = t
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(t)
		case nil:
			// skip
		default:
			out[k] = fmt.Sprintf("%v", t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
