package extract

// Stats summarize one analysis result for display.
type Stats struct {
	TotalSpans  int            `json:"total_spans"`
	ByClass     map[string]int `json:"by_class"`
	TextLength  int            `json:"text_length"`
	CoveragePct float64        `json:"coverage_pct"`
}

// Summarize counts spans per class and the share of characters covered.
// Overlapping spans count their characters once each, mirroring how the
// coverage figure reads as "annotation density" rather than a strict ratio.
func Summarize(res Result) Stats {
	s := Stats{
		ByClass:    make(map[string]int),
		TextLength: len([]rune(res.Text)),
	}
	covered := 0
	for _, sp := range res.Spans {
		s.TotalSpans++
		s.ByClass[sp.Class]++
		covered += sp.End - sp.Start
	}
	if s.TextLength > 0 {
		s.CoveragePct = float64(covered) / float64(s.TextLength) * 100
	}
	return s
}
