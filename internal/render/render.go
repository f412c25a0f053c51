// Package render turns analysis results into the two display modes the UI
// offers: inline highlighted text and a grouped tag list. Rendering never
// mutates the span set; a mode switch changes presentation only.
package render

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"grammar-lens/internal/examples"
	"grammar-lens/internal/extract"
)

// Mode selects how spans are displayed.
type Mode string

const (
	ModeHighlight Mode = "highlight"
	ModeTags      Mode = "tags"
)

// Valid reports whether m names a supported display mode.
func (m Mode) Valid() bool {
	return m == ModeHighlight || m == ModeTags
}

// Color pairs a background with a border color for one span class.
type Color struct {
	Background string `json:"background"`
	Border     string `json:"border"`
}

// LegendEntry describes one span class present in a result.
type LegendEntry struct {
	Class string `json:"class"`
	Label string `json:"label"`
	Color Color  `json:"color"`
}

// TagGroup collects the spans of one class for the tag-list mode.
type TagGroup struct {
	Class string         `json:"class"`
	Label string         `json:"label"`
	Spans []extract.Span `json:"spans"`
}

var palette = map[string]Color{
	"subject":              {Background: "#FFE5E5", Border: "#FF6B6B"},
	"verb":                 {Background: "#E5F9F9", Border: "#4ECDC4"},
	"object":               {Background: "#E5F0FF", Border: "#45B7D1"},
	"direct_object":        {Background: "#E5F0FF", Border: "#45B7D1"},
	"indirect_object":      {Background: "#E8F5E9", Border: "#95D5B2"},
	"adverbial":            {Background: "#FFF3E0", Border: "#FFA07A"},
	"phrasal_verb":         {Background: "#E8F5E9", Border: "#98D8C8"},
	"collocation":          {Background: "#E8F5E9", Border: "#98D8C8"},
	"prepositional_phrase": {Background: "#EDE7F6", Border: "#9575CD"},
	"key_word":             {Background: "#FFF9E6", Border: "#F7DC6F"},
	"idiom":                {Background: "#FFEEE5", Border: "#DDA15E"},
	"attributive":          {Background: "#F5E6D3", Border: "#BC6C25"},
	"complement":           {Background: "#E0F7FA", Border: "#A8DADC"},
}

var defaultColor = Color{Background: "#e9ecef", Border: "#adb5bd"}

var classLabels = map[string]map[examples.Language]string{
	"subject":              {examples.LangChinese: "主语", examples.LangEnglish: "subject"},
	"verb":                 {examples.LangChinese: "谓语", examples.LangEnglish: "verb"},
	"object":               {examples.LangChinese: "宾语", examples.LangEnglish: "object"},
	"direct_object":        {examples.LangChinese: "直接宾语", examples.LangEnglish: "direct object"},
	"indirect_object":      {examples.LangChinese: "间接宾语", examples.LangEnglish: "indirect object"},
	"adverbial":            {examples.LangChinese: "状语", examples.LangEnglish: "adverbial"},
	"phrasal_verb":         {examples.LangChinese: "短语动词", examples.LangEnglish: "phrasal verb"},
	"collocation":          {examples.LangChinese: "固定搭配", examples.LangEnglish: "collocation"},
	"prepositional_phrase": {examples.LangChinese: "介词短语", examples.LangEnglish: "prepositional phrase"},
	"key_word":             {examples.LangChinese: "重点词汇", examples.LangEnglish: "key word"},
	"idiom":                {examples.LangChinese: "习语", examples.LangEnglish: "idiom"},
	"attributive":          {examples.LangChinese: "定语", examples.LangEnglish: "attributive"},
	"complement":           {examples.LangChinese: "补语", examples.LangEnglish: "complement"},
}

// ClassColor returns the palette color for a span class.
func ClassColor(class string) Color {
	if c, ok := palette[class]; ok {
		return c
	}
	return defaultColor
}

// ClassLabel returns the localized label for a span class, falling back to
// the raw class name.
func ClassLabel(class string, lang examples.Language) string {
	if l, ok := classLabels[class][lang]; ok {
		return l
	}
	return class
}

// Highlight renders the text with spans wrapped in colored, tooltipped
// <span> elements. Spans starting inside an already-highlighted region are
// skipped; the engine has already bounds-checked everything, so the skip only
// resolves overlaps deterministically.
func Highlight(text string, spans []extract.Span) template.HTML {
	runes := []rune(text)
	sorted := make([]extract.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var b strings.Builder
	last := 0
	for _, sp := range sorted {
		if sp.Start < last || sp.Start > sp.End || sp.End > len(runes) {
			continue
		}
		if sp.Start > last {
			b.WriteString(template.HTMLEscapeString(string(runes[last:sp.Start])))
		}
		color := ClassColor(sp.Class)
		fmt.Fprintf(&b,
			`<span class="hl hl-%s" style="background-color:%s;border-bottom:2px solid %s" title="%s">%s</span>`,
			template.HTMLEscapeString(sp.Class),
			color.Background,
			color.Border,
			template.HTMLEscapeString(tooltip(sp)),
			template.HTMLEscapeString(string(runes[sp.Start:sp.End])),
		)
		last = sp.End
	}
	if last < len(runes) {
		b.WriteString(template.HTMLEscapeString(string(runes[last:])))
	}
	return template.HTML(b.String())
}

// tooltip builds the hover text: class plus attributes in a stable key order.
func tooltip(sp extract.Span) string {
	parts := []string{sp.Class}
	keys := make([]string, 0, len(sp.Attributes))
	for k := range sp.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+": "+sp.Attributes[k])
	}
	return strings.Join(parts, " | ")
}

// GroupByClass collects spans per class in first-seen order for the tag list.
func GroupByClass(spans []extract.Span, lang examples.Language) []TagGroup {
	var order []string
	byClass := make(map[string][]extract.Span)
	for _, sp := range spans {
		if _, seen := byClass[sp.Class]; !seen {
			order = append(order, sp.Class)
		}
		byClass[sp.Class] = append(byClass[sp.Class], sp)
	}
	groups := make([]TagGroup, 0, len(order))
	for _, class := range order {
		groups = append(groups, TagGroup{
			Class: class,
			Label: ClassLabel(class, lang),
			Spans: byClass[class],
		})
	}
	return groups
}

// GroupByLevel collects spans per difficulty level (the "level" attribute)
// in first-seen order. Spans without a level land in an "unknown" bucket.
func GroupByLevel(spans []extract.Span, lang examples.Language) []TagGroup {
	unknown := "未知"
	if lang == examples.LangEnglish {
		unknown = "unknown"
	}
	var order []string
	byLevel := make(map[string][]extract.Span)
	for _, sp := range spans {
		level := sp.Attributes["level"]
		if level == "" {
			level = unknown
		}
		if _, seen := byLevel[level]; !seen {
			order = append(order, level)
		}
		byLevel[level] = append(byLevel[level], sp)
	}
	groups := make([]TagGroup, 0, len(order))
	for _, level := range order {
		groups = append(groups, TagGroup{
			Class: level,
			Label: level,
			Spans: byLevel[level],
		})
	}
	return groups
}

// Legend lists each class present in the spans, once, in first-seen order.
func Legend(spans []extract.Span, lang examples.Language) []LegendEntry {
	var entries []LegendEntry
	seen := make(map[string]bool)
	for _, sp := range spans {
		if seen[sp.Class] {
			continue
		}
		seen[sp.Class] = true
		entries = append(entries, LegendEntry{
			Class: sp.Class,
			Label: ClassLabel(sp.Class, lang),
			Color: ClassColor(sp.Class),
		})
	}
	return entries
}
