package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"grammar-lens/internal/examples"
)

// systemPrompt combines the task description with strict output-format rules.
func systemPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(examples.Prompt(req.Task, req.Language))
	b.WriteString("\n\n")
	b.WriteString(`Output format: respond with a single JSON array and nothing else. Each element is an object:
{"class": "<category>", "text": "<exact quote from the sentence>", "start": <int>, "end": <int>, "attributes": {<string key-value pairs>}}
"start" and "end" are character offsets into the sentence, end exclusive. Quote the text exactly as it appears; do not paraphrase or truncate.`)
	if req.Depth == DepthBasic {
		b.WriteString("\nKeep attributes minimal: only the grammatical role or type, no definitions, usage notes, or difficulty levels.")
	}
	return b.String()
}

// userPrompt renders the few-shot demonstrations followed by the sentence to
// analyze. Demonstrations are serialized as the same JSON the model must emit.
func userPrompt(req Request) string {
	var b strings.Builder
	for i, demo := range examples.ForTask(req.Task) {
		annotations, err := json.Marshal(demo.Annotations)
		if err != nil {
			// Static data; cannot fail at runtime.
			continue
		}
		fmt.Fprintf(&b, "Example %d\nSentence: %s\nAnnotations: %s\n\n", i+1, demo.Text, annotations)
	}
	fmt.Fprintf(&b, "Now analyze this sentence:\n%s", req.Text)
	return b.String()
}
