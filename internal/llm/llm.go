package llm

import "context"

// Request carries one completion call. Model is optional; providers fall back
// to their configured default when it is empty.
type Request struct {
	Model  string
	System string
	User   string
}

// Client is a minimal LLM interface to allow pluggable providers.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
