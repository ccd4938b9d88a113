package content

import "context"

// Prompt is a single completion request: system role text plus the rendered
// user prompt.
type Prompt struct {
	System      string
	User        string
	Temperature float64
}

// Completer abstracts the remote text-generation model so the generator and
// the TUI can be tested without network calls.
type Completer interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
