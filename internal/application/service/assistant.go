package service

import "context"

// TextAssistant is the generative-text collaborator: one prompt in, one
// completion out. No retries, no streaming.
type TextAssistant interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
