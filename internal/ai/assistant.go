package ai

import "context"

// Assistant answers free-form questions about the configured resume.
type Assistant interface {
	Prompt(ctx context.Context, question string) (string, error)
}
