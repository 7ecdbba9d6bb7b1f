package repository

import "context"

// ITextGenerator produces free text for a prompt
type ITextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
