package domain

import "context"

// GeneratorPort produces the summary text. The implementation is an
// external collaborator (typically an LLM-backed service) wired in main
type GeneratorPort interface {
	Generate(ctx context.Context, req Request) (Summary, error)
}
