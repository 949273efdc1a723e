package llm

import "context"

// Generator is the single operation the pipeline needs from the
// text-generation service. Tests substitute deterministic fakes.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
