package utils

import (
	"context"
	"fmt"
	"strings"
)

// PlannerClientInterface abstracts the generative text model used for
// itinerary generation. Implementations may be slow or hang; callers must
// impose their own timeout through ctx.
type PlannerClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewPlannerClient Factory function to create either an OpenAI or Gemini
// backed planner client based on config
func NewPlannerClient(provider, apiKey, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlannerClient(apiKey, model), nil
	case "gemini":
		return NewGeminiPlannerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s", provider)
	}
}
