// Package insight is the text-generation boundary: narrative analyses over
// restaurant snapshots and structured extraction from invoice images. All
// model traffic goes through langchaingo's llms.Model, so providers are
// swappable and tests can run against a fake.
package insight

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gpt-4o-mini"

// NewOpenAIModel builds an OpenAI-backed model client.
func NewOpenAIModel(apiKey, model string) (llms.Model, error) {
	if model == "" {
		model = DefaultModel
	}
	llm, err := openai.New(
		openai.WithModel(model),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	return llm, nil
}
