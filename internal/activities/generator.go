package activities

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gwcare/glowy/internal/catalog"
	"github.com/gwcare/glowy/internal/llm"
)

// Generator produces a personalized activity batch. Failures of any
// kind degrade to the fallback pool; they never reach the user.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) ([]Activity, error)
}

// GenerateInput carries everything the generator needs for one batch.
type GenerateInput struct {
	// ProfileLabel is the human-readable profile name, not the raw key.
	ProfileLabel string

	// Inspiration seeds generation with categories and example tasks.
	Inspiration []catalog.InspirationTemplate

	// LanguageTag selects the output language ("en", "vi").
	LanguageTag string
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// Config bounds LLM activity generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation limits used in production.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// activitiesOutput is the raw LLM response before conversion.
type activitiesOutput struct {
	Activities []struct {
		ID        string `json:"id"`
		Task      string `json:"task"`
		Completed bool   `json:"completed"`
	} `json:"activities"`
}

// Generate produces a batch of activities for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]Activity, error) {
	ctx = llm.WithPurpose(ctx, "daily-activities")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input.ProfileLabel, input.Inspiration, input.LanguageTag)},
		},
		Schema:      ActivitiesSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("activity generation: %w", err)
	}

	var out activitiesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse activities response: %w", err)
	}

	batch := make([]Activity, 0, len(out.Activities))
	for _, a := range out.Activities {
		if a.ID == "" || a.Task == "" {
			continue
		}
		// Generated batches always start uncompleted regardless of what
		// the model returned.
		batch = append(batch, Activity{ID: a.ID, Task: a.Task})
	}
	return batch, nil
}
