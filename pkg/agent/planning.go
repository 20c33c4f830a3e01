package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dtnitsch/awesome-list-agent/models"
)

// Message is one turn of an LLM conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GenerateConfig struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// LLMClient generates text from a conversation. Implementations wrap
// whichever model backend the deployment provides.
type LLMClient interface {
	Generate(ctx context.Context, messages []Message, cfg GenerateConfig) (string, error)
}

// StructuredLLMClient is implemented by backends that can constrain
// output to a JSON schema. Callers type-assert from LLMClient.
type StructuredLLMClient interface {
	LLMClient
	GenerateStructured(ctx context.Context, messages []Message, schema any, cfg GenerateConfig) (json.RawMessage, error)
}

const plannerSystemPrompt = `You are a learning advisor. Given a summary of a curated
resource list, write a short study plan: where to start, what to prioritize, and how
to pace the work. Answer in plain prose, at most one paragraph.`

// Planner turns parsed list metadata into model-written study
// guidance. The deterministic guidance stays in place when the model
// is unavailable or fails.
type Planner struct {
	client LLMClient
	cfg    GenerateConfig
}

func NewPlanner(client LLMClient, cfg GenerateConfig) *Planner {
	return &Planner{client: client, cfg: cfg}
}

// Guidance asks the model for a study plan grounded in the parsed
// list's context summary.
func (p *Planner) Guidance(ctx context.Context, parsed *models.EnrichedListMetadata) (string, error) {
	if p.client == nil {
		return "", nil
	}

	prompt := buildPlanningPrompt(parsed)
	out, err := p.client.Generate(ctx, []Message{
		{Role: "system", Content: plannerSystemPrompt},
		{Role: "user", Content: prompt},
	}, p.cfg)
	if err != nil {
		return "", fmt.Errorf("planner generation failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func buildPlanningPrompt(parsed *models.EnrichedListMetadata) string {
	var b strings.Builder
	b.WriteString(parsed.ContextSummary)
	if len(parsed.Categories) > 0 {
		fmt.Fprintf(&b, "\n\nCategories: %s.", strings.Join(parsed.Categories, ", "))
	}
	b.WriteString("\n\nWrite a study plan for a learner approaching this list.")
	return b.String()
}
