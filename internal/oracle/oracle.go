// Package oracle adapts a chat-completion LLM client to the agent's
// Oracle interface using the Thought/Action/Observation transcript
// protocol.
package oracle

import (
	"context"
	"fmt"

	"github.com/jackzampolin/librogenie/internal/agent"
	"github.com/jackzampolin/librogenie/internal/providers"
	"github.com/jackzampolin/librogenie/internal/tools"
)

// defaultTemperature keeps reasoning mostly deterministic while leaving
// the model room to phrase answers naturally.
const defaultTemperature = 0.3

// Config configures a ReActOracle.
type Config struct {
	Client   providers.LLMClient
	Registry *tools.Registry

	// Model overrides the client's default model when set.
	Model string

	// Temperature passed to the model (default: 0.3).
	Temperature float64

	MaxTokens int
}

// ReActOracle renders the transcript into a prompt, calls the model, and
// parses the completion into the next decision.
type ReActOracle struct {
	client       providers.LLMClient
	model        string
	temperature  float64
	maxTokens    int
	systemPrompt string
}

// New creates a ReActOracle. The system prompt, including the tool
// table, is rendered once: the registry is immutable after startup.
func New(cfg Config) *ReActOracle {
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	return &ReActOracle{
		client:       cfg.Client,
		model:        cfg.Model,
		temperature:  temperature,
		maxTokens:    cfg.MaxTokens,
		systemPrompt: buildSystemPrompt(cfg.Registry),
	}
}

var _ agent.Oracle = (*ReActOracle)(nil)

// Decide asks the model for the next step given the transcript so far.
// Transport failures come back as plain errors; completions that match
// neither decision shape come back as MalformedDecisionError so the
// executor can recover.
func (o *ReActOracle) Decide(ctx context.Context, t *agent.Transcript) (agent.Decision, error) {
	req := &providers.ChatRequest{
		Model:       o.model,
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
		Messages: []providers.Message{
			{Role: "system", Content: o.systemPrompt},
			{Role: "user", Content: buildUserPrompt(t)},
		},
	}

	resp, err := o.client.Chat(ctx, req)
	if err != nil {
		return agent.Decision{}, fmt.Errorf("oracle request failed: %w", err)
	}

	return parseDecision(resp.Content)
}
