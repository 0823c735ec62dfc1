package oracle

import (
	"strings"

	"github.com/jackzampolin/librogenie/internal/agent"
)

const (
	finalAnswerMarker = "Final Answer:"
	actionMarker      = "Action:"
	actionInputMarker = "Action Input:"
	thoughtMarker     = "Thought:"
	observationMarker = "Observation:"
)

// parseDecision reads a model completion into a Decision. The completion
// continues a prompt that ends with "Thought:", so the text usually opens
// with reasoning and then either an Action/Action Input pair or a Final
// Answer. Output matching neither shape is a MalformedDecisionError.
func parseDecision(text string) (agent.Decision, error) {
	// Some models echo hallucinated observations after their action;
	// everything from the first Observation marker on is the executor's
	// job to produce, never the model's.
	if i := strings.Index(text, observationMarker); i >= 0 {
		text = text[:i]
	}

	if i := strings.Index(text, finalAnswerMarker); i >= 0 {
		return agent.Decision{
			Kind:    agent.DecisionFinal,
			Thought: firstThought(text[:i]),
			Final:   strings.TrimSpace(text[i+len(finalAnswerMarker):]),
		}, nil
	}

	actionIdx := strings.Index(text, actionMarker)
	if actionIdx < 0 {
		return agent.Decision{}, &agent.MalformedDecisionError{
			Output: strings.TrimSpace(text),
			Reason: "no Action or Final Answer found",
		}
	}

	rest := text[actionIdx+len(actionMarker):]
	inputIdx := strings.Index(rest, actionInputMarker)
	if inputIdx < 0 {
		return agent.Decision{}, &agent.MalformedDecisionError{
			Output: strings.TrimSpace(text),
			Reason: "Action without Action Input",
		}
	}

	action := strings.TrimSpace(rest[:inputIdx])
	input := strings.TrimSpace(firstLine(rest[inputIdx+len(actionInputMarker):]))
	if action == "" {
		return agent.Decision{}, &agent.MalformedDecisionError{
			Output: strings.TrimSpace(text),
			Reason: "empty Action name",
		}
	}

	return agent.Decision{
		Kind:        agent.DecisionAction,
		Thought:     firstThought(text[:actionIdx]),
		Action:      action,
		ActionInput: input,
	}, nil
}

// firstThought extracts the reasoning text preceding an action or final
// answer. The prompt ends with "Thought:", so the leading text is the
// thought whether or not the model repeats the marker.
func firstThought(text string) string {
	if i := strings.LastIndex(text, thoughtMarker); i >= 0 {
		text = text[i+len(thoughtMarker):]
	}
	return strings.TrimSpace(text)
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
