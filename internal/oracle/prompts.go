package oracle

import (
	"fmt"
	"strings"

	"github.com/jackzampolin/librogenie/internal/agent"
	"github.com/jackzampolin/librogenie/internal/tools"
)

const systemPromptTemplate = `You are LibroGenie, a smart library assistant for college students.
Help with:
- Finding books
- Recommendations
- Calculating fines
- Reminders

You have access to the following tools:

%s

Use the following format:

Question: the user question
Thought: your reasoning about what to do next
Action: the tool to use, exactly one of [%s]
Action Input: the input to the tool
Observation: the result of the tool
... (Thought/Action/Action Input/Observation can repeat)
Thought: I now know the final answer
Final Answer: the reply to the user

Always respond with either an Action plus Action Input, or a Final Answer. Never both.`

// buildSystemPrompt renders the fixed instructions plus the tool table.
func buildSystemPrompt(reg *tools.Registry) string {
	return fmt.Sprintf(systemPromptTemplate, reg.Describe(), strings.Join(reg.Names(), ", "))
}

// buildUserPrompt renders the question and every prior step in transcript
// order, ending where the model is expected to continue.
func buildUserPrompt(t *agent.Transcript) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", t.Question)
	for _, step := range t.Steps {
		if step.Thought != "" {
			fmt.Fprintf(&b, "Thought: %s\n", step.Thought)
		}
		if step.Action != "" {
			fmt.Fprintf(&b, "Action: %s\n", step.Action)
		}
		if step.ActionInput != "" {
			fmt.Fprintf(&b, "Action Input: %s\n", step.ActionInput)
		}
		fmt.Fprintf(&b, "Observation: %s\n", step.Observation)
	}
	b.WriteString("Thought:")
	return b.String()
}
