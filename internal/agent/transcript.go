package agent

import (
	"strings"
	"unicode"
)

// Step is one completed thought/action/observation round.
type Step struct {
	Thought     string `json:"thought,omitempty"`
	Action      string `json:"action"`
	ActionInput string `json:"action_input"`
	Observation string `json:"observation"`
}

// Transcript is the running record of a single query: the sanitized
// question plus every step taken so far. Each Run owns exactly one
// Transcript; it is never shared between queries.
type Transcript struct {
	Question string `json:"question"`
	Steps    []Step `json:"steps"`
}

// Append records a completed step.
func (t *Transcript) Append(step Step) {
	t.Steps = append(t.Steps, step)
}

// SanitizeQuestion normalizes user input before the reasoning model sees
// it: surrounding whitespace goes, question marks go (they confuse the
// Question/Thought/Action transcript format), and control characters are
// stripped.
func SanitizeQuestion(q string) string {
	q = strings.TrimSpace(q)
	q = strings.ReplaceAll(q, "?", "")
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, q)
}
