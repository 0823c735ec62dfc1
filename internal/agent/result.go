package agent

import "time"

// Outcome discriminates the ways a run can end. Callers switch on it
// instead of catching errors: only the oracle transport can produce a
// real failure, and even that arrives inside the Result.
type Outcome string

const (
	// OutcomeAnswered means the oracle produced a final answer.
	OutcomeAnswered Outcome = "answered"

	// OutcomeExhausted means the step or wall-clock bound was hit before
	// a final answer. A normal result, not a crash.
	OutcomeExhausted Outcome = "exhausted"

	// OutcomeOracleError means the oracle transport failed (network,
	// quota). The loop does not retry these.
	OutcomeOracleError Outcome = "oracle_error"
)

// Result is the terminal state of one agent run.
type Result struct {
	Outcome Outcome `json:"outcome"`

	// Answer holds the final answer text, verbatim, when Outcome is
	// OutcomeAnswered.
	Answer string `json:"answer,omitempty"`

	// Reason explains exhausted and oracle-error outcomes.
	Reason string `json:"reason,omitempty"`

	Steps         int           `json:"steps"`
	MaxSteps      int           `json:"max_steps"`
	ExecutionTime time.Duration `json:"execution_time"`

	Transcript *Transcript `json:"transcript,omitempty"`
}

// Answered reports whether the run produced a final answer.
func (r *Result) Answered() bool {
	return r.Outcome == OutcomeAnswered
}
