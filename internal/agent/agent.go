// Package agent drives one question through the bounded
// decide/dispatch/observe loop until the oracle produces a final answer
// or a limit is hit.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jackzampolin/librogenie/internal/tools"
)

// DecisionKind discriminates oracle decisions.
type DecisionKind string

const (
	DecisionAction DecisionKind = "action"
	DecisionFinal  DecisionKind = "final"
)

// Decision is one oracle step: either invoke an operation or finish.
type Decision struct {
	Kind        DecisionKind
	Thought     string
	Action      string // operation name, when Kind == DecisionAction
	ActionInput string
	Final       string // answer text, when Kind == DecisionFinal
}

// Oracle selects the next step from the transcript accumulated so far.
// Implementations wrap a language model; tests substitute scripted fakes.
//
// A MalformedDecisionError return means the oracle produced output that
// matched neither decision shape; the executor recovers from it. Any
// other error is a transport failure and ends the run.
type Oracle interface {
	Decide(ctx context.Context, t *Transcript) (Decision, error)
}

// MalformedDecisionError reports oracle output that could not be read as
// an action or a final answer. Recoverable: the executor feeds the
// problem back as an observation and re-prompts.
type MalformedDecisionError struct {
	Output string
	Reason string
}

func (e *MalformedDecisionError) Error() string {
	return fmt.Sprintf("malformed oracle decision: %s", e.Reason)
}

// Config configures an Executor.
type Config struct {
	Oracle   Oracle
	Registry *tools.Registry

	// MaxSteps bounds oracle rounds per run (default: 8).
	MaxSteps int

	// MaxDuration bounds wall-clock time per run, measured from loop
	// start (default: 60s).
	MaxDuration time.Duration

	Logger *slog.Logger
}

// Executor runs agent queries. Stateless between runs: every Run builds
// a fresh Transcript, so one Executor serves concurrent queries.
type Executor struct {
	oracle      Oracle
	registry    *tools.Registry
	maxSteps    int
	maxDuration time.Duration
	logger      *slog.Logger
}

// NewExecutor creates an Executor with the given configuration.
func NewExecutor(cfg Config) *Executor {
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 8
	}
	maxDuration := cfg.MaxDuration
	if maxDuration <= 0 {
		maxDuration = 60 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{
		oracle:      cfg.Oracle,
		registry:    cfg.Registry,
		maxSteps:    maxSteps,
		maxDuration: maxDuration,
		logger:      logger,
	}
}

// Run answers one question. The returned Result is always terminal:
// bounded aborts and oracle malfunctions come back as outcomes, never
// as panics, and the only error path is a nil-oracle misconfiguration.
func (e *Executor) Run(ctx context.Context, question string) (*Result, error) {
	if e.oracle == nil {
		return nil, errors.New("executor has no oracle configured")
	}
	if e.registry == nil {
		return nil, errors.New("executor has no tool registry configured")
	}

	runID := uuid.New().String()
	start := time.Now()
	deadline := start.Add(e.maxDuration)

	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	transcript := &Transcript{Question: SanitizeQuestion(question)}
	log := e.logger.With("run_id", runID)
	log.Info("agent run started", "question", transcript.Question)

	result := &Result{
		MaxSteps:   e.maxSteps,
		Transcript: transcript,
	}

	for step := 1; ; step++ {
		if step > e.maxSteps {
			result.Outcome = OutcomeExhausted
			result.Reason = fmt.Sprintf("could not complete within %d steps", e.maxSteps)
			break
		}
		if time.Now().After(deadline) {
			result.Outcome = OutcomeExhausted
			result.Reason = fmt.Sprintf("could not complete within %s", e.maxDuration)
			break
		}

		result.Steps = step

		decision, err := e.oracle.Decide(ctx, transcript)
		if err != nil {
			var malformed *MalformedDecisionError
			if errors.As(err, &malformed) {
				// Recoverable: tell the model what went wrong and let the
				// next round repair it. The round still consumes a step,
				// so an oracle that never recovers stays bounded. The raw
				// output stays out of the transcript: replayed through the
				// prompt it would corrupt the line protocol.
				log.Warn("malformed oracle decision", "step", step, "reason", malformed.Reason, "output", malformed.Output)
				transcript.Append(Step{
					Observation: fmt.Sprintf("Invalid response: %s. Reply with either an Action line naming one of the available tools, or a Final Answer line.", malformed.Reason),
				})
				continue
			}

			// A deadline blown mid-call is the wall-clock bound firing,
			// not an oracle fault.
			if errors.Is(err, context.DeadlineExceeded) {
				result.Outcome = OutcomeExhausted
				result.Reason = fmt.Sprintf("could not complete within %s", e.maxDuration)
				break
			}

			log.Error("oracle call failed", "step", step, "error", err)
			result.Outcome = OutcomeOracleError
			result.Reason = err.Error()
			break
		}

		if decision.Kind == DecisionFinal {
			log.Info("agent run answered", "steps", step)
			result.Outcome = OutcomeAnswered
			result.Answer = decision.Final
			break
		}

		observation, err := e.registry.Invoke(decision.Action, decision.ActionInput)
		if err != nil {
			var unknown *tools.UnknownToolError
			if errors.As(err, &unknown) {
				// Same recovery path as a malformed decision: the model
				// named a tool that does not exist.
				log.Warn("unknown tool requested", "step", step, "tool", unknown.Name)
				transcript.Append(Step{
					Thought:     decision.Thought,
					Action:      decision.Action,
					ActionInput: decision.ActionInput,
					Observation: fmt.Sprintf("Invalid response: %v. Available tools: %v.", unknown, e.registry.Names()),
				})
				continue
			}
			result.Outcome = OutcomeOracleError
			result.Reason = err.Error()
			break
		}

		log.Debug("tool dispatched", "step", step, "tool", decision.Action, "input", decision.ActionInput)
		transcript.Append(Step{
			Thought:     decision.Thought,
			Action:      decision.Action,
			ActionInput: decision.ActionInput,
			Observation: observation,
		})
	}

	result.ExecutionTime = time.Since(start)
	return result, nil
}
