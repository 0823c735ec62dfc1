package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/librogenie/internal/agent"
	"github.com/jackzampolin/librogenie/internal/api"
	"github.com/jackzampolin/librogenie/internal/oracle"
	"github.com/jackzampolin/librogenie/internal/svcctx"
)

// AskRequest is the request body for asking the assistant a question.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the response for a completed agent run. Steps counts
// oracle rounds, including the round that produced the final answer.
type AskResponse struct {
	Answer   string `json:"answer"`
	Steps    int    `json:"steps"`
	Duration string `json:"duration"`
}

// AskEndpoint handles POST /api/ask. It runs the full agent loop and
// blocks until the run completes or hits its bounds.
type AskEndpoint struct{}

var _ api.Endpoint = (*AskEndpoint)(nil)

func (e *AskEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/ask", e.handler
}

func (e *AskEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	services := svcctx.ServicesFrom(r.Context())
	if services == nil || services.Registry == nil || services.ConfigManager == nil {
		writeError(w, http.StatusServiceUnavailable, "server not fully initialized")
		return
	}

	cfg := services.ConfigManager.Get()
	providerName := cfg.Defaults.LLMProvider
	llm, err := services.Registry.GetLLM(providerName)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("LLM provider %q not available", providerName))
		return
	}

	// Each request gets its own executor and transcript; the library and
	// tool registry are shared read-only state.
	exec := agent.NewExecutor(agent.Config{
		Oracle: oracle.New(oracle.Config{
			Client:      llm,
			Registry:    services.Tools,
			Temperature: cfg.Defaults.Temperature,
		}),
		Registry:    services.Tools,
		MaxSteps:    cfg.Defaults.MaxSteps,
		MaxDuration: time.Duration(cfg.Defaults.MaxDurationSeconds) * time.Second,
		Logger:      services.Logger,
	})

	result, err := exec.Run(r.Context(), req.Question)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch result.Outcome {
	case agent.OutcomeAnswered:
		writeJSON(w, http.StatusOK, AskResponse{
			Answer:   result.Answer,
			Steps:    result.Steps,
			Duration: result.ExecutionTime.Round(time.Millisecond).String(),
		})
	case agent.OutcomeExhausted:
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "no answer within bounds",
			Reason: result.Reason,
		})
	default:
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:  "oracle failure",
			Reason: result.Reason,
		})
	}
}

func (e *AskEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the library assistant a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp AskResponse
			if err := client.Post(cmd.Context(), "/api/ask", AskRequest{Question: args[0]}, &resp); err != nil {
				return err
			}
			fmt.Println(resp.Answer)
			return nil
		},
	}
}
