package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/librogenie/internal/api"
	"github.com/jackzampolin/librogenie/internal/svcctx"
)

// ToolInfo describes one lookup tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToolsResponse lists the registered lookup tools in registry order.
type ToolsResponse struct {
	Tools []ToolInfo `json:"tools"`
}

// ToolsEndpoint handles GET /api/tools.
type ToolsEndpoint struct{}

var _ api.Endpoint = (*ToolsEndpoint)(nil)

func (e *ToolsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/tools", e.handler
}

func (e *ToolsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	reg := svcctx.ToolsFrom(r.Context())
	if reg == nil {
		writeError(w, http.StatusServiceUnavailable, "tool registry not initialized")
		return
	}

	resp := ToolsResponse{Tools: make([]ToolInfo, 0, len(reg.Entries()))}
	for _, entry := range reg.Entries() {
		resp.Tools = append(resp.Tools, ToolInfo{
			Name:        entry.Name,
			Description: entry.Description,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *ToolsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the assistant's lookup tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ToolsResponse
			if err := client.Get(cmd.Context(), "/api/tools", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
