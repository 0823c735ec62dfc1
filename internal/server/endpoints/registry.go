package endpoints

import (
	"github.com/jackzampolin/librogenie/internal/api"
)

// All returns all endpoint instances in registration order.
// The static catch-all must stay last.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Assistant endpoints
		&AskEndpoint{},
		&ToolsEndpoint{},
		&ListBooksEndpoint{},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}
