// Package tools exposes the library lookups as a fixed, ordered registry
// of named operations the agent can dispatch to.
package tools

import (
	"fmt"
	"strings"

	"github.com/jackzampolin/librogenie/internal/library"
)

// Entry describes one operation: a stable name, the one-line capability
// description shown to the reasoning model, and the bound lookup.
type Entry struct {
	Name        string
	Description string
	Run         func(input string) string
}

// UnknownToolError is returned when a dispatch names an operation that
// was never registered. The agent loop recovers from it; it never reaches
// the caller as a crash.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// Registry is the fixed set of operations, in declaration order.
// Built once at startup and read-only afterwards, so it is safe to share
// across concurrent queries.
type Registry struct {
	entries []Entry
	byName  map[string]int
}

// NewRegistry binds the four lookup operations to a library.
// The declaration order here is the order the reasoning model sees them
// in, and it is stable run-to-run.
func NewRegistry(lib *library.Library) *Registry {
	entries := []Entry{
		{
			Name:        "SearchBooks",
			Description: "Search for a book by exact title. Input: the book title. Returns availability and shelf location.",
			Run:         lib.SearchBooks,
		},
		{
			Name:        "GetRecommendations",
			Description: "Recommend books matching a user's interests. Input: the username.",
			Run:         lib.GetRecommendations,
		},
		{
			Name:        "CalculateFine",
			Description: "Calculate the overdue fine a user currently owes. Input: the username.",
			Run:         lib.CalculateFine,
		},
		{
			Name:        "GetDueReminders",
			Description: "List a user's books due within the next three days. Input: the username.",
			Run:         lib.GetDueReminders,
		},
	}

	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		byName[e.Name] = i
	}

	return &Registry{entries: entries, byName: byName}
}

// Entries returns all operations in declaration order.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Names returns the operation names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Invoke dispatches to the named operation. The name must match a
// registered operation exactly; anything else is an *UnknownToolError.
func (r *Registry) Invoke(name, input string) (string, error) {
	i, ok := r.byName[name]
	if !ok {
		return "", &UnknownToolError{Name: name}
	}
	return r.entries[i].Run(input), nil
}

// Describe renders the name/description table included in the reasoning
// model's instructions.
func (r *Registry) Describe() string {
	var b strings.Builder
	for _, e := range r.entries {
		fmt.Fprintf(&b, "%s: %s\n", e.Name, e.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
