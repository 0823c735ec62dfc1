// Package library holds the static catalog, loan book, and interest data
// the assistant answers questions about, plus the four lookup operations
// the agent can invoke.
package library

import (
	"strings"
	"time"
)

// Location is a shelf position within the building.
type Location struct {
	Floor  int `json:"floor"`
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Book is a single catalog entry. Title is the unique key.
type Book struct {
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Available bool     `json:"available"`
	Location  Location `json:"location"`
	Tags      []string `json:"tags"`
}

// Loan is one checked-out book for a user. DueDate uses YYYY-MM-DD.
type Loan struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

// DueDateFormat is the calendar-date layout used for loan due dates.
const DueDateFormat = "2006-01-02"

// Library is the read-only data set the lookup operations run against.
// It is constructed once and safe for concurrent readers; nothing mutates
// it after construction.
type Library struct {
	titles    []string // catalog iteration order
	catalog   map[string]Book
	loans     map[string][]Loan // keyed by lowercased username
	interests map[string][]string

	now func() time.Time
}

// Option configures a Library at construction time.
type Option func(*Library)

// WithClock overrides the time source used for fine and reminder math.
// Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(l *Library) { l.now = now }
}

// New builds a Library from catalog, loan, and interest data.
// Catalog order is preserved as the iteration order for recommendations.
// Loan and interest keys are lowercased so query-side lookups are
// case-insensitive.
func New(books []Book, loans map[string][]Loan, interests map[string][]string, opts ...Option) *Library {
	l := &Library{
		titles:    make([]string, 0, len(books)),
		catalog:   make(map[string]Book, len(books)),
		loans:     make(map[string][]Loan, len(loans)),
		interests: make(map[string][]string, len(interests)),
		now:       time.Now,
	}

	for _, b := range books {
		if _, exists := l.catalog[b.Title]; exists {
			continue
		}
		l.titles = append(l.titles, b.Title)
		l.catalog[b.Title] = b
	}

	for user, userLoans := range loans {
		l.loans[strings.ToLower(user)] = append([]Loan(nil), userLoans...)
	}
	for user, tags := range interests {
		l.interests[strings.ToLower(user)] = append([]string(nil), tags...)
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Books returns the catalog in declaration order.
func (l *Library) Books() []Book {
	books := make([]Book, 0, len(l.titles))
	for _, title := range l.titles {
		books = append(books, l.catalog[title])
	}
	return books
}

// Size returns the number of catalog entries.
func (l *Library) Size() int {
	return len(l.titles)
}

// today truncates the clock to a calendar date. All due-date comparisons
// work on whole dates, never time of day.
func (l *Library) today() time.Time {
	y, m, d := l.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
