package library

import (
	"fmt"
	"strings"
	"time"
)

// The lookup operations below never fail: absence and bad input are
// reported as human-readable strings so the agent loop treats every
// outcome as a plain observation.

// FinePerDay is the charge in currency units per overdue day.
const FinePerDay = 5

// SearchBooks looks up a book by exact title, ignoring case.
func (l *Library) SearchBooks(title string) string {
	want := strings.ToLower(strings.TrimSpace(title))
	for _, stored := range l.titles {
		if strings.ToLower(stored) != want {
			continue
		}
		book := l.catalog[stored]
		if !book.Available {
			return fmt.Sprintf("'%s' is currently unavailable.", stored)
		}
		loc := book.Location
		return fmt.Sprintf("'%s' is available at Floor %d, Row %d, Column %d.",
			stored, loc.Floor, loc.Row, loc.Column)
	}
	return fmt.Sprintf("No book titled '%s' found.", strings.TrimSpace(title))
}

// GetRecommendations lists catalog books whose tags intersect the user's
// interests, in catalog declaration order.
func (l *Library) GetRecommendations(username string) string {
	name := strings.TrimSpace(username)
	interests, ok := l.interests[strings.ToLower(name)]
	if !ok || len(interests) == 0 {
		return fmt.Sprintf("No interests found for '%s'.", name)
	}

	interested := make(map[string]bool, len(interests))
	for _, tag := range interests {
		interested[tag] = true
	}

	var lines []string
	for _, title := range l.titles {
		book := l.catalog[title]
		for _, tag := range book.Tags {
			if interested[tag] {
				lines = append(lines, fmt.Sprintf("- %s by %s", book.Title, book.Author))
				break
			}
		}
	}

	if len(lines) == 0 {
		return "No recommendations."
	}
	return fmt.Sprintf("Recommendations for %s:\n%s", name, strings.Join(lines, "\n"))
}

// CalculateFine totals overdue charges for a user's loans. A loan is
// overdue only when its due date is strictly before today; a book due
// today carries no fine.
func (l *Library) CalculateFine(username string) string {
	today := l.today()

	var lines []string
	total := 0
	for _, loan := range l.loans[strings.ToLower(strings.TrimSpace(username))] {
		due, err := time.ParseInLocation(DueDateFormat, loan.DueDate, time.UTC)
		if err != nil {
			continue
		}
		if !today.After(due) {
			continue
		}
		daysOverdue := int(today.Sub(due).Hours() / 24)
		fine := daysOverdue * FinePerDay
		total += fine
		lines = append(lines, fmt.Sprintf("%s overdue by %d days -> %d", loan.Title, daysOverdue, fine))
	}

	if len(lines) == 0 {
		return "No overdue books."
	}
	return fmt.Sprintf("%s\nTotal fine: %d", strings.Join(lines, "\n"), total)
}

// GetDueReminders lists loans due within the next three days. The window
// is inclusive on both ends: a book due today still gets a reminder.
func (l *Library) GetDueReminders(username string) string {
	today := l.today()

	var lines []string
	for _, loan := range l.loans[strings.ToLower(strings.TrimSpace(username))] {
		due, err := time.ParseInLocation(DueDateFormat, loan.DueDate, time.UTC)
		if err != nil {
			continue
		}
		daysLeft := int(due.Sub(today).Hours() / 24)
		if daysLeft < 0 || daysLeft > 3 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s is due in %d day(s) on %s", loan.Title, daysLeft, loan.DueDate))
	}

	if len(lines) == 0 {
		return "No upcoming due dates."
	}
	return strings.Join(lines, "\n")
}
