package library

import (
	"strings"
	"testing"
	"time"
)

// fixedClock pins "today" for fine and reminder math.
func fixedClock(date string) func() time.Time {
	t, err := time.ParseInLocation(DueDateFormat, date, time.UTC)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestSearchBooks_CaseInsensitive(t *testing.T) {
	lib := DefaultLibrary()

	for _, title := range []string{"Atomic Habits", "Deep Work", "Sapiens"} {
		exact := lib.SearchBooks(title)
		lower := lib.SearchBooks(strings.ToLower(title))
		upper := lib.SearchBooks(strings.ToUpper(title))

		if exact != lower || exact != upper {
			t.Errorf("SearchBooks(%q) varies with input case:\n exact: %s\n lower: %s\n upper: %s",
				title, exact, lower, upper)
		}
	}
}

func TestSearchBooks_Results(t *testing.T) {
	lib := DefaultLibrary()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"available book includes location", "Atomic Habits", "'Atomic Habits' is available at Floor 1, Row 3, Column 5."},
		{"unavailable book", "sapiens", "'Sapiens' is currently unavailable."},
		{"unknown title", "Nonexistent Book", "No book titled 'Nonexistent Book' found."},
		{"no partial matching", "Atomic", "No book titled 'Atomic' found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lib.SearchBooks(tt.title); got != tt.want {
				t.Errorf("SearchBooks(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestGetRecommendations(t *testing.T) {
	lib := DefaultLibrary()

	t.Run("unknown user", func(t *testing.T) {
		got := lib.GetRecommendations("nobody")
		if got != "No interests found for 'nobody'." {
			t.Errorf("unexpected result: %q", got)
		}
	})

	t.Run("matches listed in catalog order", func(t *testing.T) {
		// Alekhya's interests hit Atomic Habits (self-help) and Sapiens
		// (history); Deep Work matches neither and must be absent.
		got := lib.GetRecommendations("Alekhya")
		want := "Recommendations for Alekhya:\n- Atomic Habits by James Clear\n- Sapiens by Yuval Noah Harari"
		if got != want {
			t.Errorf("GetRecommendations(Alekhya) = %q, want %q", got, want)
		}
	})

	t.Run("only intersecting tags recommend", func(t *testing.T) {
		got := lib.GetRecommendations("suresh")
		want := "Recommendations for suresh:\n- Deep Work by Cal Newport"
		if got != want {
			t.Errorf("GetRecommendations(suresh) = %q, want %q", got, want)
		}
	})

	t.Run("book matching several interests appears once", func(t *testing.T) {
		got := lib.GetRecommendations("alekhya")
		if strings.Count(got, "Atomic Habits") != 1 {
			t.Errorf("Atomic Habits should appear exactly once:\n%s", got)
		}
		if strings.Count(got, "Sapiens") != 1 {
			t.Errorf("Sapiens should appear exactly once:\n%s", got)
		}
	})

	t.Run("interests with no matching tags", func(t *testing.T) {
		books := []Book{{Title: "Gardening Basics", Author: "A. Green", Tags: []string{"gardening"}}}
		interests := map[string][]string{"pat": {"astronomy"}}
		small := New(books, nil, interests)

		if got := small.GetRecommendations("pat"); got != "No recommendations." {
			t.Errorf("expected no recommendations, got %q", got)
		}
	})
}

func TestCalculateFine(t *testing.T) {
	tests := []struct {
		name  string
		today string
		user  string
		want  string
	}{
		{
			name:  "five days overdue",
			today: "2025-07-25",
			user:  "alekhya",
			want:  "Sapiens overdue by 5 days -> 25\nTotal fine: 25",
		},
		{
			name:  "due date itself is not overdue",
			today: "2025-07-20",
			user:  "alekhya",
			want:  "No overdue books.",
		},
		{
			name:  "multiple overdue loans accumulate",
			today: "2025-07-27",
			user:  "ALEKHYA",
			want:  "Sapiens overdue by 7 days -> 35\nAtomic Habits overdue by 2 days -> 10\nTotal fine: 45",
		},
		{
			name:  "user with no loans",
			today: "2025-07-25",
			user:  "nobody",
			want:  "No overdue books.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := DefaultLibrary(WithClock(fixedClock(tt.today)))
			if got := lib.CalculateFine(tt.user); got != tt.want {
				t.Errorf("CalculateFine(%q) at %s = %q, want %q", tt.user, tt.today, got, tt.want)
			}
		})
	}
}

func TestGetDueReminders_WindowBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		today    string
		included bool
	}{
		{"due today is included", "2025-07-28", true},
		{"due in three days is included", "2025-07-25", true},
		{"due in four days is excluded", "2025-07-24", false},
		{"already overdue is excluded", "2025-07-29", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// suresh has one loan due 2025-07-28.
			lib := DefaultLibrary(WithClock(fixedClock(tt.today)))
			got := lib.GetDueReminders("suresh")

			if tt.included && !strings.Contains(got, "Deep Work is due") {
				t.Errorf("expected reminder for Deep Work, got %q", got)
			}
			if !tt.included && got != "No upcoming due dates." {
				t.Errorf("expected no reminders, got %q", got)
			}
		})
	}
}

func TestGetDueReminders_Format(t *testing.T) {
	lib := DefaultLibrary(WithClock(fixedClock("2025-07-27")))

	got := lib.GetDueReminders("suresh")
	want := "Deep Work is due in 1 day(s) on 2025-07-28"
	if got != want {
		t.Errorf("GetDueReminders(suresh) = %q, want %q", got, want)
	}
}

func TestLookups_Idempotent(t *testing.T) {
	lib := DefaultLibrary(WithClock(fixedClock("2025-07-25")))

	ops := map[string]func(string) string{
		"SearchBooks":        lib.SearchBooks,
		"GetRecommendations": lib.GetRecommendations,
		"CalculateFine":      lib.CalculateFine,
		"GetDueReminders":    lib.GetDueReminders,
	}
	inputs := []string{"Atomic Habits", "alekhya", "suresh", ""}

	for name, op := range ops {
		for _, input := range inputs {
			first := op(input)
			second := op(input)
			if first != second {
				t.Errorf("%s(%q) is not idempotent: %q then %q", name, input, first, second)
			}
		}
	}
}

func TestNew_DuplicateTitlesKeepFirst(t *testing.T) {
	books := []Book{
		{Title: "Dune", Author: "Frank Herbert", Available: true, Location: Location{1, 1, 1}},
		{Title: "Dune", Author: "Someone Else", Available: false},
	}
	lib := New(books, nil, nil)

	if lib.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", lib.Size())
	}
	if got := lib.SearchBooks("dune"); !strings.Contains(got, "available at Floor 1") {
		t.Errorf("first declaration should win, got %q", got)
	}
}
