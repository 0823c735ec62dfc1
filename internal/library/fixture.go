package library

// DefaultLibrary returns the built-in sample data set. The catalog, loan
// book, and interests are fixtures compiled into the binary; nothing in
// the process mutates them.
func DefaultLibrary(opts ...Option) *Library {
	books := []Book{
		{
			Title:     "Atomic Habits",
			Author:    "James Clear",
			Available: true,
			Location:  Location{Floor: 1, Row: 3, Column: 5},
			Tags:      []string{"self-help", "productivity"},
		},
		{
			Title:     "Deep Work",
			Author:    "Cal Newport",
			Available: true,
			Location:  Location{Floor: 2, Row: 1, Column: 2},
			Tags:      []string{"focus", "career", "productivity"},
		},
		{
			Title:     "Sapiens",
			Author:    "Yuval Noah Harari",
			Available: false,
			Location:  Location{Floor: 1, Row: 2, Column: 4},
			Tags:      []string{"history", "anthropology"},
		},
	}

	loans := map[string][]Loan{
		"alekhya": {
			{Title: "Sapiens", DueDate: "2025-07-20"},
			{Title: "Atomic Habits", DueDate: "2025-07-25"},
		},
		"suresh": {
			{Title: "Deep Work", DueDate: "2025-07-28"},
		},
	}

	interests := map[string][]string{
		"alekhya": {"history", "self-help"},
		"suresh":  {"focus", "career"},
	}

	return New(books, loans, interests, opts...)
}
