package tools

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jackzampolin/librogenie/internal/library"
)

func TestRegistry_OrderIsStable(t *testing.T) {
	want := []string{"SearchBooks", "GetRecommendations", "CalculateFine", "GetDueReminders"}

	for i := 0; i < 5; i++ {
		reg := NewRegistry(library.DefaultLibrary())
		if got := reg.Names(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestRegistry_Invoke(t *testing.T) {
	reg := NewRegistry(library.DefaultLibrary())

	got, err := reg.Invoke("SearchBooks", "Atomic Habits")
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !strings.Contains(got, "Floor 1, Row 3, Column 5") {
		t.Errorf("unexpected observation: %q", got)
	}
}

func TestRegistry_InvokeUnknownTool(t *testing.T) {
	reg := NewRegistry(library.DefaultLibrary())

	_, err := reg.Invoke("searchbooks", "Atomic Habits")
	if err == nil {
		t.Fatal("expected error for wrong-case tool name")
	}

	var unknownErr *UnknownToolError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownToolError, got %T", err)
	}
	if unknownErr.Name != "searchbooks" {
		t.Errorf("error name = %q, want %q", unknownErr.Name, "searchbooks")
	}
}

func TestRegistry_DescribeListsEveryTool(t *testing.T) {
	reg := NewRegistry(library.DefaultLibrary())
	desc := reg.Describe()

	for _, name := range reg.Names() {
		if !strings.Contains(desc, name+": ") {
			t.Errorf("Describe() missing entry for %s:\n%s", name, desc)
		}
	}

	// Declaration order must survive rendering.
	if strings.Index(desc, "SearchBooks") > strings.Index(desc, "GetDueReminders") {
		t.Errorf("Describe() not in declaration order:\n%s", desc)
	}
}
