package export

import (
	"strings"
	"testing"
)

func TestCSV(t *testing.T) {
	rows := []Row{
		{Name: "Ana Pérez", Grade: 80, Status: "Passed"},
		{Name: "Luis Gómez", Grade: 55.5, Status: "Failed"},
	}

	data, err := CSV(rows)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	want := "name,grade,status\n" +
		"Ana Pérez,80,Passed\n" +
		"Luis Gómez,55.5,Failed\n"
	if string(data) != want {
		t.Errorf("CSV() = %q, want %q", string(data), want)
	}
}

func TestCSV_EmptyRoster(t *testing.T) {
	data, err := CSV(nil)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	// header row is always present
	if string(data) != "name,grade,status\n" {
		t.Errorf("CSV(nil) = %q, want header only", string(data))
	}
}

func TestCSV_QuotesCommasInNames(t *testing.T) {
	rows := []Row{
		{Name: "Pérez, Ana", Grade: 90, Status: "Passed"},
	}

	data, err := CSV(rows)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	if !strings.Contains(string(data), `"Pérez, Ana",90,Passed`) {
		t.Errorf("CSV() = %q, want quoted name field", string(data))
	}
}

func TestCSV_PreservesRowOrder(t *testing.T) {
	rows := []Row{
		{Name: "C", Grade: 1, Status: "Failed"},
		{Name: "A", Grade: 2, Status: "Failed"},
		{Name: "B", Grade: 3, Status: "Failed"},
	}

	data, err := CSV(rows)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("CSV() produced %v lines, want 4", len(lines))
	}
	for i, wantPrefix := range []string{"C,", "A,", "B,"} {
		if !strings.HasPrefix(lines[i+1], wantPrefix) {
			t.Errorf("line %d = %q, want prefix %q", i+1, lines[i+1], wantPrefix)
		}
	}
}
