package gradebook

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	gb, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	min, max := gb.GradeRange()
	if min != 0 || max != 100 {
		t.Errorf("GradeRange() = (%v, %v), want (0, 100)", min, max)
	}
	if gb.PassThreshold() != 60 {
		t.Errorf("PassThreshold() = %v, want 60", gb.PassThreshold())
	}
	if gb.ModificationLimit() != 3 {
		t.Errorf("ModificationLimit() = %v, want 3", gb.ModificationLimit())
	}
	if gb.ExportFilename() != "reporte_estudiantes.csv" {
		t.Errorf("ExportFilename() = %v, want reporte_estudiantes.csv", gb.ExportFilename())
	}
	if gb.Title() != "Gradebook" {
		t.Errorf("Title() = %v, want Gradebook", gb.Title())
	}
	if gb.Len() != 0 {
		t.Errorf("Len() = %v, want 0", gb.Len())
	}
}

func TestNew_FivePointScale(t *testing.T) {
	gb, err := New(
		WithGradeRange(1, 5),
		WithPassThreshold(3),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if gb.Classify(3) != StatusPassed {
		t.Errorf("Classify(3) = %v, want %v", gb.Classify(3), StatusPassed)
	}
	if gb.Classify(2.9) != StatusFailed {
		t.Errorf("Classify(2.9) = %v, want %v", gb.Classify(2.9), StatusFailed)
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
	}{
		{"inverted range", []Option{WithGradeRange(10, 5), WithPassThreshold(7)}},
		{"threshold above range", []Option{WithPassThreshold(200)}},
		{"threshold below range", []Option{WithGradeRange(1, 5), WithPassThreshold(0.5)}},
		{"custom range without threshold", []Option{WithGradeRange(1, 5)}},
		{"zero limit", []Option{WithModificationLimit(0)}},
		{"negative limit", []Option{WithModificationLimit(-1)}},
		{"nil classifier", []Option{WithClassifier(nil)}},
		{"nil logger", []Option{WithLogger(nil)}},
		{"blank export filename", []Option{WithExportFilename("  ")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.opts...); err == nil {
				t.Errorf("New() expected error for %s, got nil", tc.name)
			}
		})
	}
}

func TestGradebook_AddAndFind(t *testing.T) {
	gb, _ := New()

	student, err := gb.Add("Ana Pérez", 85)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if student.Status != StatusPassed {
		t.Errorf("Add() Status = %v, want %v", student.Status, StatusPassed)
	}

	found, ok := gb.Find("ana pérez")
	if !ok {
		t.Fatal("Find() ok = false, want true")
	}
	if found.ID != student.ID {
		t.Errorf("Find() ID = %v, want %v", found.ID, student.ID)
	}
}

func TestGradebook_Add_Errors(t *testing.T) {
	gb, _ := New()
	gb.Add("Ana", 80)

	if _, err := gb.Add("", 50); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Add(empty) error = %v, want ErrEmptyName", err)
	}
	if _, err := gb.Add("ANA", 50); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Add(dup) error = %v, want ErrDuplicateName", err)
	}
	if _, err := gb.Add("Luis", 101); !errors.Is(err, ErrInvalidGrade) {
		t.Errorf("Add(out of range) error = %v, want ErrInvalidGrade", err)
	}
}

func TestGradebook_ModifyBudget(t *testing.T) {
	gb, _ := New()
	gb.Add("Ana", 80)

	res, err := gb.Modify("Ana", 85)
	if err != nil {
		t.Fatalf("Modify() error = %v", err)
	}
	if !res.Changed || res.Attempts != 1 || res.Remaining != 2 {
		t.Errorf("Modify() = %+v, want Changed=true Attempts=1 Remaining=2", res)
	}

	// identical grade is a reported no-op
	res, err = gb.Modify("Ana", 85)
	if err != nil {
		t.Fatalf("Modify() no-op error = %v", err)
	}
	if res.Changed {
		t.Error("Modify() no-op Changed = true, want false")
	}
	if res.Attempts != 1 {
		t.Errorf("Modify() no-op Attempts = %v, want 1", res.Attempts)
	}

	gb.Modify("Ana", 86)
	gb.Modify("Ana", 87)

	if _, err := gb.Modify("Ana", 88); !errors.Is(err, ErrLimitReached) {
		t.Errorf("Modify() after budget spent error = %v, want ErrLimitReached", err)
	}

	used, remaining, err := gb.Attempts("Ana")
	if err != nil {
		t.Fatalf("Attempts() error = %v", err)
	}
	if used != 3 || remaining != 0 {
		t.Errorf("Attempts() = (%v, %v), want (3, 0)", used, remaining)
	}
}

func TestGradebook_DeleteRestoresBudget(t *testing.T) {
	gb, _ := New()
	gb.Add("Ana", 80)
	gb.Modify("Ana", 85)

	if _, err := gb.Delete("ana"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, _, err := gb.Attempts("Ana"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Attempts() after delete error = %v, want ErrNotFound", err)
	}

	gb.Add("Ana", 70)
	used, remaining, _ := gb.Attempts("Ana")
	if used != 0 || remaining != 3 {
		t.Errorf("Attempts() after re-add = (%v, %v), want (0, 3)", used, remaining)
	}
}

func TestGradebook_Stats(t *testing.T) {
	gb, _ := New()
	gb.Add("Ana", 80)
	gb.Add("Luis", 40)
	gb.Add("Eva", 100)

	stats := gb.Stats()
	if stats.Count != 3 {
		t.Errorf("Stats() Count = %v, want 3", stats.Count)
	}
	wantAvg := (80.0 + 40.0 + 100.0) / 3.0
	if math.Abs(stats.Average-wantAvg) > 1e-9 {
		t.Errorf("Stats() Average = %v, want %v", stats.Average, wantAvg)
	}
	if stats.High != 100 || stats.Low != 40 {
		t.Errorf("Stats() High/Low = %v/%v, want 100/40", stats.High, stats.Low)
	}
	if stats.Passed != 2 || stats.Failed != 1 {
		t.Errorf("Stats() Passed/Failed = %v/%v, want 2/1", stats.Passed, stats.Failed)
	}
}

func TestGradebook_Stats_Empty(t *testing.T) {
	gb, _ := New()

	if got := gb.Stats(); got != (Stats{}) {
		t.Errorf("Stats() = %+v, want zero value for empty roster", got)
	}
}

func TestGradebook_Search(t *testing.T) {
	gb, _ := New()
	gb.Add("Ana Pérez", 80)
	gb.Add("Luis Gómez", 60)

	got := gb.Search("an")
	if len(got) != 1 || got[0].Name != "Ana Pérez" {
		t.Errorf("Search(an) = %v, want [Ana Pérez]", got)
	}

	if len(gb.Search("")) != 2 {
		t.Errorf("Search(empty) returned %v records, want full roster", len(gb.Search("")))
	}
}

func TestGradebook_ExportCSV(t *testing.T) {
	gb, _ := New()
	gb.Add("Ana", 80)
	gb.Add("Luis", 40)

	data, err := gb.ExportCSV()
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	want := "name,grade,status\nAna,80,Passed\nLuis,40,Failed\n"
	if string(data) != want {
		t.Errorf("ExportCSV() = %q, want %q", string(data), want)
	}

	// export is a pure read
	if gb.Len() != 2 {
		t.Errorf("Len() = %v after export, want 2", gb.Len())
	}
}

func TestGradebook_Reset(t *testing.T) {
	gb, _ := New()
	gb.Add("Ana", 80)
	gb.Modify("Ana", 85)

	gb.Reset()

	if gb.Len() != 0 {
		t.Errorf("Len() = %v after Reset, want 0", gb.Len())
	}
	if _, ok := gb.Find("Ana"); ok {
		t.Error("Find() ok = true after Reset, want false")
	}
}

func TestGradebook_CustomClassifier(t *testing.T) {
	// classifier that fails everyone regardless of grade
	harsh := func(grade float64) Status { return StatusFailed }

	gb, err := New(WithClassifier(harsh))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	gb.Add("Ana", 100)

	if got := gb.Students()[0].Status; got != StatusFailed {
		t.Errorf("Status = %v, want %v under custom classifier", got, StatusFailed)
	}
	if stats := gb.Stats(); stats.Failed != 1 || stats.Passed != 0 {
		t.Errorf("Stats() Passed/Failed = %v/%v, want 0/1", stats.Passed, stats.Failed)
	}
}

func TestGradebook_LoggerReceivesWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	gb, err := New(WithLogger(logger))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	gb.Add("", 50)

	if !strings.Contains(buf.String(), "add rejected") {
		t.Errorf("log output = %q, want rejected add warning", buf.String())
	}
}

func TestGradebook_StudentsReturnsSnapshot(t *testing.T) {
	gb, _ := New()
	gb.Add("Ana", 80)

	students := gb.Students()
	students[0].Grade = 0

	if got, _ := gb.Find("Ana"); got.Grade != 80 {
		t.Errorf("Find() Grade = %v, want 80 (Students must return a copy)", got.Grade)
	}
}
