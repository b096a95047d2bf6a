package config

import (
	"testing"

	"github.com/GIUSEPPESAN21/gradebook"
)

func TestOptions(t *testing.T) {
	cfg, err := Parse([]byte(`
title: Notas
modification_limit: 2
grading: five-point
export:
  filename: notas.csv
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	gb, err := gradebook.New(Options(cfg)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	min, max := gb.GradeRange()
	if min != 1 || max != 5 {
		t.Errorf("GradeRange() = (%v, %v), want (1, 5)", min, max)
	}
	if gb.PassThreshold() != 3 {
		t.Errorf("PassThreshold() = %v, want 3", gb.PassThreshold())
	}
	if gb.ModificationLimit() != 2 {
		t.Errorf("ModificationLimit() = %v, want 2", gb.ModificationLimit())
	}
	if gb.ExportFilename() != "notas.csv" {
		t.Errorf("ExportFilename() = %v, want notas.csv", gb.ExportFilename())
	}
	if gb.Title() != "Notas" {
		t.Errorf("Title() = %v, want Notas", gb.Title())
	}
}

func TestOptions_DefaultTitleWhenUnset(t *testing.T) {
	cfg, err := Parse([]byte(``))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	gb, err := gradebook.New(Options(cfg)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// empty config title falls through to the SDK default
	if gb.Title() != "Gradebook" {
		t.Errorf("Title() = %v, want Gradebook", gb.Title())
	}
}
