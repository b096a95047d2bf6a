// Command example demonstrates the gradebook SDK: a five-point roster
// with a modification budget, aggregate statistics, and a CSV report.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/GIUSEPPESAN21/gradebook"
)

func main() {
	gb, err := gradebook.New(
		gradebook.WithTitle("Sistema de Gestión de Notas"),
		gradebook.WithGradeRange(1, 5),
		gradebook.WithPassThreshold(3),
		gradebook.WithModificationLimit(3),
	)
	if err != nil {
		slog.Error("failed to create gradebook", "error", err)
		os.Exit(1)
	}

	for _, s := range []struct {
		name  string
		grade float64
	}{
		{"Ana Pérez", 4.5},
		{"Luis Gómez", 2.8},
		{"Eva Morales", 3.9},
	} {
		if _, err := gb.Add(s.name, s.grade); err != nil {
			slog.Error("failed to add student", "name", s.name, "error", err)
			os.Exit(1)
		}
	}

	// duplicate names are rejected regardless of casing
	if _, err := gb.Add("ana pérez", 5); errors.Is(err, gradebook.ErrDuplicateName) {
		fmt.Println("ana pérez is already on the roster")
	}

	// each student has a limited modification budget
	res, _ := gb.Modify("Luis Gómez", 3.2)
	fmt.Printf("Luis Gómez updated to %v (%s), %d modifications remaining\n",
		res.Student.Grade, res.Student.Status, res.Remaining)

	stats := gb.Stats()
	fmt.Printf("\n%s\n", gb.Title())
	fmt.Printf("  students: %d, average: %.2f, high: %v, low: %v\n",
		stats.Count, stats.Average, stats.High, stats.Low)
	fmt.Printf("  passed: %d, failed: %d\n\n", stats.Passed, stats.Failed)

	report, err := gb.ExportCSV()
	if err != nil {
		slog.Error("failed to export report", "error", err)
		os.Exit(1)
	}
	fmt.Printf("%s (%s):\n%s", gb.ExportFilename(), gradebook.ExportMIMEType, report)
}
