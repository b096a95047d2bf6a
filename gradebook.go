package gradebook

import (
	"fmt"
	"log/slog"

	"github.com/GIUSEPPESAN21/gradebook/internal/export"
	"github.com/GIUSEPPESAN21/gradebook/internal/roster"
)

const (
	defaultGradeMin      = 0.0
	defaultGradeMax      = 100.0
	defaultPassThreshold = 60.0
	defaultLimit         = 3
	defaultTitle         = "Gradebook"
)

// DefaultExportFilename is the conventional download name for the CSV
// report. The report should be served as UTF-8 with MIME type
// [ExportMIMEType].
const DefaultExportFilename = export.DefaultFilename

// ExportMIMEType is the content type for the CSV report.
const ExportMIMEType = export.MIMEType

// Gradebook is a session-scoped roster of student records.
//
// Gradebook owns all record state for one interactive session: the ordered
// roster, the per-student modification budget, and the grading
// configuration. It is created with [New] and mutated only through its
// methods; when the session ends the instance is simply dropped.
//
// Every operation is synchronous and runs to completion before the next is
// invoked. A Gradebook is not safe for concurrent use; each logical
// session must own an independent instance.
type Gradebook struct {
	title          string
	gradeMin       float64
	gradeMax       float64
	passThreshold  float64
	limit          int
	classifier     Classifier
	exportFilename string
	logger         *slog.Logger
	store          *roster.Memory
}

// New creates a new empty [Gradebook] with the given options.
//
// All options have sensible defaults:
//   - Grade range: 0–100
//   - Pass threshold: 60
//   - Modification limit: 3 per student
//   - Export filename: "reporte_estudiantes.csv"
//
// Returns an error if any option is invalid or the pass threshold falls
// outside the grade range.
//
// Example:
//
//	gb, err := gradebook.New(
//	    gradebook.WithGradeRange(1, 5),
//	    gradebook.WithPassThreshold(3),
//	    gradebook.WithModificationLimit(3),
//	)
func New(opts ...Option) (*Gradebook, error) {
	cfg := &gbConfig{
		title:          defaultTitle,
		gradeMin:       defaultGradeMin,
		gradeMax:       defaultGradeMax,
		passThreshold:  defaultPassThreshold,
		limit:          defaultLimit,
		exportFilename: DefaultExportFilename,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// a range narrower than the default threshold would otherwise make
	// every grade fail; force callers to state the threshold they mean
	if !cfg.thresholdSet && (cfg.gradeMin != defaultGradeMin || cfg.gradeMax != defaultGradeMax) {
		return nil, fmt.Errorf("custom grade range [%v, %v] requires WithPassThreshold", cfg.gradeMin, cfg.gradeMax)
	}
	if cfg.passThreshold < cfg.gradeMin || cfg.passThreshold > cfg.gradeMax {
		return nil, fmt.Errorf("pass threshold %v outside grade range [%v, %v]",
			cfg.passThreshold, cfg.gradeMin, cfg.gradeMax)
	}

	classifier := cfg.classifier
	if classifier == nil {
		classifier = ThresholdClassifier(cfg.passThreshold)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Gradebook{
		title:          cfg.title,
		gradeMin:       cfg.gradeMin,
		gradeMax:       cfg.gradeMax,
		passThreshold:  cfg.passThreshold,
		limit:          cfg.limit,
		classifier:     classifier,
		exportFilename: cfg.exportFilename,
		logger:         logger,
		store:          roster.NewMemory(cfg.gradeMin, cfg.gradeMax, cfg.limit),
	}, nil
}

// Add appends a new student record at the end of the roster.
//
// The name must be non-blank and unique under case-insensitive comparison;
// the grade must be within the configured range. Fails with [ErrEmptyName],
// [ErrDuplicateName], or [ErrInvalidGrade]. The modification budget is
// untouched.
//
// Note that range validation here is a hardening of the store boundary: the
// presentation layer is still expected to validate input before calling.
func (g *Gradebook) Add(name string, grade float64) (Student, error) {
	rec, err := g.store.Add(name, grade)
	if err != nil {
		g.logger.Warn("add rejected", "name", name, "error", err)
		return Student{}, err
	}

	g.logger.Debug("student added", "id", rec.ID, "name", rec.Name, "grade", rec.Grade)
	return g.toStudent(rec), nil
}

// Modify updates a student's grade in place, consuming one modification
// attempt.
//
// Fails with [ErrNotFound], [ErrLimitReached] (after the budget is spent;
// the grade is unchanged), or [ErrInvalidGrade]. Requesting the grade
// already stored is a benign no-op reported via [ModifyResult.Changed]
// rather than an error; it consumes no budget.
//
// On success, [ModifyResult.Remaining] carries the attempts left, since
// presentation layers surface this to the user.
func (g *Gradebook) Modify(name string, grade float64) (ModifyResult, error) {
	out, err := g.store.Modify(name, grade)
	if err != nil {
		g.logger.Warn("modify rejected", "name", name, "error", err)
		return ModifyResult{}, err
	}

	if out.Changed {
		g.logger.Debug("grade modified",
			"name", out.Record.Name,
			"grade", out.Record.Grade,
			"attempts", out.Attempts,
			"remaining", out.Remaining,
		)
	} else {
		g.logger.Debug("modify was a no-op", "name", out.Record.Name, "grade", out.Record.Grade)
	}

	return ModifyResult{
		Student:   g.toStudent(out.Record),
		Changed:   out.Changed,
		Attempts:  out.Attempts,
		Remaining: out.Remaining,
	}, nil
}

// Delete removes a student from the roster and discards their spent
// modification attempts, so re-adding the same name starts with a fresh
// budget. The order of the remaining records is preserved.
//
// Fails with [ErrNotFound]. Returns the removed record.
func (g *Gradebook) Delete(name string) (Student, error) {
	rec, err := g.store.Delete(name)
	if err != nil {
		g.logger.Warn("delete rejected", "name", name, "error", err)
		return Student{}, err
	}

	g.logger.Debug("student deleted", "id", rec.ID, "name", rec.Name)
	return g.toStudent(rec), nil
}

// Reset clears the roster and all modification counters unconditionally.
// It has no precondition and no failure mode.
func (g *Gradebook) Reset() {
	g.store.Reset()
	g.logger.Debug("gradebook reset")
}

// Find returns the student matching name under case-insensitive exact
// comparison, or ok=false if absent.
func (g *Gradebook) Find(name string) (Student, bool) {
	rec, _, ok := g.store.Find(name)
	if !ok {
		return Student{}, false
	}
	return g.toStudent(rec), true
}

// Students returns a snapshot of the full roster in insertion order.
// The returned slice is a copy; modifying it does not affect the roster.
func (g *Gradebook) Students() []Student {
	return g.toStudents(g.store.All())
}

// Search returns the students whose name contains term, case-insensitively,
// preserving roster order. A blank term returns the full roster.
func (g *Gradebook) Search(term string) []Student {
	return g.toStudents(g.store.Search(term))
}

// Stats computes aggregate statistics over the roster.
//
// For an empty roster every field is zero — an explicit choice so display
// code only needs a presence check, never an emptiness special case.
func (g *Gradebook) Stats() Stats {
	sum := g.store.Summarize()
	stats := Stats{
		Count:   sum.Count,
		Average: sum.Average,
		High:    sum.High,
		Low:     sum.Low,
	}

	for _, rec := range g.store.All() {
		if g.classifier(rec.Grade) == StatusPassed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// Classify reports the pass/fail [Status] for a grade under the
// gradebook's classifier. It is a pure function of the grade and the
// configuration; no roster state is consulted.
func (g *Gradebook) Classify(grade float64) Status {
	return g.classifier(grade)
}

// Attempts reports the consumed and remaining modification budget for the
// student matching name. Fails with [ErrNotFound].
func (g *Gradebook) Attempts(name string) (attempts, remaining int, err error) {
	return g.store.Attempts(name)
}

// Len returns the number of records on the roster.
func (g *Gradebook) Len() int {
	return g.store.Len()
}

// ExportCSV serializes the roster as a CSV report: UTF-8, comma-delimited,
// header row, column order name, grade, status. Rows follow roster order
// and the status column uses the configured classifier.
//
// The export is a pure read; no roster state changes. The bytes are meant
// to be handed to the presentation layer for delivery as a download named
// [Gradebook.ExportFilename] with MIME type [ExportMIMEType].
func (g *Gradebook) ExportCSV() ([]byte, error) {
	records := g.store.All()
	rows := make([]export.Row, len(records))
	for i, rec := range records {
		rows[i] = export.Row{
			Name:   rec.Name,
			Grade:  rec.Grade,
			Status: g.classifier(rec.Grade).String(),
		}
	}
	return export.CSV(rows)
}

// ExportFilename returns the conventional download filename for the CSV
// report.
func (g *Gradebook) ExportFilename() string {
	return g.exportFilename
}

// Title returns the configured display title.
func (g *Gradebook) Title() string {
	return g.title
}

// GradeRange returns the configured inclusive grade bounds.
func (g *Gradebook) GradeRange() (min, max float64) {
	return g.gradeMin, g.gradeMax
}

// PassThreshold returns the configured pass threshold.
func (g *Gradebook) PassThreshold() float64 {
	return g.passThreshold
}

// ModificationLimit returns the configured per-student modification budget.
func (g *Gradebook) ModificationLimit() int {
	return g.limit
}

// toStudent converts a storage record to the public snapshot type,
// applying classification.
func (g *Gradebook) toStudent(rec roster.Record) Student {
	return Student{
		ID:     rec.ID,
		Name:   rec.Name,
		Grade:  rec.Grade,
		Status: g.classifier(rec.Grade),
	}
}

// toStudents converts a slice of storage records, preserving order.
func (g *Gradebook) toStudents(recs []roster.Record) []Student {
	out := make([]Student, len(recs))
	for i, rec := range recs {
		out[i] = g.toStudent(rec)
	}
	return out
}
