package gradebook

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// gbConfig holds mutable state during Gradebook construction.
type gbConfig struct {
	title          string
	gradeMin       float64
	gradeMax       float64
	passThreshold  float64
	thresholdSet   bool
	limit          int
	classifier     Classifier
	exportFilename string
	logger         *slog.Logger
}

// Option is a function that configures a [Gradebook] instance during
// construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithGradeRange], [WithPassThreshold],
// [WithModificationLimit], [WithClassifier], [WithExportFilename],
// [WithTitle], [WithLogger].
type Option func(*gbConfig) error

// WithGradeRange sets the inclusive range of acceptable grades.
//
// Grades outside the range are rejected with [ErrInvalidGrade] by both Add
// and Modify. Defaults to 0–100 (the percent convention) if not specified.
//
// Example:
//
//	gb, err := gradebook.New(
//	    gradebook.WithGradeRange(1, 5),
//	    gradebook.WithPassThreshold(3),
//	)
//
// Returns an error if min is not strictly below max.
func WithGradeRange(min, max float64) Option {
	return func(cfg *gbConfig) error {
		if min >= max {
			return fmt.Errorf("grade range min must be below max, got [%v, %v]", min, max)
		}
		cfg.gradeMin = min
		cfg.gradeMax = max
		return nil
	}
}

// WithPassThreshold sets the grade at or above which a student is
// classified as [StatusPassed].
//
// Defaults to 60 (the percent convention) if not specified. [New] rejects
// a threshold outside the configured grade range.
func WithPassThreshold(threshold float64) Option {
	return func(cfg *gbConfig) error {
		cfg.passThreshold = threshold
		cfg.thresholdSet = true
		return nil
	}
}

// WithModificationLimit sets the per-student modification budget: the
// number of grade changes allowed per record before [ErrLimitReached].
//
// Defaults to 3 if not specified. Returns an error if the limit is below 1.
func WithModificationLimit(n int) Option {
	return func(cfg *gbConfig) error {
		if n < 1 {
			return errors.New("modification limit must be at least 1")
		}
		cfg.limit = n
		return nil
	}
}

// WithClassifier installs a custom pass/fail [Classifier].
//
// When set, the classifier takes precedence over the configured pass
// threshold for classification (the threshold still documents intent and
// remains readable via [Gradebook.PassThreshold]).
//
// Example:
//
//	gb, err := gradebook.New(
//	    gradebook.WithClassifier(gradebook.FivePointClassifier),
//	)
//
// Returns an error if the classifier is nil.
func WithClassifier(c Classifier) Option {
	return func(cfg *gbConfig) error {
		if c == nil {
			return errors.New("classifier cannot be nil")
		}
		cfg.classifier = c
		return nil
	}
}

// WithExportFilename sets the conventional download filename reported by
// [Gradebook.ExportFilename].
//
// The gradebook never writes files itself; the filename is a convention
// handed to the presentation layer alongside the CSV bytes. Defaults to
// "reporte_estudiantes.csv". Returns an error for a blank filename.
func WithExportFilename(name string) Option {
	return func(cfg *gbConfig) error {
		if strings.TrimSpace(name) == "" {
			return errors.New("export filename cannot be blank")
		}
		cfg.exportFilename = name
		return nil
	}
}

// WithTitle sets the display title for this gradebook.
//
// The title is presentation metadata (window caption, report heading); it
// does not affect any operation. Defaults to "Gradebook".
func WithTitle(title string) Option {
	return func(cfg *gbConfig) error {
		cfg.title = title
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the Gradebook instance.
//
// This allows SDK consumers to control where logs are written and in what
// format. If not specified, [slog.Default] is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	gb, err := gradebook.New(gradebook.WithLogger(logger))
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *gbConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}
