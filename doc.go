// Package gradebook provides a small, session-scoped student roster with
// grade tracking, aggregate statistics, and CSV reporting.
//
// Gradebook is designed as an SDK-first library: a presentation layer (a web
// form, a terminal session, a test) owns exactly one [Gradebook] instance,
// invokes one operation per user action, and renders the returned result.
// All state is in memory and lives only as long as the instance; there is no
// persistence, no networking, and no background work.
//
// # Quick Start
//
// Create a gradebook and manage records:
//
//	gb, err := gradebook.New()
//	if err != nil {
//	    slog.Error("failed to create gradebook", "error", err)
//	    os.Exit(1)
//	}
//
//	student, err := gb.Add("Ana Pérez", 85)
//	if errors.Is(err, gradebook.ErrDuplicateName) {
//	    // name already on the roster (comparison is case-insensitive)
//	}
//
//	stats := gb.Stats()
//	fmt.Printf("average: %.2f\n", stats.Average)
//
// # Configuration
//
// Gradebook uses the functional options pattern for configuration:
//
//	gb, err := gradebook.New(
//	    gradebook.WithGradeRange(1, 5),
//	    gradebook.WithPassThreshold(3),
//	    gradebook.WithModificationLimit(3),
//	)
//
// The grade range and pass threshold are configuration, not policy: the two
// common conventions (percent 0–100 and five-point 1–5) are both expressible,
// and the config package offers them as named YAML presets.
//
// # Modification Budget
//
// Every record carries a budget of grade modifications (default 3). A
// successful [Gradebook.Modify] consumes one attempt; modifying to the grade
// already stored is a deliberate no-op that consumes nothing and is reported
// distinctly via [ModifyResult.Changed]. Deleting a record discards its
// spent attempts, so re-adding the same name starts with a fresh budget.
//
// # Classification
//
// Records are classified as passed or failed by a [Classifier] function.
// The default compares against the configured pass threshold; custom
// classifiers can be installed with [WithClassifier].
//
// # Concurrency
//
// A [Gradebook] is not safe for concurrent use. Each logical session must
// own an independent instance; sharing one instance across goroutines is
// undefined. This matches the single-actor, request-per-user-action model
// the library is built for.
//
// # Architecture
//
// The library consists of internal packages (under internal/):
//
//   - internal/roster: ordered in-memory record storage with attempt counters
//   - internal/export: CSV report serialization
//
// The internal packages are not part of the public API and may change
// without notice. The config package provides YAML configuration for the
// standalone CLI in cmd/gradebook.
package gradebook
