package gradebook

// Status represents the pass/fail classification of a student's grade.
//
// Status is a string type with two predefined values: [StatusPassed] and
// [StatusFailed]. Using a string type keeps JSON serialization and report
// output human-readable while maintaining type safety through the constants.
type Status string

const (
	// StatusPassed indicates the grade meets or exceeds the pass threshold.
	StatusPassed Status = "Passed"

	// StatusFailed indicates the grade is below the pass threshold.
	StatusFailed Status = "Failed"
)

// String returns the string representation of the status.
// This implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// Student is a roster record as seen by the presentation layer.
//
// Student values returned by [Gradebook] methods are snapshots; modifying
// them does not affect the stored roster. The only way to change stored
// state is through the Gradebook operations.
type Student struct {
	// ID is an opaque identifier assigned when the record is added.
	// It is stable for the lifetime of the record and is intended as a
	// row/widget key for presentation layers.
	ID string

	// Name is the student's display name. Names are unique on the roster
	// under case-insensitive comparison.
	Name string

	// Grade is the student's numeric grade, within the configured range.
	Grade float64

	// Status is the pass/fail classification of Grade under the
	// gradebook's configured classifier.
	Status Status
}

// Stats holds aggregate statistics over the whole roster.
//
// For an empty roster every field is zero. This is a deliberate choice:
// downstream display code only needs a presence check (Count > 0), never a
// special case for emptiness.
type Stats struct {
	// Count is the number of records on the roster.
	Count int

	// Average is the arithmetic mean of all grades.
	Average float64

	// High is the maximum grade. Ties are not broken; the value alone is
	// reported, not which student holds it.
	High float64

	// Low is the minimum grade.
	Low float64

	// Passed is the number of records classified as [StatusPassed].
	Passed int

	// Failed is the number of records classified as [StatusFailed].
	Failed int
}

// ModifyResult holds the outcome of a successful [Gradebook.Modify] call.
//
// Changed distinguishes a real update from the benign no-op case where the
// new grade equals the stored grade. The no-op case does not consume a
// modification attempt, so Attempts and Remaining report the unchanged
// budget.
type ModifyResult struct {
	// Student is the record after the operation.
	Student Student

	// Changed reports whether the stored grade was actually updated.
	// false means the requested grade equalled the current one and the
	// operation was a no-op.
	Changed bool

	// Attempts is the number of modification attempts consumed so far for
	// this student.
	Attempts int

	// Remaining is the number of modification attempts left before
	// [ErrLimitReached].
	Remaining int
}
