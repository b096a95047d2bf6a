package roster

import "errors"

// Roster operation errors. These are the store-level taxonomy; the public
// gradebook package re-exports them for callers to match with errors.Is.
var (
	// ErrEmptyName is returned by Add when the name is empty or blank.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrDuplicateName is returned by Add when a record with the same
	// case-folded name already exists.
	ErrDuplicateName = errors.New("name already on roster")

	// ErrNotFound is returned by Modify, Delete, and Attempts when no
	// record matches the given name.
	ErrNotFound = errors.New("student not found")

	// ErrLimitReached is returned by Modify when the record's
	// modification budget is exhausted.
	ErrLimitReached = errors.New("modification limit reached")

	// ErrInvalidGrade is returned by Add and Modify when the grade is
	// outside the configured range.
	ErrInvalidGrade = errors.New("grade out of range")
)

// Record is the stored representation of one student.
//
// Record is the storage type, decoupled from the public gradebook.Student
// snapshot so the two can evolve independently (classification, for
// example, is applied outside this package).
type Record struct {
	// ID is an opaque identifier assigned at insertion.
	ID string

	// Name is the display name as originally supplied. Lookups fold case;
	// the stored spelling is preserved.
	Name string

	// Grade is the numeric grade.
	Grade float64
}

// Outcome holds the result of a successful Modify call.
type Outcome struct {
	// Record is the record after the operation.
	Record Record

	// Changed reports whether the grade was actually updated. false means
	// the requested grade equalled the stored one and nothing was
	// consumed from the budget.
	Changed bool

	// Attempts is the modification count consumed so far.
	Attempts int

	// Remaining is the budget left before ErrLimitReached.
	Remaining int
}

// Summary holds the numeric aggregates over all records.
// An empty roster yields the zero value.
type Summary struct {
	Count   int
	Average float64
	High    float64
	Low     float64
}

// Store defines the roster operations.
//
// Implementations are not required to be safe for concurrent use; the
// gradebook model is one synchronous caller per store instance.
type Store interface {
	// Find returns the record matching name (case-insensitive exact
	// match) and its position, or ok=false if absent.
	Find(name string) (rec Record, index int, ok bool)

	// Add appends a new record. The name keeps its original spelling but
	// must be unique under case folding and non-blank.
	Add(name string, grade float64) (Record, error)

	// Modify updates a record's grade in place, consuming one attempt
	// from its modification budget unless the grade is unchanged.
	Modify(name string, grade float64) (Outcome, error)

	// Delete removes a record and its attempt counter entry.
	Delete(name string) (Record, error)

	// Reset clears all records and counters unconditionally.
	Reset()

	// All returns a snapshot of all records in insertion order.
	All() []Record

	// Search returns records whose name contains term
	// (case-insensitive), in insertion order. An empty term matches all.
	Search(term string) []Record

	// Attempts reports the consumed and remaining modification budget
	// for one record.
	Attempts(name string) (attempts, remaining int, err error)

	// Summarize computes the numeric aggregates.
	Summarize() Summary

	// Len returns the number of records.
	Len() int
}
