// Package roster provides ordered in-memory storage for student records.
//
// This package is internal to Gradebook and owns all roster mutation and
// query logic: record CRUD, the per-student modification-attempt budget,
// linear name search, and numeric aggregates.
//
// The main components are:
//
//   - [Store]: interface defining roster operations
//   - [Memory]: in-memory implementation of Store
//   - [Record]: the stored representation of one student
//
// Records are kept in insertion order, which is also the iteration and
// display order. Names are unique under case-insensitive comparison, and
// the attempt counter is keyed by the case-folded name so the budget
// follows the record identity rather than the spelling used in a call.
//
// A Memory store assumes a single synchronous caller and carries no
// locking. Callers that need isolation must construct one store per
// session.
//
// Users of the gradebook library should not interact with this package
// directly. Storage is managed internally by the Gradebook type.
package roster
