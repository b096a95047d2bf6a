package roster

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Memory is an in-memory implementation of [Store].
//
// Records are held in a slice to preserve insertion order; the attempt
// counter is a map keyed by case-folded name. A counter entry exists only
// for records that have consumed budget, and is removed entirely on delete
// so that re-adding the same name starts fresh.
//
// Memory performs no locking. It is owned by exactly one synchronous
// caller; every operation runs to completion before the next is invoked.
type Memory struct {
	min      float64
	max      float64
	limit    int
	records  []Record
	attempts map[string]int
}

// NewMemory creates an empty in-memory [Store].
//
// min and max bound acceptable grades (inclusive); limit is the per-record
// modification budget. The store is immediately ready for use and needs no
// cleanup.
func NewMemory(min, max float64, limit int) *Memory {
	return &Memory{
		min:      min,
		max:      max,
		limit:    limit,
		attempts: make(map[string]int),
	}
}

// foldName is the canonical key for name comparison and counter lookups.
func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Find returns the record matching name and its position in the roster.
//
// Matching is a case-insensitive exact comparison over a linear scan; the
// uniqueness invariant guarantees at most one match, so the first hit wins.
func (m *Memory) Find(name string) (Record, int, bool) {
	key := foldName(name)
	for i, rec := range m.records {
		if foldName(rec.Name) == key {
			return rec, i, true
		}
	}
	return Record{}, -1, false
}

// Add appends a new record at the end of the roster.
//
// The name is stored with its original spelling (surrounding whitespace
// trimmed). Returns [ErrEmptyName] for a blank name, [ErrDuplicateName] if
// the case-folded name is already present, and [ErrInvalidGrade] if the
// grade is outside the configured range. The attempt counter is untouched.
func (m *Memory) Add(name string, grade float64) (Record, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Record{}, ErrEmptyName
	}
	if _, _, ok := m.Find(trimmed); ok {
		return Record{}, fmt.Errorf("%w: %q", ErrDuplicateName, trimmed)
	}
	if grade < m.min || grade > m.max {
		return Record{}, fmt.Errorf("%w: %v not in [%v, %v]", ErrInvalidGrade, grade, m.min, m.max)
	}

	rec := Record{
		ID:    uuid.NewString(),
		Name:  trimmed,
		Grade: grade,
	}
	m.records = append(m.records, rec)
	return rec, nil
}

// Modify updates a record's grade in place.
//
// Returns [ErrNotFound] if no record matches, [ErrLimitReached] if the
// modification budget is exhausted (the grade is left untouched), and
// [ErrInvalidGrade] for an out-of-range grade.
//
// Requesting the grade already stored is a benign no-op: nothing is
// mutated, no attempt is consumed, and the outcome reports Changed=false.
// This guards the limited budget against non-changes.
func (m *Memory) Modify(name string, grade float64) (Outcome, error) {
	rec, idx, ok := m.Find(name)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	key := foldName(rec.Name)
	used := m.attempts[key]
	if used >= m.limit {
		return Outcome{}, fmt.Errorf("%w: %q used %d of %d", ErrLimitReached, rec.Name, used, m.limit)
	}

	if grade == rec.Grade {
		return Outcome{
			Record:    rec,
			Changed:   false,
			Attempts:  used,
			Remaining: m.limit - used,
		}, nil
	}

	if grade < m.min || grade > m.max {
		return Outcome{}, fmt.Errorf("%w: %v not in [%v, %v]", ErrInvalidGrade, grade, m.min, m.max)
	}

	m.records[idx].Grade = grade
	used++
	m.attempts[key] = used

	return Outcome{
		Record:    m.records[idx],
		Changed:   true,
		Attempts:  used,
		Remaining: m.limit - used,
	}, nil
}

// Delete removes a record from the roster.
//
// The order of the remaining records is preserved. The record's attempt
// counter entry is removed entirely (not zeroed), so a later Add with the
// same name begins with a fresh budget. Returns [ErrNotFound] if no record
// matches.
func (m *Memory) Delete(name string) (Record, error) {
	rec, idx, ok := m.Find(name)
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	m.records = append(m.records[:idx], m.records[idx+1:]...)
	delete(m.attempts, foldName(rec.Name))
	return rec, nil
}

// Reset clears the roster and all attempt counters unconditionally.
func (m *Memory) Reset() {
	m.records = nil
	m.attempts = make(map[string]int)
}

// All returns a snapshot of all records in insertion order.
// The returned slice is a copy; modifications do not affect the store.
func (m *Memory) All() []Record {
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

// Search returns the records whose name contains term, case-insensitively,
// preserving insertion order. An empty or blank term returns the full
// roster.
func (m *Memory) Search(term string) []Record {
	needle := foldName(term)
	if needle == "" {
		return m.All()
	}

	var out []Record
	for _, rec := range m.records {
		if strings.Contains(strings.ToLower(rec.Name), needle) {
			out = append(out, rec)
		}
	}
	return out
}

// Attempts reports the consumed and remaining modification budget for the
// record matching name. Returns [ErrNotFound] if no record matches.
func (m *Memory) Attempts(name string) (int, int, error) {
	rec, _, ok := m.Find(name)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	used := m.attempts[foldName(rec.Name)]
	remaining := m.limit - used
	if remaining < 0 {
		remaining = 0
	}
	return used, remaining, nil
}

// Summarize computes count, mean, maximum, and minimum over all grades.
//
// An empty roster yields the zero [Summary] — explicit zeros rather than an
// error, so display code never special-cases emptiness beyond a presence
// check.
func (m *Memory) Summarize() Summary {
	if len(m.records) == 0 {
		return Summary{}
	}

	total := m.records[0].Grade
	high := m.records[0].Grade
	low := m.records[0].Grade
	for _, rec := range m.records[1:] {
		total += rec.Grade
		if rec.Grade > high {
			high = rec.Grade
		}
		if rec.Grade < low {
			low = rec.Grade
		}
	}

	return Summary{
		Count:   len(m.records),
		Average: total / float64(len(m.records)),
		High:    high,
		Low:     low,
	}
}

// Len returns the number of records on the roster.
func (m *Memory) Len() int {
	return len(m.records)
}
