package gradebook

import "github.com/GIUSEPPESAN21/gradebook/internal/roster"

// Sentinel errors returned by [Gradebook] operations. All of them are
// recoverable and caller-facing: the presentation layer is expected to
// surface them as user-visible messages, and none require retry logic.
//
// Returned errors wrap these sentinels with the offending name; match with
// [errors.Is]:
//
//	if _, err := gb.Add(name, grade); errors.Is(err, gradebook.ErrDuplicateName) {
//	    // tell the user the name is taken
//	}
var (
	// ErrEmptyName is returned by Add when the name is empty or
	// whitespace-only.
	ErrEmptyName = roster.ErrEmptyName

	// ErrDuplicateName is returned by Add when the name is already on the
	// roster under case-insensitive comparison.
	ErrDuplicateName = roster.ErrDuplicateName

	// ErrNotFound is returned by Modify, Delete, and Attempts when no
	// record matches the name.
	ErrNotFound = roster.ErrNotFound

	// ErrLimitReached is returned by Modify once the record's
	// modification budget is spent. The grade is left unchanged.
	ErrLimitReached = roster.ErrLimitReached

	// ErrInvalidGrade is returned by Add and Modify for a grade outside
	// the configured range.
	ErrInvalidGrade = roster.ErrInvalidGrade
)
