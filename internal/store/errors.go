package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBookmarkNotFound is returned when a lookup, update or delete targets
	// a bookmark id that does not exist.
	ErrBookmarkNotFound = errors.New("bookmark was not found")

	// ErrTombstoneNotFound is returned by GetValue for a setting that has
	// never been written.
	ErrTombstoneNotFound = errors.New("tombstone value was not found")

	// ErrDatabaseBusy marks a statement that failed on sqlite lock
	// contention; retrying later may succeed.
	ErrDatabaseBusy = errors.New("database is busy")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
