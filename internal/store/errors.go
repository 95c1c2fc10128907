package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMissingIdentity is returned by Update when the record has no
	// store-assigned ID. It signals a programming error in the caller; no
	// SQL is executed.
	ErrMissingIdentity = errors.New("record has no id")

	// ErrStorage wraps every failure of the underlying storage engine
	// (I/O, constraint violation, driver error). The driver error is wrapped
	// alongside it and can be inspected with [errors.As].
	ErrStorage = errors.New("storage error")
)

// Low-level database operation errors. These are wrapped together with
// [ErrStorage] when a SQL-level operation fails before any result can be
// interpreted.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when scanning or iterating a multi-row
	// result fails.
	ErrScanningRows = errors.New("failed to scan record rows")
)
