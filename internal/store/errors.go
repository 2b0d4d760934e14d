package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTicketNotFound is returned when no ticket with the requested code
	// exists in the local store.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrOfflineEventNotFound is returned when no snapshot was downloaded for
	// the requested event id.
	ErrOfflineEventNotFound = errors.New("offline event not found")

	// ErrSessionNotFound is returned when nobody is signed in on this device.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrCorruptedSnapshot is returned when a stored snapshot cannot be
	// decoded back into an event and its participants.
	ErrCorruptedSnapshot = errors.New("offline event snapshot is corrupted")
)

// Dev server repository errors.
var (
	// ErrNoUserWasFound is returned when no account matches the requested
	// id or email.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEmailAlreadyExists is returned when an account with the same email
	// is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrEventNotFound is returned when the event id is unknown.
	ErrEventNotFound = errors.New("event not found")

	// ErrEnrollmentNotFound is returned when the user is not enrolled in the
	// requested event.
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrCertificateNotFound is returned when no certificate carries the
	// requested hash.
	ErrCertificateNotFound = errors.New("certificate not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a dynamic SQL
	// statement fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
