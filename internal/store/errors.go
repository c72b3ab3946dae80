package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSceneNotFound is returned when no envelope is stored for a room.
	// An absent scene is a valid state of a new room, not a failure.
	ErrSceneNotFound = errors.New("scene was not found")

	// ErrSceneConflict is returned when an insert targets a room that
	// already has an envelope, i.e. a concurrent first writer won the race.
	ErrSceneConflict = errors.New("scene already exists")

	// ErrFileNotFound is returned when no payload is stored under a file
	// reference.
	ErrFileNotFound = errors.New("file was not found")

	// ErrStoreDisabled is returned by the null store for every write.
	ErrStoreDisabled = errors.New("scene store is disabled")
)

// Connection errors returned by [Connector].
var (
	// ErrInvalidConfig is returned when the connection string cannot be
	// parsed or names an unknown backend. A connector holding an invalid
	// configuration stays inert and fails every Connect with this error.
	ErrInvalidConfig = errors.New("invalid store configuration")

	// ErrConnecting is returned when the store is unreachable.
	ErrConnecting = errors.New("failed to connect to store")

	// ErrConnectorClosed is returned by Connect after Close.
	ErrConnectorClosed = errors.New("store connector is closed")
)

// Transaction errors. Every failed [SceneRepository.WithinTx] call wraps
// ErrTransactionAborted; the more specific sentinels below tell why.
var (
	// ErrTransactionAborted is returned when a scene transaction was rolled
	// back. Nothing it wrote is visible to other readers.
	ErrTransactionAborted = errors.New("transaction aborted")

	// ErrBeginningTransaction is returned when the backend cannot start a
	// new transaction or session.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails or exceeds the commit budget.
	ErrCommittingTransaction = errors.New("failed to commit transaction")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL backends when an operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
