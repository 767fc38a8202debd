package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidDocumentPath is returned when a uid or document id cannot
	// address a document (for example, it contains a slash).
	ErrInvalidDocumentPath = errors.New("invalid document path")

	// ErrEncodingDocument is returned when document fields cannot be
	// serialized for the backend.
	ErrEncodingDocument = errors.New("error encoding document")

	// ErrDecodingDocument is returned when a stored document cannot be
	// turned back into fields.
	ErrDecodingDocument = errors.New("error decoding document")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// storage methods when a backend operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan transaction rows")

	// ErrFirestoreOperation wraps every failed Firestore RPC.
	ErrFirestoreOperation = errors.New("firestore operation failed")
)
