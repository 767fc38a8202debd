package store

import (
	"context"

	"github.com/MKhiriev/go-transactions/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transaction_storage_mock.go -package=mock

// TransactionStorage persists transaction documents under a per-caller
// namespace. Implementations never let one uid reach another uid's documents.
type TransactionStorage interface {
	// List returns every document of uid in the backend's natural order.
	// The "date" field, when it holds a timestamp, is a time.Time.
	List(ctx context.Context, uid string) ([]models.Transaction, error)

	// Create stores fields as a new document and returns its assigned id.
	Create(ctx context.Context, uid string, fields map[string]any) (string, error)

	// Merge writes fields into document id, preserving fields it does not
	// name. The document is created if it does not exist.
	Merge(ctx context.Context, uid, id string, fields map[string]any) error

	// Delete removes document id. Deleting a missing document succeeds.
	Delete(ctx context.Context, uid, id string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
