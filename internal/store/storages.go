package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-transactions/internal/config"
	"github.com/MKhiriev/go-transactions/internal/logger"
)

// Storages aggregates the storage implementations selected at startup.
type Storages struct {
	TransactionStorage TransactionStorage

	closers []func() error
}

// NewStorages opens the backend named by cfg.Driver. firestoreClient is only
// used by the firestore driver.
func NewStorages(ctx context.Context, cfg config.Storage, firestoreClient FirestoreClientFunc, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.StorageDriverFirestore:
		if firestoreClient == nil {
			return nil, fmt.Errorf("firestore driver requires a client")
		}
		return &Storages{TransactionStorage: NewFirestoreTransactionStorage(firestoreClient, log)}, nil

	case config.StorageDriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Storages{
			TransactionStorage: NewPostgresTransactionStorage(db, log),
			closers:            []func() error{db.Close},
		}, nil

	case config.StorageDriverMemory:
		return &Storages{TransactionStorage: NewMemoryTransactionStorage(log)}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases backend connections owned by the storages.
func (s *Storages) Close() error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
