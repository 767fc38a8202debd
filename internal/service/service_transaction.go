package service

import (
	"context"
	"fmt"
	"maps"

	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/store"
	"github.com/MKhiriev/go-transactions/models"
)

type transactionService struct {
	transactionStorage store.TransactionStorage

	logger *logger.Logger
}

// NewTransactionService constructs a TransactionService on top of storage.
func NewTransactionService(storage store.TransactionStorage, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionStorage: storage,
		logger:             logger,
	}
}

// List returns the caller's documents in storage order with "date" rendered
// as an ISO-8601 string.
func (t *transactionService) List(ctx context.Context, uid string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	transactions, err := t.transactionStorage.List(ctx, uid)
	if err != nil {
		log.Err(err).Str("func", "*transactionService.List").Msg("error listing transactions")
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}

	for i := range transactions {
		models.NormalizeDate(transactions[i].Fields)
	}

	return transactions, nil
}

// Upsert merges req into an existing document when req.ID is set and creates
// a new document otherwise. The caller's field map is not modified.
func (t *transactionService) Upsert(ctx context.Context, uid string, req models.UpsertRequest) (models.UpsertResult, error) {
	log := logger.FromContext(ctx)

	fields := maps.Clone(req.Fields)
	if fields == nil {
		fields = make(map[string]any)
	}

	if err := models.CoerceDate(fields); err != nil {
		log.Warn().Err(err).Str("func", "*transactionService.Upsert").Msg("date coercion failed")
		return models.UpsertResult{}, err
	}

	if req.ID != "" {
		if err := t.transactionStorage.Merge(ctx, uid, req.ID, fields); err != nil {
			log.Err(err).Str("func", "*transactionService.Upsert").Str("id", req.ID).Msg("error updating transaction")
			return models.UpsertResult{}, fmt.Errorf("error updating transaction: %w", err)
		}
		return models.UpsertResult{ID: req.ID}, nil
	}

	id, err := t.transactionStorage.Create(ctx, uid, fields)
	if err != nil {
		log.Err(err).Str("func", "*transactionService.Upsert").Msg("error creating transaction")
		return models.UpsertResult{}, fmt.Errorf("error creating transaction: %w", err)
	}

	return models.UpsertResult{ID: id, Created: true}, nil
}

// Delete removes a document. Deleting a missing document succeeds.
func (t *transactionService) Delete(ctx context.Context, uid, id string) error {
	log := logger.FromContext(ctx)

	if err := t.transactionStorage.Delete(ctx, uid, id); err != nil {
		log.Err(err).Str("func", "*transactionService.Delete").Str("id", id).Msg("error deleting transaction")
		return fmt.Errorf("error deleting transaction: %w", err)
	}

	return nil
}
