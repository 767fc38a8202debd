package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-transactions/models"
)

// maxTransactionIDBytes is the longest document id the document store accepts.
const maxTransactionIDBytes = 1500

type TransactionValidationService struct {
	inner TransactionService
}

func NewTransactionValidationService() TransactionServiceWrapper {
	return &TransactionValidationService{}
}

func (v *TransactionValidationService) List(ctx context.Context, uid string) ([]models.Transaction, error) {
	if uid == "" {
		return nil, ErrMissingUID
	}

	return v.inner.List(ctx, uid)
}

func (v *TransactionValidationService) Upsert(ctx context.Context, uid string, req models.UpsertRequest) (models.UpsertResult, error) {
	if uid == "" {
		return models.UpsertResult{}, ErrMissingUID
	}

	// an empty id means "create"
	if req.ID != "" {
		if err := validateTransactionID(req.ID); err != nil {
			return models.UpsertResult{}, err
		}
	}

	return v.inner.Upsert(ctx, uid, req)
}

func (v *TransactionValidationService) Delete(ctx context.Context, uid, id string) error {
	if uid == "" {
		return ErrMissingUID
	}

	if id == "" {
		return ErrMissingTransactionID
	}

	if err := validateTransactionID(id); err != nil {
		return err
	}

	return v.inner.Delete(ctx, uid, id)
}

func (v *TransactionValidationService) Wrap(wrapped TransactionService) TransactionService {
	v.inner = wrapped
	return v
}

// validateTransactionID rejects ids that cannot name a single document in
// the caller's collection.
func validateTransactionID(id string) error {
	switch {
	case strings.Contains(id, "/"):
		return fmt.Errorf("%w: must not contain '/'", ErrInvalidTransactionID)
	case id == "." || id == "..":
		return fmt.Errorf("%w: %q is reserved", ErrInvalidTransactionID, id)
	case len(id) > 2 && strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__"):
		return fmt.Errorf("%w: %q is reserved", ErrInvalidTransactionID, id)
	case len(id) > maxTransactionIDBytes:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidTransactionID, maxTransactionIDBytes)
	}

	return nil
}
