package service

import (
	"context"

	"github.com/MKhiriev/go-transactions/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TransactionService performs the document operations of a verified caller.
// Every method is scoped to the namespace named by uid.
type TransactionService interface {
	List(ctx context.Context, uid string) ([]models.Transaction, error)
	Upsert(ctx context.Context, uid string, req models.UpsertRequest) (models.UpsertResult, error)
	Delete(ctx context.Context, uid, id string) error
}

type AuthService interface {
	// Authenticate resolves a bearer credential to the caller's identity.
	Authenticate(ctx context.Context, token string) (models.Identity, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TransactionServiceWrapper defines middleware composition for TransactionService.
// Implementations wrap an existing TransactionService to add behavior such as
// validating.
type TransactionServiceWrapper interface {
	Wrap(TransactionService) TransactionService // returns a decorated TransactionService applying additional behavior
}
