package service

import (
	"github.com/MKhiriev/go-transactions/internal/adapter"
	"github.com/MKhiriev/go-transactions/internal/config"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/store"
)

type Services struct {
	AuthService        AuthService
	TransactionService TransactionService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, verifier adapter.TokenVerifier, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	transactionService := NewTransactionValidationService().
		Wrap(NewTransactionService(storages.TransactionStorage, logger))

	return &Services{
		AuthService:        NewAuthService(verifier, logger),
		TransactionService: transactionService,
		AppInfoService:     appInfoService,
	}, nil
}
