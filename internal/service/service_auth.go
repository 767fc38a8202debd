package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-transactions/internal/adapter"
	"github.com/MKhiriev/go-transactions/internal/cloud"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/models"
)

// authService is the concrete implementation of AuthService.
// It delegates credential checks to the configured identity provider.
type authService struct {
	verifier adapter.TokenVerifier

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by verifier.
func NewAuthService(verifier adapter.TokenVerifier, logger *logger.Logger) AuthService {
	return &authService{
		verifier: verifier,
		logger:   logger,
	}
}

// Authenticate verifies token and returns the caller's identity.
//
// Every refusal, whatever its cause, is reported as ErrUnauthorized so the
// reason never reaches the client. The one exception is a broken Firebase
// setup: errors wrapping cloud.ErrFirebaseInit are returned unchanged, as they
// are a server fault rather than a bad credential.
func (a *authService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.Identity{}, ErrUnauthorized
	}

	identity, err := a.verifier.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, cloud.ErrFirebaseInit) {
			log.Err(err).Str("func", "*authService.Authenticate").Msg("identity provider is misconfigured")
			return models.Identity{}, err
		}

		log.Warn().Err(err).Str("func", "*authService.Authenticate").Msg("token verification failed")
		return models.Identity{}, ErrUnauthorized
	}

	if identity.UID == "" {
		log.Warn().Str("func", "*authService.Authenticate").Str("provider", identity.Provider).Msg("verified token carries no uid")
		return models.Identity{}, ErrUnauthorized
	}

	return identity, nil
}
