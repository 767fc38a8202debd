package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-transactions/internal/cloud"
	"github.com/MKhiriev/go-transactions/internal/config"
	"github.com/MKhiriev/go-transactions/internal/logger"
)

// NewTokenVerifier builds the verifier selected by cfg.Provider. conn is only
// used by the firebase provider and may be nil otherwise.
func NewTokenVerifier(cfg config.Auth, conn *cloud.FirebaseConnector, l *logger.Logger) (TokenVerifier, error) {
	switch cfg.Provider {
	case config.AuthProviderFirebase:
		if conn == nil {
			return nil, fmt.Errorf("firebase provider requires a connector")
		}
		return NewFirebaseVerifier(conn, l), nil
	case config.AuthProviderIdentityToolkit:
		return NewIdentityToolkitVerifier(cfg.IdentityToolkitURL, cfg.APIKey, l)
	case config.AuthProviderJWT:
		return NewJWTVerifier(cfg.TokenSignKey, cfg.TokenIssuer, l)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
