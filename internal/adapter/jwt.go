package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/utils"
	"github.com/MKhiriev/go-transactions/models"
)

type jwtVerifier struct {
	signKey string
	issuer  string

	logger *logger.Logger
}

// NewJWTVerifier returns a [TokenVerifier] for HS256 tokens signed with
// signKey. An empty issuer accepts any "iss" claim.
func NewJWTVerifier(signKey, issuer string, l *logger.Logger) (TokenVerifier, error) {
	if signKey == "" {
		return nil, errors.New("jwt verifier requires a sign key")
	}

	return &jwtVerifier{signKey: signKey, issuer: issuer, logger: l}, nil
}

func (v *jwtVerifier) VerifyToken(_ context.Context, token string) (models.Identity, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, v.signKey, v.issuer)
	if err != nil {
		v.logger.Debug().Err(err).Str("func", "jwtVerifier.VerifyToken").Msg("token refused")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrTokenRejected, err)
	}

	return models.Identity{UID: parsed.UID, Provider: "jwt"}, nil
}
