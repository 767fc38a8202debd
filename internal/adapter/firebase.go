package adapter

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"github.com/MKhiriev/go-transactions/internal/cloud"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/models"
)

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseVerifier struct {
	client func(ctx context.Context) (idTokenVerifier, error)

	logger *logger.Logger
}

// NewFirebaseVerifier returns a [TokenVerifier] that validates Firebase ID
// tokens with the Admin SDK held by conn.
func NewFirebaseVerifier(conn *cloud.FirebaseConnector, l *logger.Logger) TokenVerifier {
	return &firebaseVerifier{
		client: func(ctx context.Context) (idTokenVerifier, error) {
			c, err := conn.Auth(ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		logger: l,
	}
}

func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (models.Identity, error) {
	client, err := v.client(ctx)
	if err != nil {
		return models.Identity{}, err
	}

	decoded, err := client.VerifyIDToken(ctx, token)
	if err != nil {
		v.logger.Debug().Err(err).Str("func", "firebaseVerifier.VerifyToken").Msg("token refused")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrTokenRejected, err)
	}
	if decoded.UID == "" {
		return models.Identity{}, fmt.Errorf("%w: token has no uid", ErrTokenRejected)
	}

	return models.Identity{UID: decoded.UID, Provider: "firebase"}, nil
}
