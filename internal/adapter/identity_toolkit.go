package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/utils"
	"github.com/MKhiriev/go-transactions/models"
)

const (
	accountsLookupPath     = "/v1/accounts:lookup"
	identityToolkitTimeout = 10 * time.Second
)

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID string `json:"localId"`
	} `json:"users"`
}

type identityToolkitVerifier struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewIdentityToolkitVerifier returns a [TokenVerifier] backed by the Identity
// Toolkit accounts:lookup REST endpoint. baseURL is usually
// https://identitytoolkit.googleapis.com, or the Auth emulator address.
func NewIdentityToolkitVerifier(baseURL, apiKey string, l *logger.Logger) (TokenVerifier, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" || apiKey == "" {
		return nil, errors.New("identity toolkit verifier requires base URL and API key")
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(identityToolkitTimeout),
	)

	return &identityToolkitVerifier{client: client, apiKey: apiKey, logger: l}, nil
}

func (v *identityToolkitVerifier) VerifyToken(ctx context.Context, token string) (models.Identity, error) {
	var result lookupResponse

	resp, err := v.client.R().
		SetContext(ctx).
		SetQueryParam("key", v.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(lookupRequest{IDToken: token}).
		SetResult(&result).
		Post(accountsLookupPath)
	if err != nil {
		v.logger.Err(err).Str("func", "identityToolkitVerifier.VerifyToken").Msg("accounts lookup failed")
		return models.Identity{}, fmt.Errorf("%w: accounts lookup request: %w", ErrIdentityServiceUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		v.logger.Debug().Err(err).Str("func", "identityToolkitVerifier.VerifyToken").Msg("token refused")
		return models.Identity{}, err
	}

	if len(result.Users) == 0 || result.Users[0].LocalID == "" {
		return models.Identity{}, fmt.Errorf("%w: no user for token", ErrTokenRejected)
	}

	return models.Identity{UID: result.Users[0].LocalID, Provider: "identitytoolkit"}, nil
}
