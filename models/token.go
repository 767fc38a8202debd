package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token issued for the "jwt" identity provider.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UID is the caller identifier taken from the "sub" claim.
	UID string `json:"-"`
}

// GetUID returns the caller identifier held in the "sub" claim.
func (t *Token) GetUID() (string, error) {
	uid, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UID from token: %w", err)
	}
	if uid == "" {
		return "", errors.New("empty subject")
	}

	return uid, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
