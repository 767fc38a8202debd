// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations with external identity
// services.
//
// The primary abstraction is [TokenVerifier], which decouples the service
// layer from the concrete identity provider. Three implementations ship:
// the Firebase Admin SDK ([NewFirebaseVerifier]), the Identity Toolkit REST
// API ([NewIdentityToolkitVerifier]) and locally signed HS256 tokens
// ([NewJWTVerifier]).
//
// Every implementation reports a refused credential by wrapping
// [ErrTokenRejected], so callers can use [errors.Is] regardless of provider.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-transactions/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_verifier_mock.go -package=mock

// TokenVerifier validates a bearer credential and resolves the caller.
type TokenVerifier interface {
	// VerifyToken returns the identity the token was issued for. A token
	// that is malformed, expired, revoked or otherwise refused yields an
	// error wrapping ErrTokenRejected.
	VerifyToken(ctx context.Context, token string) (models.Identity, error)
}
