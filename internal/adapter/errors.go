package adapter

import "errors"

var (
	// ErrTokenRejected means the identity provider refused the credential.
	ErrTokenRejected = errors.New("token rejected")

	// ErrIdentityServiceUnavailable means the identity provider could not be
	// reached or failed while answering.
	ErrIdentityServiceUnavailable = errors.New("identity service unavailable")

	ErrUnknownProvider = errors.New("unknown identity provider")
)
