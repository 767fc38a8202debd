package service

import "errors"

var (
	// ErrUnauthorized hides the reason a credential was refused.
	ErrUnauthorized = errors.New("unauthorized")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrMissingUID           = errors.New("no user ID was given")
	ErrMissingTransactionID = errors.New("missing transaction id")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
)
