package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidAuthConfigs    = errors.New("invalid auth configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

// Credential errors returned by [Firebase.CredentialsJSON]. They surface at
// first use of the Firebase connector, not at startup.
var (
	// ErrFirebaseCredentialsMissing means neither the base64 blob nor the
	// full set of discrete fields is configured.
	ErrFirebaseCredentialsMissing = errors.New("firebase credentials are not configured")

	// ErrInvalidFirebaseCredentials means the base64 blob could not be
	// decoded into a service-account JSON object.
	ErrInvalidFirebaseCredentials = errors.New("invalid firebase service account")
)
