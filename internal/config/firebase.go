package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

const googleTokenURI = "https://oauth2.googleapis.com/token"

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// CredentialsJSON returns the service-account JSON used to initialise the
// Firebase Admin SDK.
//
// ServiceAccountBase64 wins when set. Otherwise a service-account document
// is assembled from ProjectID, ClientEmail and PrivateKey, with literal "\n"
// sequences in the key expanded into newlines.
func (f Firebase) CredentialsJSON() ([]byte, error) {
	if f.ServiceAccountBase64 != "" {
		return decodeServiceAccount(f.ServiceAccountBase64)
	}

	if f.ProjectID == "" || f.ClientEmail == "" || f.PrivateKey == "" {
		return nil, ErrFirebaseCredentialsMissing
	}

	b, err := json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   f.ProjectID,
		ClientEmail: f.ClientEmail,
		PrivateKey:  expandNewlines(f.PrivateKey),
		TokenURI:    googleTokenURI,
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding service account: %w", err)
	}

	return b, nil
}

func decodeServiceAccount(blob string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: base64 decode: %w", ErrInvalidFirebaseCredentials, err)
	}

	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, fmt.Errorf("%w: json decode: %w", ErrInvalidFirebaseCredentials, err)
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, fmt.Errorf("%w: missing client_email or private_key", ErrInvalidFirebaseCredentials)
	}

	return raw, nil
}

func expandNewlines(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
