package adapter

import (
	"context"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/MKhiriev/go-transactions/internal/cloud"
	"github.com/MKhiriev/go-transactions/internal/config"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIDTokenVerifier struct {
	token *auth.Token
	err   error
}

func (f fakeIDTokenVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.token, f.err
}

func newFakeFirebaseVerifier(fake idTokenVerifier, clientErr error) *firebaseVerifier {
	return &firebaseVerifier{
		client: func(context.Context) (idTokenVerifier, error) {
			if clientErr != nil {
				return nil, clientErr
			}
			return fake, nil
		},
		logger: logger.Nop(),
	}
}

func TestFirebaseVerifier_Success(t *testing.T) {
	v := newFakeFirebaseVerifier(fakeIDTokenVerifier{token: &auth.Token{UID: "uid-7"}}, nil)

	got, err := v.VerifyToken(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "uid-7", got.UID)
	assert.Equal(t, "firebase", got.Provider)
}

func TestFirebaseVerifier_Rejected(t *testing.T) {
	v := newFakeFirebaseVerifier(fakeIDTokenVerifier{err: assert.AnError}, nil)

	_, err := v.VerifyToken(context.Background(), "tok")

	assert.ErrorIs(t, err, ErrTokenRejected)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestFirebaseVerifier_EmptyUID(t *testing.T) {
	v := newFakeFirebaseVerifier(fakeIDTokenVerifier{token: &auth.Token{}}, nil)

	_, err := v.VerifyToken(context.Background(), "tok")

	assert.ErrorIs(t, err, ErrTokenRejected)
}

// TestFirebaseVerifier_ConnectorFailurePassesThrough verifies that a broken
// credential is reported as an initialisation failure, not a rejection.
func TestFirebaseVerifier_ConnectorFailurePassesThrough(t *testing.T) {
	v := NewFirebaseVerifier(cloud.NewFirebaseConnector(config.Firebase{}, logger.Nop()), logger.Nop())

	_, err := v.VerifyToken(context.Background(), "tok")

	assert.ErrorIs(t, err, cloud.ErrFirebaseInit)
	assert.NotErrorIs(t, err, ErrTokenRejected)
}
