package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-transactions/internal/adapter"
	"github.com/MKhiriev/go-transactions/internal/cloud"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/mock"
	"github.com/MKhiriev/go-transactions/internal/service"
	"github.com/MKhiriev/go-transactions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthService(t *testing.T) (service.AuthService, *mock.MockTokenVerifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockTokenVerifier(ctrl)
	return service.NewAuthService(verifier, logger.Nop()), verifier
}

func TestAuthenticate_Success(t *testing.T) {
	svc, verifier := newAuthService(t)
	ctx := context.Background()

	want := models.Identity{UID: "uid-1", Provider: "firebase"}
	verifier.EXPECT().VerifyToken(ctx, "good-token").Return(want, nil)

	got, err := svc.Authenticate(ctx, "good-token")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAuthenticate_EmptyToken_DoesNotCallVerifier(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Authenticate(context.Background(), "")

	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthenticate_FailuresBecomeUnauthorized(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"rejected", fmt.Errorf("%w: TOKEN_EXPIRED", adapter.ErrTokenRejected)},
		{"identity service down", fmt.Errorf("%w: 503", adapter.ErrIdentityServiceUnavailable)},
		{"unexpected", errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, verifier := newAuthService(t)
			ctx := context.Background()
			verifier.EXPECT().VerifyToken(ctx, "token").Return(models.Identity{}, tt.err)

			_, err := svc.Authenticate(ctx, "token")

			require.ErrorIs(t, err, service.ErrUnauthorized)
			assert.NotErrorIs(t, err, tt.err)
		})
	}
}

func TestAuthenticate_FirebaseInitFailurePassesThrough(t *testing.T) {
	svc, verifier := newAuthService(t)
	ctx := context.Background()

	initErr := fmt.Errorf("%w: bad private key", cloud.ErrFirebaseInit)
	verifier.EXPECT().VerifyToken(ctx, "token").Return(models.Identity{}, initErr)

	_, err := svc.Authenticate(ctx, "token")

	require.ErrorIs(t, err, cloud.ErrFirebaseInit)
	assert.NotErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthenticate_EmptyUIDIsUnauthorized(t *testing.T) {
	svc, verifier := newAuthService(t)
	ctx := context.Background()
	verifier.EXPECT().VerifyToken(ctx, "token").Return(models.Identity{Provider: "jwt"}, nil)

	_, err := svc.Authenticate(ctx, "token")

	assert.ErrorIs(t, err, service.ErrUnauthorized)
}
