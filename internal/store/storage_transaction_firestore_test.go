package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirestoreTransactionStorage_ClientError(t *testing.T) {
	errInit := errors.New("no credentials")
	s := NewFirestoreTransactionStorage(func(context.Context) (*firestore.Client, error) {
		return nil, errInit
	}, logger.Nop())
	ctx := testContext()

	_, err := s.List(ctx, "uid-1")
	assert.ErrorIs(t, err, errInit)

	_, err = s.Create(ctx, "uid-1", nil)
	assert.ErrorIs(t, err, errInit)

	assert.ErrorIs(t, s.Merge(ctx, "uid-1", "doc-1", nil), errInit)
	assert.ErrorIs(t, s.Delete(ctx, "uid-1", "doc-1"), errInit)
}

// newEmulatorStorage connects to the Firestore emulator named by
// FIRESTORE_EMULATOR_HOST and skips the test when it is not set.
func newEmulatorStorage(t *testing.T) TransactionStorage {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST is not set")
	}

	client, err := firestore.NewClient(context.Background(), "go-transactions-test")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewFirestoreTransactionStorage(func(context.Context) (*firestore.Client, error) {
		return client, nil
	}, logger.Nop())
}

func TestFirestoreTransactionStorage_Emulator(t *testing.T) {
	s := newEmulatorStorage(t)
	ctx := testContext()
	uid := "emulator-" + utils.NewUUIDGenerator().Generate()

	id, err := s.Create(ctx, uid, map[string]any{"amount": 12.5})
	require.NoError(t, err)

	require.NoError(t, s.Merge(ctx, uid, id, map[string]any{"note": "lunch"}))
	require.NoError(t, s.Merge(ctx, uid, "fixed-id", nil))
	require.NoError(t, s.Merge(ctx, uid, "fixed-id", nil))

	got, err := s.List(ctx, uid)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := make(map[string]map[string]any, len(got))
	for _, tr := range got {
		byID[tr.ID] = tr.Fields
	}
	assert.Equal(t, map[string]any{"amount": 12.5, "note": "lunch"}, byID[id])
	assert.Empty(t, byID["fixed-id"])

	require.NoError(t, s.Delete(ctx, uid, id))
	require.NoError(t, s.Delete(ctx, uid, id))
	require.NoError(t, s.Delete(ctx, uid, "fixed-id"))

	got, err = s.List(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, got)
}
