package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/mock"
	"github.com/MKhiriev/go-transactions/internal/service"
	"github.com/MKhiriev/go-transactions/internal/store"
	"github.com/MKhiriev/go-transactions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTransactionService(t *testing.T) (service.TransactionService, *mock.MockTransactionStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockTransactionStorage(ctrl)
	return service.NewTransactionService(storage, logger.Nop()), storage
}

func TestTransactionService_List_NormalizesDates(t *testing.T) {
	svc, storage := newTransactionService(t)
	ctx := context.Background()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	storage.EXPECT().List(ctx, "uid-1").Return([]models.Transaction{
		{ID: "a", Fields: map[string]any{"date": date, "amount": 42.0}},
		{ID: "b", Fields: map[string]any{"date": "not a timestamp"}},
		{ID: "c", Fields: map[string]any{}},
	}, nil)

	got, err := svc.List(ctx, "uid-1")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", got[0].Fields["date"])
	assert.Equal(t, 42.0, got[0].Fields["amount"])
	assert.Equal(t, "not a timestamp", got[1].Fields["date"])
	assert.NotContains(t, got[2].Fields, "date")
}

func TestTransactionService_List_StorageError(t *testing.T) {
	svc, storage := newTransactionService(t)
	ctx := context.Background()
	storage.EXPECT().List(ctx, "uid-1").Return(nil, store.ErrFirestoreOperation)

	_, err := svc.List(ctx, "uid-1")

	assert.ErrorIs(t, err, store.ErrFirestoreOperation)
}

func TestTransactionService_Upsert_Create(t *testing.T) {
	svc, storage := newTransactionService(t)
	ctx := context.Background()

	storage.EXPECT().
		Create(ctx, "uid-1", map[string]any{
			"date":   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			"amount": 42.0,
		}).
		Return("new-id", nil)

	req := models.UpsertRequest{Fields: map[string]any{"date": "2024-01-01T00:00:00.000Z", "amount": 42.0}}
	got, err := svc.Upsert(ctx, "uid-1", req)

	require.NoError(t, err)
	assert.Equal(t, models.UpsertResult{ID: "new-id", Created: true}, got)
	assert.Equal(t, "Created", got.Message())
	assert.Equal(t, "2024-01-01T00:00:00.000Z", req.Fields["date"], "caller's map must not be modified")
}

func TestTransactionService_Upsert_Merge(t *testing.T) {
	svc, storage := newTransactionService(t)
	ctx := context.Background()

	storage.EXPECT().Merge(ctx, "uid-1", "doc-1", map[string]any{"note": "b"}).Return(nil)

	got, err := svc.Upsert(ctx, "uid-1", models.UpsertRequest{ID: "doc-1", Fields: map[string]any{"note": "b"}})

	require.NoError(t, err)
	assert.Equal(t, models.UpsertResult{ID: "doc-1"}, got)
	assert.Equal(t, "Updated", got.Message())
}

func TestTransactionService_Upsert_FalsyDateStoredAsGiven(t *testing.T) {
	svc, storage := newTransactionService(t)
	ctx := context.Background()

	storage.EXPECT().Create(ctx, "uid-1", map[string]any{"date": ""}).Return("id", nil)

	_, err := svc.Upsert(ctx, "uid-1", models.UpsertRequest{Fields: map[string]any{"date": ""}})

	require.NoError(t, err)
}

func TestTransactionService_Upsert_InvalidDate(t *testing.T) {
	svc, _ := newTransactionService(t)

	_, err := svc.Upsert(context.Background(), "uid-1", models.UpsertRequest{Fields: map[string]any{"date": "next tuesday"}})

	assert.ErrorIs(t, err, models.ErrInvalidDate)
}

func TestTransactionService_Upsert_NilFields(t *testing.T) {
	svc, storage := newTransactionService(t)
	ctx := context.Background()

	storage.EXPECT().Create(ctx, "uid-1", map[string]any{}).Return("id", nil)

	got, err := svc.Upsert(ctx, "uid-1", models.UpsertRequest{})

	require.NoError(t, err)
	assert.True(t, got.Created)
}

func TestTransactionService_Upsert_StorageErrors(t *testing.T) {
	svc, storage := newTransactionService(t)
	ctx := context.Background()
	errStore := errors.New("unavailable")

	storage.EXPECT().Create(ctx, "uid-1", gomock.Any()).Return("", errStore)
	storage.EXPECT().Merge(ctx, "uid-1", "doc-1", gomock.Any()).Return(errStore)

	_, err := svc.Upsert(ctx, "uid-1", models.UpsertRequest{Fields: map[string]any{}})
	assert.ErrorIs(t, err, errStore)

	_, err = svc.Upsert(ctx, "uid-1", models.UpsertRequest{ID: "doc-1", Fields: map[string]any{}})
	assert.ErrorIs(t, err, errStore)
}

func TestTransactionService_Delete(t *testing.T) {
	svc, storage := newTransactionService(t)
	ctx := context.Background()

	gomock.InOrder(
		storage.EXPECT().Delete(ctx, "uid-1", "doc-1").Return(nil),
		storage.EXPECT().Delete(ctx, "uid-1", "doc-1").Return(errors.New("boom")),
	)

	require.NoError(t, svc.Delete(ctx, "uid-1", "doc-1"))
	assert.EqualError(t, svc.Delete(ctx, "uid-1", "doc-1"), "error deleting transaction: boom")
}
