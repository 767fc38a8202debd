package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-transactions/internal/mock"
	"github.com/MKhiriev/go-transactions/internal/service"
	"github.com/MKhiriev/go-transactions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidationService(t *testing.T) (service.TransactionService, *mock.MockTransactionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockTransactionService(ctrl)
	return service.NewTransactionValidationService().Wrap(inner), inner
}

func TestValidation_MissingUID(t *testing.T) {
	svc, _ := newValidationService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	assert.ErrorIs(t, err, service.ErrMissingUID)

	_, err = svc.Upsert(ctx, "", models.UpsertRequest{})
	assert.ErrorIs(t, err, service.ErrMissingUID)

	assert.ErrorIs(t, svc.Delete(ctx, "", "doc-1"), service.ErrMissingUID)
}

func TestValidation_DeleteMissingID(t *testing.T) {
	svc, _ := newValidationService(t)

	err := svc.Delete(context.Background(), "uid-1", "")

	assert.ErrorIs(t, err, service.ErrMissingTransactionID)
}

func TestValidation_InvalidIDs(t *testing.T) {
	ids := []string{"a/b", "/", ".", "..", "__reserved__", strings.Repeat("x", 1501)}

	for _, id := range ids {
		t.Run(id[:min(len(id), 16)], func(t *testing.T) {
			svc, _ := newValidationService(t)
			ctx := context.Background()

			assert.ErrorIs(t, svc.Delete(ctx, "uid-1", id), service.ErrInvalidTransactionID)

			_, err := svc.Upsert(ctx, "uid-1", models.UpsertRequest{ID: id})
			assert.ErrorIs(t, err, service.ErrInvalidTransactionID)
		})
	}
}

func TestValidation_PassesThroughValidCalls(t *testing.T) {
	svc, inner := newValidationService(t)
	ctx := context.Background()

	inner.EXPECT().List(ctx, "uid-1").Return([]models.Transaction{{ID: "a"}}, nil)
	inner.EXPECT().Upsert(ctx, "uid-1", models.UpsertRequest{}).Return(models.UpsertResult{ID: "new", Created: true}, nil)
	inner.EXPECT().Upsert(ctx, "uid-1", models.UpsertRequest{ID: "doc.1"}).Return(models.UpsertResult{ID: "doc.1"}, nil)
	inner.EXPECT().Delete(ctx, "uid-1", "__").Return(nil)

	list, err := svc.List(ctx, "uid-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	res, err := svc.Upsert(ctx, "uid-1", models.UpsertRequest{})
	require.NoError(t, err)
	assert.True(t, res.Created)

	res, err = svc.Upsert(ctx, "uid-1", models.UpsertRequest{ID: "doc.1"})
	require.NoError(t, err)
	assert.Equal(t, "doc.1", res.ID)

	require.NoError(t, svc.Delete(ctx, "uid-1", "__"))
}
