package store

import (
	"testing"

	"github.com/MKhiriev/go-transactions/internal/config"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(testContext(), config.Storage{Driver: config.StorageDriverMemory}, nil, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.TransactionStorage)
	assert.NoError(t, s.Close())
}

func TestNewStorages_FirestoreNeedsClient(t *testing.T) {
	_, err := NewStorages(testContext(), config.Storage{Driver: config.StorageDriverFirestore}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(testContext(), config.Storage{Driver: "cassandra"}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestStorages_CloseReturnsFirstError(t *testing.T) {
	calls := 0
	s := &Storages{closers: []func() error{
		func() error { calls++; return assert.AnError },
		func() error { calls++; return nil },
	}}

	assert.ErrorIs(t, s.Close(), assert.AnError)
	assert.Equal(t, 2, calls)
}
