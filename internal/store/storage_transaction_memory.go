package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/utils"
	"github.com/MKhiriev/go-transactions/models"
)

// memoryTransactionStorage keeps documents in process memory. It backs local
// runs and tests; nothing survives a restart.
type memoryTransactionStorage struct {
	mu    sync.RWMutex
	users map[string]map[string]map[string]any

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewMemoryTransactionStorage constructs an empty in-memory [TransactionStorage].
func NewMemoryTransactionStorage(logger *logger.Logger) TransactionStorage {
	logger.Debug().Msg("creating in-memory transaction storage")
	return &memoryTransactionStorage{
		users:  make(map[string]map[string]map[string]any),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// List returns documents ordered by id. Generated ids are UUIDv7, so this is
// creation order for documents the storage created itself.
func (m *memoryTransactionStorage) List(_ context.Context, uid string) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := m.users[uid]
	ids := slices.Sorted(maps.Keys(docs))

	transactions := make([]models.Transaction, 0, len(ids))
	for _, id := range ids {
		transactions = append(transactions, models.Transaction{ID: id, Fields: deepCopyMap(docs[id])})
	}

	return transactions, nil
}

func (m *memoryTransactionStorage) Create(_ context.Context, uid string, fields map[string]any) (string, error) {
	id := m.ids.Generate()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.namespace(uid)[id] = deepCopyMap(fields)
	return id, nil
}

// Merge deep-merges nested maps and replaces every other value, matching
// Firestore's MergeAll.
func (m *memoryTransactionStorage) Merge(_ context.Context, uid, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := m.namespace(uid)
	doc, ok := docs[id]
	if !ok {
		doc = make(map[string]any, len(fields))
		docs[id] = doc
	}
	mergeInto(doc, fields)

	return nil
}

func (m *memoryTransactionStorage) Delete(_ context.Context, uid, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if docs, ok := m.users[uid]; ok {
		delete(docs, id)
		if len(docs) == 0 {
			delete(m.users, uid)
		}
	}

	return nil
}

func (m *memoryTransactionStorage) namespace(uid string) map[string]map[string]any {
	docs, ok := m.users[uid]
	if !ok {
		docs = make(map[string]map[string]any)
		m.users[uid] = docs
	}
	return docs
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeInto(dstMap, srcMap)
			continue
		}
		dst[k] = deepCopyValue(v)
	}
}

func deepCopyMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = deepCopyValue(v)
	}
	return dst
}

func deepCopyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return deepCopyMap(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return x
	}
}
