package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection        = "users"
	transactionsCollection = "transactions"
)

// FirestoreClientFunc returns the shared Firestore client. It is called on
// every operation so the client can be created lazily.
type FirestoreClientFunc func(ctx context.Context) (*firestore.Client, error)

// firestoreTransactionStorage keeps each caller's documents in the
// subcollection users/{uid}/transactions.
type firestoreTransactionStorage struct {
	client FirestoreClientFunc
	logger *logger.Logger
}

// NewFirestoreTransactionStorage constructs a Firestore-backed
// [TransactionStorage].
func NewFirestoreTransactionStorage(client FirestoreClientFunc, logger *logger.Logger) TransactionStorage {
	logger.Debug().Msg("creating firestore transaction storage")
	return &firestoreTransactionStorage{client: client, logger: logger}
}

func (f *firestoreTransactionStorage) collection(ctx context.Context, uid string) (*firestore.CollectionRef, error) {
	client, err := f.client(ctx)
	if err != nil {
		return nil, err
	}

	user := client.Collection(usersCollection).Doc(uid)
	if user == nil {
		return nil, fmt.Errorf("%w: uid %q", ErrInvalidDocumentPath, uid)
	}

	return user.Collection(transactionsCollection), nil
}

func (f *firestoreTransactionStorage) document(ctx context.Context, uid, id string) (*firestore.DocumentRef, error) {
	col, err := f.collection(ctx, uid)
	if err != nil {
		return nil, err
	}

	doc := col.Doc(id)
	if doc == nil {
		return nil, fmt.Errorf("%w: id %q", ErrInvalidDocumentPath, id)
	}

	return doc, nil
}

func (f *firestoreTransactionStorage) List(ctx context.Context, uid string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	col, err := f.collection(ctx, uid)
	if err != nil {
		return nil, err
	}

	snapshots, err := col.Documents(ctx).GetAll()
	if err != nil {
		log.Err(err).Str("func", "*firestoreTransactionStorage.List").Msg("error listing documents")
		return nil, fmt.Errorf("%w: %w", ErrFirestoreOperation, err)
	}

	transactions := make([]models.Transaction, 0, len(snapshots))
	for _, snap := range snapshots {
		fields := snap.Data()
		if fields == nil {
			fields = make(map[string]any)
		}
		transactions = append(transactions, models.Transaction{ID: snap.Ref.ID, Fields: fields})
	}

	return transactions, nil
}

func (f *firestoreTransactionStorage) Create(ctx context.Context, uid string, fields map[string]any) (string, error) {
	log := logger.FromContext(ctx)

	col, err := f.collection(ctx, uid)
	if err != nil {
		return "", err
	}

	ref, _, err := col.Add(ctx, nonNil(fields))
	if err != nil {
		log.Err(err).Str("func", "*firestoreTransactionStorage.Create").Msg("error adding document")
		return "", fmt.Errorf("%w: %w", ErrFirestoreOperation, err)
	}

	return ref.ID, nil
}

func (f *firestoreTransactionStorage) Merge(ctx context.Context, uid, id string, fields map[string]any) error {
	log := logger.FromContext(ctx)

	doc, err := f.document(ctx, uid, id)
	if err != nil {
		return err
	}

	// MergeAll rejects empty data; an empty merge only has to make sure the
	// document exists.
	if len(fields) == 0 {
		_, err = doc.Create(ctx, map[string]any{})
		if err != nil && status.Code(err) != codes.AlreadyExists {
			log.Err(err).Str("func", "*firestoreTransactionStorage.Merge").Str("id", id).Msg("error creating empty document")
			return fmt.Errorf("%w: %w", ErrFirestoreOperation, err)
		}
		return nil
	}

	if _, err = doc.Set(ctx, fields, firestore.MergeAll); err != nil {
		log.Err(err).Str("func", "*firestoreTransactionStorage.Merge").Str("id", id).Msg("error merging document")
		return fmt.Errorf("%w: %w", ErrFirestoreOperation, err)
	}

	return nil
}

func (f *firestoreTransactionStorage) Delete(ctx context.Context, uid, id string) error {
	log := logger.FromContext(ctx)

	doc, err := f.document(ctx, uid, id)
	if err != nil {
		return err
	}

	if _, err = doc.Delete(ctx); err != nil {
		log.Err(err).Str("func", "*firestoreTransactionStorage.Delete").Str("id", id).Msg("error deleting document")
		return fmt.Errorf("%w: %w", ErrFirestoreOperation, err)
	}

	return nil
}

func nonNil(fields map[string]any) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	return fields
}
