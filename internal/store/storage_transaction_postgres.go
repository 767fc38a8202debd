package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/utils"
	"github.com/MKhiriev/go-transactions/models"
)

// postgresTransactionStorage is the PostgreSQL-backed [TransactionStorage].
// Each document is one row of the "transactions" table keyed by
// (user_id, id): free-form fields in a JSONB column, a native date in a
// timestamptz column.
type postgresTransactionStorage struct {
	db     *DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewPostgresTransactionStorage constructs a [TransactionStorage] on top of
// an open connection. Migrations must already be applied.
func NewPostgresTransactionStorage(db *DB, logger *logger.Logger) TransactionStorage {
	logger.Debug().Msg("creating postgres transaction storage")
	return &postgresTransactionStorage{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (p *postgresTransactionStorage) List(ctx context.Context, uid string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserTransactionsQuery(uid)
	if err != nil {
		log.Err(err).Str("func", "*postgresTransactionStorage.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var transactions []models.Transaction
	err = p.db.withRetry(ctx, func(ctx context.Context) error {
		var queryErr error
		transactions, queryErr = p.queryTransactions(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*postgresTransactionStorage.List").Msg("error listing transactions")
		return nil, err
	}

	return transactions, nil
}

func (p *postgresTransactionStorage) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var (
			id   string
			data []byte
			date sql.NullTime
		)
		if err = rows.Scan(&id, &data, &date); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		fields := make(map[string]any)
		if len(data) > 0 {
			if err = json.Unmarshal(data, &fields); err != nil {
				return nil, fmt.Errorf("%w: document %s: %w", ErrDecodingDocument, id, err)
			}
		}
		if date.Valid {
			fields[models.FieldDate] = date.Time.UTC()
		}

		transactions = append(transactions, models.Transaction{ID: id, Fields: fields})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return transactions, nil
}

func (p *postgresTransactionStorage) Create(ctx context.Context, uid string, fields map[string]any) (string, error) {
	log := logger.FromContext(ctx)

	id := p.ids.Generate()
	query, args, err := buildInsertTransactionQuery(uid, id, fields)
	if err != nil {
		log.Err(err).Str("func", "*postgresTransactionStorage.Create").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = p.exec(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postgresTransactionStorage.Create").Msg("error creating transaction")
		return "", err
	}

	return id, nil
}

func (p *postgresTransactionStorage) Merge(ctx context.Context, uid, id string, fields map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildMergeTransactionQuery(uid, id, fields)
	if err != nil {
		log.Err(err).Str("func", "*postgresTransactionStorage.Merge").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = p.exec(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postgresTransactionStorage.Merge").Str("id", id).Msg("error merging transaction")
		return err
	}

	return nil
}

func (p *postgresTransactionStorage) Delete(ctx context.Context, uid, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTransactionQuery(uid, id)
	if err != nil {
		log.Err(err).Str("func", "*postgresTransactionStorage.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// zero affected rows is fine: deleting a missing document succeeds
	if err = p.exec(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postgresTransactionStorage.Delete").Str("id", id).Msg("error deleting transaction")
		return err
	}

	return nil
}

func (p *postgresTransactionStorage) exec(ctx context.Context, query string, args ...any) error {
	return p.db.withRetry(ctx, func(ctx context.Context) error {
		if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}
