package store

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-transactions/models"
)

const transactionsTable = "transactions"

const (
	mergeKeepDate = `ON CONFLICT (user_id, id) DO UPDATE SET
		data = transactions.data || EXCLUDED.data,
		updated_at = NOW()`

	mergeReplaceDate = `ON CONFLICT (user_id, id) DO UPDATE SET
		data = (transactions.data - 'date') || EXCLUDED.data,
		date = EXCLUDED.date,
		updated_at = NOW()`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// splitDocument separates a native "date" timestamp, which lives in its own
// column, from the remaining fields, which are stored as JSONB. A "date" of
// any other type stays in the JSON.
func splitDocument(fields map[string]any) (data string, date any, err error) {
	rest := make(map[string]any, len(fields))
	maps.Copy(rest, fields)

	if t, ok := rest[models.FieldDate].(time.Time); ok {
		date = t.UTC()
		delete(rest, models.FieldDate)
	}

	b, err := json.Marshal(rest)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return string(b), date, nil
}

func buildSelectUserTransactionsQuery(uid string) (string, []any, error) {
	return psql.
		Select("id", "data", "date").
		From(transactionsTable).
		Where(sq.Eq{"user_id": uid}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildInsertTransactionQuery(uid, id string, fields map[string]any) (string, []any, error) {
	data, date, err := splitDocument(fields)
	if err != nil {
		return "", nil, err
	}

	return psql.
		Insert(transactionsTable).
		Columns("user_id", "id", "data", "date").
		Values(uid, id, data, date).
		ToSql()
}

// buildMergeTransactionQuery upserts a document. Top-level JSON keys present
// in fields overwrite stored ones; a supplied "date" replaces the stored date
// wherever it lived.
func buildMergeTransactionQuery(uid, id string, fields map[string]any) (string, []any, error) {
	data, date, err := splitDocument(fields)
	if err != nil {
		return "", nil, err
	}

	onConflict := mergeKeepDate
	if _, ok := fields[models.FieldDate]; ok {
		onConflict = mergeReplaceDate
	}

	return psql.
		Insert(transactionsTable).
		Columns("user_id", "id", "data", "date").
		Values(uid, id, data, date).
		Suffix(onConflict).
		ToSql()
}

func buildDeleteTransactionQuery(uid, id string) (string, []any, error) {
	return psql.
		Delete(transactionsTable).
		Where(sq.And{sq.Eq{"user_id": uid}, sq.Eq{"id": id}}).
		ToSql()
}
