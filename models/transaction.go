package models

import (
	"encoding/json"
	"maps"
)

const (
	// FieldID is the body field carrying the document identifier. It is never
	// persisted as part of the document fields.
	FieldID = "id"

	// FieldDate is the only field with a recognised type: it is persisted as a
	// native timestamp and returned as an ISO-8601 string.
	FieldDate = "date"
)

// Transaction is a single document from the caller's transaction collection.
//
// Apart from date, fields are free-form and passed through untouched. On the
// wire a Transaction is a flat JSON object: {"id": ..., ...fields}.
type Transaction struct {
	// ID is the store-assigned document identifier.
	ID string

	// Fields holds every persisted field of the document.
	Fields map[string]any
}

// MarshalJSON flattens the transaction into a single JSON object. The
// identifier always wins over a stored field that happens to be named "id".
func (t Transaction) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(t.Fields)+1)
	maps.Copy(out, t.Fields)
	out[FieldID] = t.ID

	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (t *Transaction) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	id, _ := raw[FieldID].(string)
	delete(raw, FieldID)

	t.ID = id
	t.Fields = raw
	return nil
}
