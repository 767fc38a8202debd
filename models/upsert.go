package models

import (
	"errors"
	"fmt"
)

var (
	// ErrBodyIsNotAnObject is returned when an upsert body decodes to
	// something other than a JSON object.
	ErrBodyIsNotAnObject = errors.New("request body must be a JSON object")

	// ErrIDIsNotAString is returned when the body carries an identifier of a
	// non-string type.
	ErrIDIsNotAString = errors.New("transaction id must be a string")
)

// UpsertRequest is a decoded POST body: the optional identifier split off from
// the fields that will be persisted.
type UpsertRequest struct {
	// ID is empty when a new document has to be created.
	ID string

	// Fields are all body fields except the identifier.
	Fields map[string]any
}

// NewUpsertRequest builds an UpsertRequest from a decoded JSON body.
//
// The persisted field map is every body field except "id". A missing or falsy
// id ("", 0, false, null) means "create"; any other non-string id is rejected.
func NewUpsertRequest(body any) (UpsertRequest, error) {
	obj, ok := body.(map[string]any)
	if !ok {
		return UpsertRequest{}, fmt.Errorf("%w: got %T", ErrBodyIsNotAnObject, body)
	}

	fields := make(map[string]any, len(obj))
	for k, v := range obj {
		if k == FieldID {
			continue
		}
		fields[k] = v
	}

	req := UpsertRequest{Fields: fields}

	switch id := obj[FieldID].(type) {
	case nil:
	case string:
		req.ID = id
	default:
		if truthy(id) {
			return UpsertRequest{}, fmt.Errorf("%w: got %T", ErrIDIsNotAString, id)
		}
	}

	return req, nil
}

// UpsertResult reports what an upsert did.
type UpsertResult struct {
	// ID is the effective document identifier.
	ID string

	// Created is true when a new document was created, false on merge.
	Created bool
}

// Message returns the human-readable outcome sent back to the caller.
func (r UpsertResult) Message() string {
	if r.Created {
		return "Created"
	}
	return "Updated"
}
