package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-transactions/internal/app"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/utils"
	"github.com/MKhiriev/go-transactions/models"
)

// listTransactions answers GET /api/transactions with the caller's documents
// as a JSON array.
func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	uid, ok := utils.GetUIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoCallerInContext)
		return
	}

	transactions, err := h.services.TransactionService.List(r.Context(), uid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	if _, err = utils.WriteJSON(w, transactions, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listTransactions").Msg("error writing response")
	}
}

// upsertTransaction answers POST /api/transactions. A body with an "id"
// merges into that document, otherwise a new one is created.
func (h *Handler) upsertTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	uid, ok := utils.GetUIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoCallerInContext)
		return
	}

	body, err := decodeBody(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	req, err := models.NewUpsertRequest(body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.TransactionService.Upsert(r.Context(), uid, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("id", result.ID).Bool("created", result.Created).Msg("transaction saved")

	response := models.MessageResponse{Message: result.Message(), ID: result.ID}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.upsertTransaction").Msg("error writing response")
	}
}

// deleteTransaction answers DELETE /api/transactions?id=<id>.
func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	uid, ok := utils.GetUIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoCallerInContext)
		return
	}

	id := r.URL.Query().Get(models.FieldID)
	if err := h.services.TransactionService.Delete(r.Context(), uid, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDeleted}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTransaction").Msg("error writing response")
	}
}

// decodeBody reads exactly one JSON value. Trailing data after it is
// malformed input.
func decodeBody(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedBody)
	}

	return body, nil
}
