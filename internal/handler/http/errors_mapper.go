package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-transactions/internal/app"
	"github.com/MKhiriev/go-transactions/internal/cloud"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/service"
	"github.com/MKhiriev/go-transactions/internal/utils"
	"github.com/MKhiriev/go-transactions/models"
)

// errorStatus binds a sentinel to a response. An empty message means the
// error text itself is sent.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusTable is matched top to bottom with errors.Is; the first hit
// wins. Anything unmatched is a 500.
var errorStatusTable = []errorStatus{
	{service.ErrUnauthorized, http.StatusUnauthorized, app.MsgUnauthorized},
	{service.ErrMissingUID, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrNoCallerInContext, http.StatusUnauthorized, app.MsgUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},

	{service.ErrMissingTransactionID, http.StatusBadRequest, app.MsgMissingID},
	{service.ErrInvalidTransactionID, http.StatusBadRequest, ""},
	{models.ErrIDIsNotAString, http.StatusBadRequest, ""},
	{models.ErrInvalidDate, http.StatusBadRequest, ""},

	{cloud.ErrFirebaseInit, http.StatusInternalServerError, ""},
}

func describeError(err error) (int, string) {
	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			if e.message != "" {
				return e.status, e.message
			}
			return e.status, err.Error()
		}
	}
	return http.StatusInternalServerError, err.Error()
}

// writeError logs err and sends it as {"error": "..."}.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := describeError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		if h.hideInternalErrors {
			message = app.MsgInternalServerError
		}
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
