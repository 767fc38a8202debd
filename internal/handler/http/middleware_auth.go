package http

import (
	"net/http"

	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/utils"
)

// auth is an HTTP middleware that resolves the caller from a bearer token.
//
// It extracts the token from the "Authorization" header, verifies it via
// AuthService.Authenticate and stores the caller's uid in the request
// context under [utils.UIDCtxKey]. Every refusal is answered with
// 401 {"error":"Unauthorized"} before any storage is touched; a broken
// identity provider setup is a 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		// requests of a verified caller log its uid
		l := log.With().Str("uid", identity.UID).Logger()
		ctx = l.WithContext(utils.WithUID(ctx, identity.UID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
