// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/internal/utils"
)

// withActor attributes the request to the subject of its bearer token.
//
// Authentication is optional: requests without an Authorization header are
// served anonymously, and when no sign key is configured the header is not
// inspected at all. A header that is present but malformed, expired or
// signed with another key is rejected with 401 Unauthorized.
func (h *Handler) withActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if h.tokenSignKey == "" || authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withActor").Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		actor, err := utils.ValidateAndParseJWTToken(token, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withActor").Msg("rejected bearer token")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithActor(r.Context(), actor)))
	})
}
