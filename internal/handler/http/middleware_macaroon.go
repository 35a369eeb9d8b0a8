// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/metrics"
	"github.com/MKhiriev/snapweb-login/internal/utils"
)

// withMacaroon decodes the SM/SD cookies and stores the macaroon in the
// request context under [utils.MacaroonCtxKey].
//
// Requests without cookies pass through unauthenticated. Cookies that do not
// decode are cleared and the request also continues unauthenticated: the
// backend decides whether the resource needs a login.
func (h *Handler) withMacaroon(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m, ok, err := macaroonFromCookies(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withMacaroon").Msg("dropping invalid macaroon cookies")
			metrics.IncError("cookies", "invalid")
			h.clearMacaroonCookies(w)
		}
		if ok {
			r = r.WithContext(utils.WithMacaroon(r.Context(), m))
		}

		next.ServeHTTP(w, r)
	})
}
