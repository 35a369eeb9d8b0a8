// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/snapweb-login/internal/adapter"
	"github.com/MKhiriev/snapweb-login/internal/app"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/metrics"
	"github.com/MKhiriev/snapweb-login/internal/utils"
)

// newAPIProxy forwards requests to backend unchanged apart from
// authorization: the macaroon decoded from cookies becomes the
// Authorization header and the cookies themselves are not forwarded. A
// client-supplied Authorization header is always dropped.
func newAPIProxy(backend *url.URL, timeout time.Duration) *httputil.ReverseProxy {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = timeout

	return &httputil.ReverseProxy{
		Transport: transport,
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(backend)
			pr.Out.Header.Del("Cookie")
			pr.Out.Header.Del("Authorization")

			if m, ok := utils.GetMacaroonFromContext(pr.In.Context()); ok {
				pr.Out.Header.Set("Authorization", m.AuthorizationHeader())
			}
		},
		ModifyResponse: func(resp *http.Response) error {
			authorized := resp.Request.Header.Get("Authorization") != ""
			metrics.IncProxyRequest(resp.Request.Method, strconv.Itoa(resp.StatusCode), authorized)
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.FromRequest(r).Err(err).
				Str("func", "apiProxy.ErrorHandler").
				Str("path", r.URL.Path).
				Msg("backend request failed")
			metrics.IncError("proxy", "backend_unreachable")

			status := statusFromError(fmt.Errorf("%w: %w", adapter.ErrTransport, err))
			metrics.IncProxyRequest(r.Method, strconv.Itoa(status), r.Header.Get("Authorization") != "")
			utils.WriteErrorEnvelope(w, status, app.KindNetworkError, app.MsgBackendUnreachable)
		},
	}
}
