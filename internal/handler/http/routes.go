// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/metrics", promhttp.Handler().ServeHTTP)
	router.Get("/version", h.getServerVersion)

	// pages and the proxy see the macaroon decoded from cookies
	router.Group(func(r chi.Router) {
		r.Use(h.withMacaroon)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Compress(5, "text/html"))
			r.Get("/", h.index)
			r.Get("/login", h.showLogin)
			r.Post("/login", h.submitLogin)
			r.Post("/logout", h.logout)
		})

		r.Handle("/api/*", h.proxy)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
