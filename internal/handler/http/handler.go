// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/snapweb-login/internal/adapter"
	"github.com/MKhiriev/snapweb-login/internal/config"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/service"
	"github.com/MKhiriev/snapweb-login/internal/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Handler struct {
	services *service.Services

	pages         *template.Template
	proxy         http.Handler
	secureCookies bool
	traceIDs      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the web front handler. The /api proxy targets the
// backend configured in cfg.Adapter.
func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handler, error) {
	backend, err := adapter.ParseBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("backend address: %w", err)
	}

	pages, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	logger.Info().Str("backend", backend.String()).Msg("http handler created")
	return &Handler{
		services:      services,
		pages:         pages,
		proxy:         newAPIProxy(backend, cfg.Adapter.RequestTimeout),
		secureCookies: cfg.Server.SecureCookies,
		traceIDs:      utils.NewUUIDGenerator(),
		logger:        logger,
	}, nil
}
