// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"fmt"

	"github.com/MKhiriev/snapweb-login/internal/config"
	"github.com/MKhiriev/snapweb-login/internal/handler/http"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	h, err := http.NewHandler(services, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create http handler: %w", err)
	}

	return &Handlers{HTTP: h}, nil
}
