// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/MKhiriev/snapweb-login/internal/adapter"
	"github.com/MKhiriev/snapweb-login/internal/app"
	"github.com/MKhiriev/snapweb-login/internal/config"
	"github.com/MKhiriev/snapweb-login/internal/logger"
)

type App struct {
	ui        LoginUI
	adapter   adapter.ServerAdapter
	probePath string

	out    io.Writer
	logger *logger.Logger
}

func NewApp(ui LoginUI, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		ui:        ui,
		adapter:   serverAdapter,
		probePath: cfg.ProbePath,
		out:       os.Stdout,
		logger:    logger,
	}, nil
}

// Run shows the login form. After a successful login the probe path, when
// configured, is requested with the stored macaroon and its status printed.
func (a *App) Run(ctx context.Context) error {
	if err := a.ui.LoginFlow(ctx); err != nil {
		return err
	}

	if a.probePath == "" {
		fmt.Fprintln(a.out, app.MsgLoggedIn)
		return nil
	}

	env, err := a.adapter.Request(ctx, http.MethodGet, a.probePath)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Str("path", a.probePath).Msg("probe request failed")
		return fmt.Errorf("probe %s: %w", a.probePath, err)
	}

	a.logger.Info().
		Str("func", "*App.Run").
		Str("path", a.probePath).
		Str("type", env.Type).
		Int("status_code", env.StatusCode).
		Msg("probe request done")

	if env.IsError() {
		fmt.Fprintf(a.out, "%s; GET %s: %d %s: %s\n", app.MsgLoggedIn, a.probePath, env.StatusCode, env.Status, env.ErrorMessage())
		return nil
	}
	fmt.Fprintf(a.out, "%s; GET %s: %d %s\n", app.MsgLoggedIn, a.probePath, env.StatusCode, env.Status)
	return nil
}
