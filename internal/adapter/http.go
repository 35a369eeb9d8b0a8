// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/snapweb-login/internal/config"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/store"
	"github.com/MKhiriev/snapweb-login/internal/utils"
	"github.com/MKhiriev/snapweb-login/models"
)

type httpServerAdapter struct {
	client      *utils.HTTPClient
	loginClient *utils.HTTPClient
	loginPath   string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// When tokens is not nil, every follow-up request is authorized with the
// macaroon it holds. A missing macaroon leaves the request unauthenticated.
// The login request is never authorized.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens MacaroonSource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := newClient(baseURL, adapterCfg.RequestTimeout)
	if tokens != nil {
		client.UseAuthorization(macaroonAuthorization(tokens, logger))
	}

	loginPath := adapterCfg.LoginPath
	if loginPath == "" {
		loginPath = config.DefaultLoginPath
	}

	return &httpServerAdapter{
		client:      client,
		loginClient: newClient(baseURL, adapterCfg.RequestTimeout),
		loginPath:   loginPath,
		logger:      logger,
	}, nil
}

func newClient(baseURL string, timeout time.Duration) *utils.HTTPClient {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return client
}

// macaroonAuthorization reads the header value from tokens. A macaroon that
// can no longer be opened is cleared and the request goes out unauthenticated.
func macaroonAuthorization(tokens MacaroonSource, log *logger.Logger) utils.AuthorizationFunc {
	return func(ctx context.Context) (string, error) {
		m, err := tokens.LoadMacaroon(ctx)
		switch {
		case err == nil:
			return m.AuthorizationHeader(), nil
		case errors.Is(err, store.ErrMacaroonNotFound):
			return "", nil
		case errors.Is(err, store.ErrCorruptedMacaroon):
			log.Warn().Err(err).Str("func", "macaroonAuthorization").Msg("dropping unreadable macaroon")
			if err = tokens.ClearMacaroon(ctx); err != nil {
				return "", fmt.Errorf("clear macaroon: %w", err)
			}
			return "", nil
		default:
			return "", fmt.Errorf("load macaroon: %w", err)
		}
	}
}

// ParseBaseURL normalises raw the way [NewHTTPServerAdapter] does and
// returns it parsed.
func ParseBaseURL(raw string) (*url.URL, error) {
	s, err := normalizeBaseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return url.Parse(s)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs creds as JSON to the configured
// login path. The password never reaches the logs.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Envelope, error) {
	log := logger.FromContext(ctx)

	resp, err := h.loginClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(h.loginPath)
	if err != nil {
		log.Err(err).Str("func", "*httpServerAdapter.Login").Msg("login request failed")
		return models.Envelope{}, fmt.Errorf("%w: login request: %w", ErrTransport, err)
	}

	env, err := mapResponse(resp)
	if err != nil {
		log.Err(err).Str("func", "*httpServerAdapter.Login").Msg("login response is not an envelope")
		return models.Envelope{}, err
	}

	log.Debug().
		Str("func", "*httpServerAdapter.Login").
		Int("http_status", resp.StatusCode()).
		Str("type", env.Type).
		Int("status_code", env.StatusCode).
		Msg("login response received")

	return env, nil
}

// Request implements [ServerAdapter].
func (h *httpServerAdapter) Request(ctx context.Context, method, path string) (models.Envelope, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Execute(method, path)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	return mapResponse(resp)
}
