// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// AuthorizationFunc returns the Authorization header value for a request
// issued with ctx. An empty value leaves the request unauthenticated.
type AuthorizationFunc func(ctx context.Context) (string, error)

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// UseAuthorization registers a request hook that sets the Authorization
// header from fn on every request that does not already carry one. An error
// from fn aborts the request.
func (c *HTTPClient) UseAuthorization(fn AuthorizationFunc) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get("Authorization") != "" {
			return nil
		}

		value, err := fn(req.Context())
		if err != nil {
			return err
		}
		if value != "" {
			req.SetHeader("Authorization", value)
		}
		return nil
	})
	return c
}
