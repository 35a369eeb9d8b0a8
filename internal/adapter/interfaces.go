// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the authentication backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Every HTTP completion that carries a JSON envelope is returned to the caller
// as a [models.Envelope], whatever its status code: the backend reports
// authentication failures inside the envelope, and the transport status may
// disagree with the envelope's own. Only failures that yield no envelope at
// all (connection refused, timeout, non-JSON body) are returned as errors
// wrapping [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/snapweb-login/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// authentication backend.
type ServerAdapter interface {
	// Login posts creds to the login endpoint and returns the parsed
	// response envelope.
	Login(ctx context.Context, creds models.Credentials) (models.Envelope, error)

	// Request issues a follow-up request to path. When a macaroon source is
	// configured the request carries the stored macaroon in its
	// Authorization header.
	Request(ctx context.Context, method, path string) (models.Envelope, error)
}

// MacaroonSource is the token store consulted before every follow-up
// request. ClearMacaroon drops a stored macaroon that cannot be read.
type MacaroonSource interface {
	LoadMacaroon(ctx context.Context) (models.Macaroon, error)
	ClearMacaroon(ctx context.Context) error
}
