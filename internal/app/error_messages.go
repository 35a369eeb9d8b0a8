// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// login views, the web front handlers and middleware.
//
// All Msg* constants are human-readable strings shown in the status region of
// a login form, written into HTTP response bodies, or logged. Keeping them in
// one place keeps the terminal and web wording identical.
package app

const (
	// MsgTransportFailure is shown when the login request produced no
	// response envelope (connection refused, timeout, non-JSON body).
	MsgTransportFailure = "cannot reach the login service, please try again"

	// MsgUnexpectedResponse is shown when the backend answered with an
	// envelope that is neither "sync" nor "error", or with a sync envelope
	// whose result cannot be decoded.
	MsgUnexpectedResponse = "unexpected response from the login service"

	// MsgTokenStoreFailure is shown when the login succeeded but the
	// macaroon could not be stored.
	MsgTokenStoreFailure = "logged in, but the credentials could not be stored"

	// MsgSubmitting is shown while a login request is in flight.
	MsgSubmitting = "logging in..."

	// MsgLoggedIn is shown once the macaroon has been stored.
	MsgLoggedIn = "logged in"

	// MsgBackendUnreachable is the message of the error envelope the web
	// front returns when the backend cannot be reached through the proxy.
	MsgBackendUnreachable = "cannot reach the backend"

	// MsgMethodNotAllowed is written when a route is called with a method it
	// does not serve.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

// Error kinds the web front uses in its own error envelopes.
const (
	KindNetworkError = "network-error"
	KindBadRequest   = "bad-request"
)

// Hook names of the login form elements shared by the terminal and the web
// views: the two inputs, the submit control and the status region.
const (
	HookEmailSSO = "emailSSO"
	HookPassword = "password"
	HookLogin    = "btn-login"
	HookStatus   = "statusmessage"
)
