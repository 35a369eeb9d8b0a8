// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, trace id generation
// and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/snapweb-login/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// MacaroonCtxKey is the key used to store the caller's macaroon in the
// context. The web front puts the macaroon decoded from cookies here before
// the request is proxied to the backend.
var MacaroonCtxKey = contextKey("macaroon")

// WithMacaroon returns a copy of ctx carrying m.
func WithMacaroon(ctx context.Context, m models.Macaroon) context.Context {
	return context.WithValue(ctx, MacaroonCtxKey, m)
}

// GetMacaroonFromContext retrieves the macaroon from the context.
//
// Returns the macaroon and an ok flag:
//   - ok == true:  a non-empty macaroon is present
//   - ok == false: value is missing, empty or has an unexpected type
func GetMacaroonFromContext(ctx context.Context) (models.Macaroon, bool) {
	m, ok := ctx.Value(MacaroonCtxKey).(models.Macaroon)
	if !ok || m.IsZero() {
		return models.Macaroon{}, false
	}
	return m, true
}
