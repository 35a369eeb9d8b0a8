// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidCookie is returned when the SM or SD cookie is present but
	// does not decode.
	ErrInvalidCookie = errors.New("invalid macaroon cookie")

	// ErrMalformedForm is returned when the login form body cannot be parsed.
	ErrMalformedForm = errors.New("malformed login form")
)
