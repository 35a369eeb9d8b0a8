// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field names of [Credentials]. They double as the keys of
// [ValidationErrors] and as attribute names of the login model.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Credentials is the email/password pair submitted to the login endpoint.
// A value lives for one form: it is filled on submit and discarded with the
// view that owns it.
type Credentials struct {
	// Email is the store account address. Must be non-empty and
	// syntactically an address.
	Email string `json:"email"`

	// Password must be non-empty. It is never logged.
	Password string `json:"password"`
}
