// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMacaroonNotFound is returned when the token store holds no macaroon.
	ErrMacaroonNotFound = errors.New("macaroon was not found")

	// ErrEmptyMacaroon is returned when a macaroon without a root is saved.
	ErrEmptyMacaroon = errors.New("macaroon is empty")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning the stored row fails.
	ErrScanningRow = errors.New("failed to scan macaroon row")

	// ErrCorruptedMacaroon is returned when the stored blob cannot be opened
	// or decoded, e.g. after the hash key was changed.
	ErrCorruptedMacaroon = errors.New("stored macaroon cannot be read")
)
