// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/snapweb-login/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// CredentialModel is the login form's model: it holds the email/password
// attributes, validates them and submits them to the backend.
type CredentialModel interface {
	// Set stores value under field. Only models.FieldEmail and
	// models.FieldPassword are known; any other field yields
	// ErrUnknownAttribute.
	Set(field, value string) error

	// Get returns the value stored under field.
	Get(field string) (string, error)

	// Attributes returns the current attributes as credentials.
	Attributes() models.Credentials

	// Validate returns nil when creds may be submitted, otherwise a
	// non-empty mapping from field name to problems.
	Validate(creds models.Credentials) models.ValidationErrors

	// Save validates the current attributes and, when they are valid, posts
	// them to the login endpoint. Invalid attributes are returned as a
	// models.ValidationErrors error and nothing is sent. Any HTTP completion
	// yields the parsed envelope; only transport failures are errors.
	Save(ctx context.Context) (models.Envelope, error)

	// SetMacaroonCookiesFromResponse stores the macaroon pair of a successful
	// login in the token store consulted by the HTTP layer.
	SetMacaroonCookiesFromResponse(ctx context.Context, res models.LoginResult) error

	// Reset clears the attributes.
	Reset()
}

// AppInfoService exposes the build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
