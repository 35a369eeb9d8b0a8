// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/snapweb-login/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// MacaroonRepository is the token store written by a successful login and
// read by the HTTP layer before every follow-up request. It holds at most
// one macaroon; saving replaces the previous one.
type MacaroonRepository interface {
	SaveMacaroon(ctx context.Context, m models.Macaroon) error
	LoadMacaroon(ctx context.Context) (models.Macaroon, error)
	ClearMacaroon(ctx context.Context) error
}
