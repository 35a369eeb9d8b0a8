// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/snapweb-login/models"
)

// memoryMacaroonRepository keeps the macaroon in process memory. The web
// front creates one per login request and copies the result into cookies.
type memoryMacaroonRepository struct {
	mu       sync.RWMutex
	macaroon models.Macaroon
}

// NewMemoryMacaroonRepository returns an empty in-memory [MacaroonRepository].
func NewMemoryMacaroonRepository() MacaroonRepository {
	return &memoryMacaroonRepository{}
}

func (r *memoryMacaroonRepository) SaveMacaroon(_ context.Context, m models.Macaroon) error {
	if m.IsZero() {
		return ErrEmptyMacaroon
	}

	stored := models.Macaroon{
		Root:       m.Root,
		Discharges: append([]string(nil), m.Discharges...),
		StoredAt:   time.Now().UTC(),
	}

	r.mu.Lock()
	r.macaroon = stored
	r.mu.Unlock()
	return nil
}

func (r *memoryMacaroonRepository) LoadMacaroon(_ context.Context) (models.Macaroon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.macaroon.IsZero() {
		return models.Macaroon{}, ErrMacaroonNotFound
	}

	m := r.macaroon
	m.Discharges = append([]string(nil), r.macaroon.Discharges...)
	return m, nil
}

func (r *memoryMacaroonRepository) ClearMacaroon(_ context.Context) error {
	r.mu.Lock()
	r.macaroon = models.Macaroon{}
	r.mu.Unlock()
	return nil
}
