// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/snapweb-login/internal/crypto"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/models"
)

// macaroonRepository is the SQLite-backed implementation of
// [MacaroonRepository]. The macaroon pair is JSON-encoded and sealed with a
// [crypto.TokenSealer] before it reaches the database, so the file never
// holds the tokens in clear.
type macaroonRepository struct {
	db     *DB
	sealer crypto.TokenSealer
	logger *logger.Logger
	now    func() time.Time
}

// NewMacaroonRepository constructs a [MacaroonRepository] backed by db.
func NewMacaroonRepository(db *DB, sealer crypto.TokenSealer, logger *logger.Logger) MacaroonRepository {
	logger.Debug().Msg("creating macaroon repository")
	return &macaroonRepository{
		db:     db,
		sealer: sealer,
		logger: logger,
		now:    time.Now,
	}
}

// SaveMacaroon replaces the stored macaroon with m. StoredAt is set to the
// current time.
func (r *macaroonRepository) SaveMacaroon(ctx context.Context, m models.Macaroon) error {
	log := logger.FromContext(ctx)

	if m.IsZero() {
		return ErrEmptyMacaroon
	}

	m.StoredAt = r.now().UTC()
	plaintext, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode macaroon: %w", err)
	}

	sealed, err := r.sealer.Seal(plaintext)
	if err != nil {
		log.Err(err).Str("func", "*macaroonRepository.SaveMacaroon").Msg("error sealing macaroon")
		return fmt.Errorf("seal macaroon: %w", err)
	}

	query, args, err := buildSaveMacaroonQuery(sealed, m.StoredAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*macaroonRepository.SaveMacaroon").Msg("error saving macaroon")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*macaroonRepository.SaveMacaroon").Int("discharges", len(m.Discharges)).Msg("macaroon stored")
	return nil
}

// LoadMacaroon returns the stored macaroon or [ErrMacaroonNotFound].
func (r *macaroonRepository) LoadMacaroon(ctx context.Context) (models.Macaroon, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadMacaroonQuery()
	if err != nil {
		return models.Macaroon{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		sealed   []byte
		storedAt time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&sealed, &storedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Macaroon{}, ErrMacaroonNotFound
	case err != nil:
		log.Err(err).Str("func", "*macaroonRepository.LoadMacaroon").Msg("error loading macaroon")
		return models.Macaroon{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	plaintext, err := r.sealer.Open(sealed)
	if err != nil {
		log.Err(err).Str("func", "*macaroonRepository.LoadMacaroon").Msg("error opening sealed macaroon")
		return models.Macaroon{}, fmt.Errorf("%w: %w", ErrCorruptedMacaroon, err)
	}

	var m models.Macaroon
	if err = json.Unmarshal(plaintext, &m); err != nil {
		return models.Macaroon{}, fmt.Errorf("%w: %w", ErrCorruptedMacaroon, err)
	}
	m.StoredAt = storedAt

	return m, nil
}

// ClearMacaroon removes the stored macaroon. Clearing an empty store is not
// an error.
func (r *macaroonRepository) ClearMacaroon(ctx context.Context) error {
	query, args, err := buildClearMacaroonQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*macaroonRepository.ClearMacaroon").Msg("error clearing macaroon")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
