// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	macaroonsTable = "macaroons"

	// the token store keeps a single row
	macaroonRowID = 1
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveMacaroonQuery(sealed []byte, storedAt any) (string, []any, error) {
	return sqlite.
		Insert(macaroonsTable).
		Columns("id", "sealed", "stored_at").
		Values(macaroonRowID, sealed, storedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET sealed = excluded.sealed, stored_at = excluded.stored_at").
		ToSql()
}

func buildLoadMacaroonQuery() (string, []any, error) {
	return sqlite.
		Select("sealed", "stored_at").
		From(macaroonsTable).
		Where(sq.Eq{"id": macaroonRowID}).
		ToSql()
}

func buildClearMacaroonQuery() (string, []any, error) {
	return sqlite.
		Delete(macaroonsTable).
		Where(sq.Eq{"id": macaroonRowID}).
		ToSql()
}
