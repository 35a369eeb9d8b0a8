// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// Macaroon is the stored credential pair returned by a successful login.
// Both values are opaque; they are only ever echoed back to the backend.
type Macaroon struct {
	// Root is the root macaroon.
	Root string `json:"macaroon"`

	// Discharges are the discharge macaroons bound to Root.
	Discharges []string `json:"discharges"`

	// StoredAt is the time the pair was written to the token store.
	StoredAt time.Time `json:"stored_at"`
}

// NewMacaroon builds a [Macaroon] from a login result.
func NewMacaroon(res LoginResult) Macaroon {
	discharges := make([]string, len(res.Discharges))
	copy(discharges, res.Discharges)
	return Macaroon{Root: res.Macaroon, Discharges: discharges}
}

// IsZero reports whether no macaroon is set.
func (m Macaroon) IsZero() bool {
	return m.Root == ""
}

// AuthorizationHeader renders the value of the Authorization header that
// authenticates follow-up requests:
//
//	Macaroon root="<root>", discharge="<d1>", discharge="<d2>"
//
// It returns an empty string for a zero macaroon.
func (m Macaroon) AuthorizationHeader() string {
	if m.IsZero() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Macaroon root=%q", m.Root)
	for _, d := range m.Discharges {
		fmt.Fprintf(&b, ", discharge=%q", d)
	}
	return b.String()
}
