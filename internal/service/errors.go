// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUnknownAttribute   = errors.New("unknown credential attribute")
	ErrEmptyMacaroon      = errors.New("login result carries no macaroon")
	ErrTokenStore         = errors.New("cannot store macaroon")
	ErrUnexpectedEnvelope = errors.New("unexpected response envelope")
)
