// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrEmptySecret  = errors.New("sealing secret is empty")
	ErrBlobTooShort = errors.New("sealed blob too short")
	ErrOpenFailed   = errors.New("cannot open sealed blob")
)
