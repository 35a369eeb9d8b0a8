// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Messages recorded in models.ValidationErrors.
const (
	MsgRequired     = "is required"
	MsgInvalidEmail = "must be a valid email address"
)
