// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrTransport is returned when a request produced no response envelope.
	ErrTransport = errors.New("transport failure")

	ErrInvalidAddress = errors.New("invalid adapter http address")
)
