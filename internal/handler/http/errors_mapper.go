// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/snapweb-login/internal/adapter"
	"github.com/MKhiriev/snapweb-login/internal/service"
)

var errorStatusMap = map[error]int{
	ErrMalformedForm: http.StatusBadRequest,
	ErrInvalidCookie: http.StatusBadRequest,

	adapter.ErrTransport: http.StatusBadGateway,

	service.ErrTokenStore:         http.StatusInternalServerError,
	service.ErrUnexpectedEnvelope: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
