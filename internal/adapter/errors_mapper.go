// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/snapweb-login/models"
	"github.com/go-resty/resty/v2"
)

const maxBodyInError = 128

// mapResponse turns any HTTP completion into an envelope. A body that is not
// a JSON envelope is a transport failure.
func mapResponse(resp *resty.Response) (models.Envelope, error) {
	var env models.Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil || env.Type == "" {
		return models.Envelope{}, fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), bodySnippet(resp))
	}

	return env, nil
}

func bodySnippet(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	if len(body) > maxBodyInError {
		body = body[:maxBodyInError] + "..."
	}
	return body
}
