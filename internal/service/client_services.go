// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/snapweb-login/internal/adapter"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/store"
	"github.com/MKhiriev/snapweb-login/internal/validators"
	"github.com/MKhiriev/snapweb-login/models"
)

// ClientServices wires the terminal client: one login model writing into the
// sealed SQLite token store.
type ClientServices struct {
	LoginModel CredentialModel
	AppInfo    AppInfoService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, info models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		LoginModel: NewLoginModel(validators.NewCredentialsValidator(), serverAdapter, storages.MacaroonRepository, logger),
		AppInfo:    NewAppInfoService(info, logger),
	}
}

// LoginModelFactory builds a model writing into tokens. The web front creates
// one model per request.
type LoginModelFactory func(tokens store.MacaroonRepository) CredentialModel

// Services wires the web front.
type Services struct {
	NewLoginModel LoginModelFactory
	AppInfo       AppInfoService
}

func NewServices(serverAdapter adapter.ServerAdapter, info models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewCredentialsValidator()

	return &Services{
		NewLoginModel: func(tokens store.MacaroonRepository) CredentialModel {
			return NewLoginModel(validator, serverAdapter, tokens, logger)
		},
		AppInfo: NewAppInfoService(info, logger),
	}
}
