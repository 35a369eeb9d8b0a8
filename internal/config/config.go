// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging the .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: logging, token sealing key and the
	// probe path requested after login.
	App App `envPrefix:"APP_"`

	// Adapter holds settings for the outbound connection to the
	// authentication backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local token store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and cookie settings of the web front.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level configuration values.
type App struct {
	// HashKey is the secret the token store sealing key is derived from.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// ProbePath is an API path the client requests with the stored
	// macaroon right after login. Empty disables the probe.
	// Env: APP_PROBE_PATH
	ProbePath string `env:"PROBE_PATH"`
}

// Adapter holds settings for the connection to the authentication backend.
type Adapter struct {
	// HTTPAddress is the backend base URL or host:port.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// LoginPath is the path credentials are POSTed to.
	// Env: ADAPTER_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local storage backends.
type Storage struct {
	// DB holds the SQLite token store settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite token store.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings for the web front.
type Server struct {
	// HTTPAddress is the TCP address the web front listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SecureCookies marks the macaroon cookies Secure (HTTPS only).
	// Env: SERVER_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`
}

// Defaults applied to every field no source has set.
const (
	DefaultAdapterAddress        = "http://localhost:8080"
	DefaultLoginPath             = "/api/v2/login"
	DefaultAdapterRequestTimeout = 15 * time.Second
	DefaultServerAddress         = "localhost:4200"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultDSN                   = "snapweb-login.db"
	DefaultLogLevel              = "info"
	DefaultLogFile               = "logs/snapweb-login.log"
	DefaultDotEnvPath            = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
			LogFile:  DefaultLogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			LoginPath:      DefaultLoginPath,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources. args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
