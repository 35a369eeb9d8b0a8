// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_sealer_mock.go -package=mock

// TokenSealer protects macaroons at rest in the client token store.
// It knows nothing about the network, the database or the login flow.
//
// Blob layout produced by Seal:
//
//	salt (16 bytes) ‖ nonce (12 bytes) ‖ ciphertext
//
// The sealing key is derived from the configured secret and the salt with
// Argon2id, so two seals of the same plaintext never share a key.
type TokenSealer interface {
	// Seal encrypts plaintext with AES-256-GCM under a freshly derived key.
	Seal(plaintext []byte) ([]byte, error)

	// Open reverses Seal. It fails with ErrBlobTooShort for truncated input
	// and with ErrOpenFailed when the secret is wrong or the blob was
	// tampered with.
	Open(blob []byte) ([]byte, error)
}
