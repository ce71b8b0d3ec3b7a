// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "errors"

var (
	// ErrInvalidCredentials covers unknown principals and bad secrets
	// alike so callers cannot probe which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExpired            = errors.New("credential expired")
	ErrAlreadyUsed        = errors.New("credential already used")
	ErrAccessDenied       = errors.New("access denied")
	ErrNotFound           = errors.New("not found")

	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrWrongTokenType   = errors.New("wrong token type")
)
