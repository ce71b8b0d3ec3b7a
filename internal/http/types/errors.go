// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"net/http"

	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

// StatusForError maps the service error taxonomy to HTTP status codes.
// Unknown errors map to 500 so nothing internal leaks by default.
func StatusForError(err error) int {
	var malformed *MalformedInputError

	switch {
	case errors.As(err, &malformed):
		return http.StatusBadRequest
	case errors.Is(err, authentication.ErrInvalidCredentials),
		errors.Is(err, authentication.ErrExpired),
		errors.Is(err, authentication.ErrInvalidSignature),
		errors.Is(err, authentication.ErrMalformedToken),
		errors.Is(err, authentication.ErrWrongTokenType):
		return http.StatusUnauthorized
	case errors.Is(err, authentication.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, authentication.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, authentication.ErrAlreadyUsed), errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err with its mapped status. Internal errors get a
// generic message.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	WriteErrorResponse(w, status, message)
}
