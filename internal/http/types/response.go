// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package types carries the JSON envelope shared by every API surface.
package types

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope for every JSON reply.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}

func WriteResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Data:   data,
		Status: status,
	})
}

func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Message: message,
		Status:  status,
	})
}
