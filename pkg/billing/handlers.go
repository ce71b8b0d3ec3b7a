// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/tcpfleet/agent-platform/internal/http/types"
	"github.com/tcpfleet/agent-platform/internal/logging"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body,
// keyed with the shared webhook secret.
const SignatureHeader = "X-Billing-Signature"

type API struct {
	service ServiceInterface
	secret  []byte

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, secret []byte, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		secret:  secret,

		logger: logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/webhooks/billing", a.subscription)
}

func (a *API) subscription(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if !a.verifySignature(body, r.Header.Get(SignatureHeader)) {
		a.logger.Security().AuthnFailure("billing-webhook", "bad signature")
		httptypes.WriteErrorResponse(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var event SubscriptionEvent
	if err := json.Unmarshal(body, &event); err != nil {
		httptypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.service.HandleSubscriptionEvent(r.Context(), &event); err != nil {
		a.logger.Errorf("failed to handle subscription event: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) verifySignature(body []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, a.secret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
