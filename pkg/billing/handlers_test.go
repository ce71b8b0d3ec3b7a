// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/tcpfleet/agent-platform/internal/logging"
)

func sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestAPI_Subscription(t *testing.T) {
	secret := []byte("webhook-secret")
	body := []byte(`{"type":"subscription.updated","company_id":42,"subscription_id":"sub_123","plan_name":"pro","status":"active"}`)

	tests := []struct {
		name           string
		body           []byte
		signature      string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:      "success",
			body:      body,
			signature: sign(secret, body),
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().HandleSubscriptionEvent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, event *SubscriptionEvent) error {
						if event.CompanyID != 42 || event.SubscriptionID != "sub_123" {
							t.Errorf("unexpected event: %+v", event)
						}
						return nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad signature",
			body:           body,
			signature:      sign([]byte("wrong-secret"), body),
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing signature",
			body:           body,
			signature:      "",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid body",
			body:           []byte("not-json"),
			signature:      sign(secret, []byte("not-json")),
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, secret, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/billing", bytes.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set(SignatureHeader, tt.signature)
			}
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}
