// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	httptypes "github.com/tcpfleet/agent-platform/internal/http/types"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_billing.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)

	service := NewService(mockStorage, "https://pay.example.com",
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return service, mockStorage
}

func TestService_CheckoutURL(t *testing.T) {
	service, _ := newTestService(t)

	got, err := service.CheckoutURL(context.Background(), &types.Company{ID: 42}, "price_pro_monthly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://pay.example.com/checkout?client_reference_id=42&price_id=price_pro_monthly"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestService_HandleSubscriptionEvent(t *testing.T) {
	event := func() *SubscriptionEvent {
		return &SubscriptionEvent{
			Type:           "subscription.updated",
			CompanyID:      42,
			SubscriptionID: "sub_123",
			PlanName:       "pro",
			Status:         "active",
		}
	}

	t.Run("success", func(t *testing.T) {
		service, mockStorage := newTestService(t)

		mockStorage.EXPECT().GetCompanyByID(gomock.Any(), int64(42)).Return(&types.Company{ID: 42}, nil)
		mockStorage.EXPECT().UpdateCompanyBilling(gomock.Any(), int64(42), "sub_123", "pro", "active").Return(nil)

		if err := service.HandleSubscriptionEvent(context.Background(), event()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown company", func(t *testing.T) {
		service, mockStorage := newTestService(t)

		mockStorage.EXPECT().GetCompanyByID(gomock.Any(), int64(42)).Return(nil, storage.ErrNotFound)

		err := service.HandleSubscriptionEvent(context.Background(), event())
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		service, _ := newTestService(t)

		err := service.HandleSubscriptionEvent(context.Background(), &SubscriptionEvent{Type: "subscription.updated"})

		var malformed *httptypes.MalformedInputError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedInputError, got %v", err)
		}
		if len(malformed.Fields) != 3 {
			t.Errorf("expected 3 field failures, got %v", malformed.Fields)
		}
	})
}
