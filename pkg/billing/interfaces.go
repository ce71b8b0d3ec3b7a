// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"

	"github.com/tcpfleet/agent-platform/internal/types"
)

type ServiceInterface interface {
	CheckoutURL(ctx context.Context, company *types.Company, priceID string) (string, error)
	HandleSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) error
}

// StorageInterface is the subset of the storage layer the billing
// package needs.
type StorageInterface interface {
	GetCompanyByID(ctx context.Context, id int64) (*types.Company, error)
	UpdateCompanyBilling(ctx context.Context, id int64, subscriptionID, planName, status string) error
}
