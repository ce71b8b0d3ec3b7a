// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package billing integrates the hosted checkout of the external
// billing provider and ingests its subscription webhooks.
package billing

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	httptypes "github.com/tcpfleet/agent-platform/internal/http/types"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	providerURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	providerURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		providerURL: providerURL,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CheckoutURL builds the provider-hosted checkout page for a company.
// The provider calls back on the subscription webhook once payment
// settles.
func (s *Service) CheckoutURL(ctx context.Context, company *types.Company, priceID string) (string, error) {
	_, span := s.tracer.Start(ctx, "billing.Service.CheckoutURL")
	defer span.End()

	base, err := url.Parse(s.providerURL)
	if err != nil {
		return "", fmt.Errorf("invalid billing provider url: %w", err)
	}

	checkout := base.JoinPath("checkout")
	query := checkout.Query()
	query.Set("client_reference_id", strconv.FormatInt(company.ID, 10))
	query.Set("price_id", priceID)
	checkout.RawQuery = query.Encode()

	return checkout.String(), nil
}

// HandleSubscriptionEvent applies one provider event to the company's
// billing columns. Events for unknown companies are an error; the
// provider retries on anything but 2xx.
func (s *Service) HandleSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.HandleSubscriptionEvent")
	defer span.End()

	var missing []string
	if event.CompanyID == 0 {
		missing = append(missing, `company_id failed on "required"`)
	}
	if event.SubscriptionID == "" {
		missing = append(missing, `subscription_id failed on "required"`)
	}
	if event.Status == "" {
		missing = append(missing, `status failed on "required"`)
	}
	if len(missing) > 0 {
		return &httptypes.MalformedInputError{Fields: missing}
	}

	company, err := s.storage.GetCompanyByID(ctx, event.CompanyID)
	if err != nil {
		return err
	}

	if err := s.storage.UpdateCompanyBilling(ctx, company.ID, event.SubscriptionID, event.PlanName, event.Status); err != nil {
		return err
	}

	s.logger.Infof("subscription %s for company %d is now %s", event.SubscriptionID, company.ID, event.Status)
	return nil
}
