// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

// SubscriptionEvent is the payload the billing provider posts on every
// subscription lifecycle change.
type SubscriptionEvent struct {
	Type           string `json:"type"`
	CompanyID      int64  `json:"company_id"`
	SubscriptionID string `json:"subscription_id"`
	PlanName       string `json:"plan_name"`
	Status         string `json:"status"`
}
