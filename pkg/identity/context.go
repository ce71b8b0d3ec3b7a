// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import "context"

// Private key types to avoid collisions.
type userContextKey struct{}
type agentContextKey struct{}

var userKey = userContextKey{}
var agentKey = agentContextKey{}

// WithUserContext returns a new context carrying the resolved user.
func WithUserContext(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, userKey, uc)
}

// GetUserContext retrieves the resolved user from the context.
func GetUserContext(ctx context.Context) (*UserContext, bool) {
	uc, ok := ctx.Value(userKey).(*UserContext)
	return uc, ok
}

// WithAgentContext returns a new context carrying the resolved agent.
func WithAgentContext(ctx context.Context, ac *AgentContext) context.Context {
	return context.WithValue(ctx, agentKey, ac)
}

// GetAgentContext retrieves the resolved agent from the context.
func GetAgentContext(ctx context.Context) (*AgentContext, bool) {
	ac, ok := ctx.Value(agentKey).(*AgentContext)
	return ac, ok
}
