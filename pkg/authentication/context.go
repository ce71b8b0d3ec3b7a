// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Private key types to avoid collisions.
type sessionContextKey struct{}
type agentContextKey struct{}

var userSessionKey = sessionContextKey{}
var agentIdentityKey = agentContextKey{}

// WithUserSession returns a new context carrying the decoded session.
func WithUserSession(ctx context.Context, session *UserSession) context.Context {
	return context.WithValue(ctx, userSessionKey, session)
}

// GetUserSession retrieves the session from the context.
// Returns nil and false if no session is present.
func GetUserSession(ctx context.Context) (*UserSession, bool) {
	s, ok := ctx.Value(userSessionKey).(*UserSession)
	return s, ok
}

// WithAgentIdentity returns a new context carrying the verified agent.
func WithAgentIdentity(ctx context.Context, identity *AgentIdentity) context.Context {
	return context.WithValue(ctx, agentIdentityKey, identity)
}

// GetAgentIdentity retrieves the agent identity from the context.
func GetAgentIdentity(ctx context.Context) (*AgentIdentity, bool) {
	a, ok := ctx.Value(agentIdentityKey).(*AgentIdentity)
	return a, ok
}
