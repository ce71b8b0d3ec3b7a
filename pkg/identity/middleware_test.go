// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

func newTestMiddleware(t *testing.T) (*Middleware, *MockResolverInterface, *authentication.SessionManager) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockResolver := NewMockResolverInterface(ctrl)

	codec := authentication.NewTokenCodec([]byte("platform-secret"), 24*time.Hour)
	sessions := authentication.NewSessionManager(codec, 7*24*time.Hour, false,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	mw := NewMiddleware(mockResolver, sessions,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return mw, mockResolver, sessions
}

func signedCookie(t *testing.T, sessions *authentication.SessionManager, session *authentication.UserSession) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := sessions.Issue(rec, session); err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	return rec.Result().Cookies()[0]
}

// A membership revoked after the cookie was minted must not survive into
// the session handlers see.
func TestMiddleware_UserContextDropsRevokedMembership(t *testing.T) {
	mw, mockResolver, sessions := newTestMiddleware(t)

	mockResolver.EXPECT().ResolveUser(gomock.Any(), gomock.Any()).
		Return(&UserContext{User: &types.User{ID: 1, Email: "actor@x.com"}}, nil)

	var seen *authentication.UserSession
	handler := mw.UserContext()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = authentication.GetUserSession(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/company/members", nil)
	r.AddCookie(signedCookie(t, sessions, &authentication.UserSession{
		UserID:  1,
		Email:   "actor@x.com",
		Company: &authentication.CompanyContext{ID: 10, Slug: "acme", Role: types.CompanyRoleOwner},
	}))
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if seen == nil {
		t.Fatal("expected a session in the request context")
	}
	if seen.Company != nil {
		t.Fatalf("expected the revoked company context to be dropped, got %+v", seen.Company)
	}
}

// The role in the cookie is stale the moment the membership row changes;
// handlers must see the stored role, not the signed one.
func TestMiddleware_UserContextUsesStoredRole(t *testing.T) {
	mw, mockResolver, sessions := newTestMiddleware(t)

	mockResolver.EXPECT().ResolveUser(gomock.Any(), gomock.Any()).
		Return(&UserContext{
			User:    &types.User{ID: 1, Email: "actor@x.com"},
			Company: &authentication.CompanyContext{ID: 10, Slug: "acme", Role: types.CompanyRoleMember},
		}, nil)

	var seen *authentication.UserSession
	handler := mw.UserContext()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = authentication.GetUserSession(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/company", nil)
	r.AddCookie(signedCookie(t, sessions, &authentication.UserSession{
		UserID:  1,
		Email:   "actor@x.com",
		Company: &authentication.CompanyContext{ID: 10, Slug: "acme", Role: types.CompanyRoleOwner},
	}))
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if seen == nil || seen.Company == nil {
		t.Fatalf("expected a company context, got %+v", seen)
	}
	if seen.Company.Role != types.CompanyRoleMember {
		t.Fatalf("expected the stored role %q, got %q", types.CompanyRoleMember, seen.Company.Role)
	}
}

func TestMiddleware_UserContextPassesThroughWithoutCookie(t *testing.T) {
	mw, _, _ := newTestMiddleware(t)

	var sawSession bool
	handler := mw.UserContext()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawSession = authentication.GetUserSession(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if sawSession {
		t.Fatal("expected no session for an anonymous request")
	}
}
