// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

func newTestGate(t *testing.T) (*Gate, *authentication.SessionManager) {
	t.Helper()

	codec := authentication.NewTokenCodec([]byte("platform-secret"), 24*time.Hour)
	sessions := authentication.NewSessionManager(codec, 7*24*time.Hour, false,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	gate := NewGate(DefaultConfig(), sessions,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return gate, sessions
}

func passThroughHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func validSessionCookie(t *testing.T, sessions *authentication.SessionManager) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	err := sessions.Issue(rec, &authentication.UserSession{UserID: 1, Email: "user@example.com"})
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	return rec.Result().Cookies()[0]
}

func TestGate_PublicPathPassesThrough(t *testing.T) {
	gate, _ := newTestGate(t)

	for _, path := range []string{"/", "/sign-in", "/sign-up"} {
		var called bool
		r := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

		if !called {
			t.Fatalf("expected %s to pass through, got status %d", path, rec.Code)
		}
	}
}

func TestGate_AuthPageRedirectsSignedInUser(t *testing.T) {
	gate, sessions := newTestGate(t)

	var called bool
	r := httptest.NewRequest(http.MethodGet, "/sign-in", nil)
	r.AddCookie(validSessionCookie(t, sessions))
	rec := httptest.NewRecorder()

	gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

	if called {
		t.Fatal("expected redirect, handler was called")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestGate_AuthPageWithInvalidCookiePasses(t *testing.T) {
	gate, _ := newTestGate(t)

	var called bool
	r := httptest.NewRequest(http.MethodGet, "/sign-in", nil)
	r.AddCookie(&http.Cookie{Name: authentication.SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()

	gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

	if !called {
		t.Fatalf("expected pass through to auth page, got status %d", rec.Code)
	}
}

func TestGate_AgentAPIRequiresBearer(t *testing.T) {
	gate, _ := newTestGate(t)

	var called bool
	r := httptest.NewRequest(http.MethodPost, "/api/v1/agent/telemetry", nil)
	rec := httptest.NewRecorder()

	gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

	if called {
		t.Fatal("expected 401, handler was called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGate_AgentAPIStructuralBearerPasses(t *testing.T) {
	gate, _ := newTestGate(t)

	// The gate only checks the header shape; the token is garbage and
	// verification is left to the agent middleware.
	var called bool
	r := httptest.NewRequest(http.MethodPost, "/api/v1/agent/telemetry", nil)
	r.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()

	gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

	if !called {
		t.Fatalf("expected pass through, got status %d", rec.Code)
	}
}

func TestGate_APIAcceptsCookieOrBearer(t *testing.T) {
	gate, sessions := newTestGate(t)

	testCases := []struct {
		name     string
		decorate func(r *http.Request)
		expected int
	}{
		{
			name:     "neither credential",
			decorate: func(r *http.Request) {},
			expected: http.StatusUnauthorized,
		},
		{
			name: "session cookie",
			decorate: func(r *http.Request) {
				r.AddCookie(validSessionCookie(t, sessions))
			},
			expected: http.StatusOK,
		},
		{
			name: "bearer header",
			decorate: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer some-token")
			},
			expected: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var called bool
			r := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
			tc.decorate(r)
			rec := httptest.NewRecorder()

			gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

			if rec.Code != tc.expected {
				t.Fatalf("expected %d, got %d", tc.expected, rec.Code)
			}
		})
	}
}

func TestGate_ProtectedPageRedirectsWithReturnPath(t *testing.T) {
	gate, _ := newTestGate(t)

	var called bool
	r := httptest.NewRequest(http.MethodGet, "/dashboard/settings", nil)
	rec := httptest.NewRecorder()

	gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

	if called {
		t.Fatal("expected redirect, handler was called")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/sign-in?redirect=%2Fdashboard%2Fsettings" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestGate_ProtectedGetRefreshesSession(t *testing.T) {
	gate, sessions := newTestGate(t)

	var called bool
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(validSessionCookie(t, sessions))
	rec := httptest.NewRecorder()

	gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

	if !called {
		t.Fatalf("expected pass through, got status %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != authentication.SessionCookieName {
		t.Fatalf("expected a refreshed session cookie, got %v", cookies)
	}
	if cookies[0].Value == "" {
		t.Fatal("expected non-empty refreshed cookie")
	}
}

func TestGate_ProtectedPostDoesNotRefresh(t *testing.T) {
	gate, sessions := newTestGate(t)

	var called bool
	r := httptest.NewRequest(http.MethodPost, "/dashboard/form", nil)
	r.AddCookie(validSessionCookie(t, sessions))
	rec := httptest.NewRecorder()

	gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

	if !called {
		t.Fatalf("expected pass through, got status %d", rec.Code)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("expected no cookie writes on POST, got %v", cookies)
	}
}

func TestGate_ProtectedGetWithBadCookieClearsAndRedirects(t *testing.T) {
	gate, _ := newTestGate(t)

	var called bool
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: authentication.SessionCookieName, Value: "tampered"})
	rec := httptest.NewRecorder()

	gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

	if called {
		t.Fatal("expected redirect, handler was called")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected cookie deletion, got %v", cookies)
	}
	if loc := rec.Header().Get("Location"); loc != "/sign-in?redirect=%2Fdashboard" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestGate_StatusEndpointIsPublic(t *testing.T) {
	gate, _ := newTestGate(t)

	var called bool
	r := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec := httptest.NewRecorder()

	gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

	if !called {
		t.Fatalf("expected pass through, got status %d", rec.Code)
	}
}

func TestGate_AgentBootstrapRoutesArePublic(t *testing.T) {
	gate, _ := newTestGate(t)

	// Register and authenticate carry credentials in the body, not a
	// bearer header.
	for _, path := range []string{"/api/v1/agent/register", "/api/v1/agent/authenticate"} {
		var called bool
		r := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()

		gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

		if !called {
			t.Fatalf("expected %s to pass through, got status %d", path, rec.Code)
		}
	}
}

func TestGate_BillingWebhookIsPublic(t *testing.T) {
	gate, _ := newTestGate(t)

	var called bool
	r := httptest.NewRequest(http.MethodPost, "/webhooks/billing", nil)
	rec := httptest.NewRecorder()

	gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

	if !called {
		t.Fatalf("expected pass through, got status %d", rec.Code)
	}
}

func TestGate_CredentialEndpointsArePublic(t *testing.T) {
	gate, _ := newTestGate(t)

	for _, path := range []string{"/api/v1/auth/sign-in", "/api/v1/auth/sign-up"} {
		var called bool
		r := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()

		gate.Middleware()(passThroughHandler(&called)).ServeHTTP(rec, r)

		if !called {
			t.Fatalf("expected %s to pass through, got status %d", path, rec.Code)
		}
	}
}
