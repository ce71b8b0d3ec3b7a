// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/tracing"
)

func newTestSessionManager(lifetime time.Duration) *SessionManager {
	codec := NewTokenCodec([]byte("platform-secret"), 24*time.Hour)
	return NewSessionManager(codec, lifetime, false,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestSessionManager_IssueAndRead(t *testing.T) {
	manager := newTestSessionManager(7 * 24 * time.Hour)

	rec := httptest.NewRecorder()
	err := manager.Issue(rec, &UserSession{
		UserID:  5,
		Email:   "user@example.com",
		Company: &CompanyContext{ID: 1, Slug: "acme", Role: "admin"},
	})
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != SessionCookieName {
		t.Fatalf("expected cookie %q, got %q", SessionCookieName, cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Fatal("expected http-only cookie")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected lax same-site, got %v", cookie.SameSite)
	}

	session, err := manager.Read(requestWithCookies(t, rec))
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if session.UserID != 5 || session.Company == nil || session.Company.Slug != "acme" {
		t.Fatalf("session not preserved: %+v", session)
	}

	remaining := time.Until(session.ExpiresAt)
	if remaining < 7*24*time.Hour-time.Minute || remaining > 7*24*time.Hour {
		t.Fatalf("expected ~7 day expiry, got %v", remaining)
	}
}

func TestSessionManager_ReadMissingCookie(t *testing.T) {
	manager := newTestSessionManager(time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := manager.Read(r); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionManager_RefreshExtendsExpiry(t *testing.T) {
	manager := newTestSessionManager(time.Hour)

	rec := httptest.NewRecorder()
	if err := manager.Issue(rec, &UserSession{UserID: 1, Email: "user@example.com"}); err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	session, err := manager.Read(requestWithCookies(t, rec))
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}

	// Pretend the session is near expiry and refresh it.
	session.ExpiresAt = time.Now().Add(time.Minute)

	rec2 := httptest.NewRecorder()
	if err := manager.Refresh(rec2, session); err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}

	refreshed, err := manager.Read(requestWithCookies(t, rec2))
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if time.Until(refreshed.ExpiresAt) < 50*time.Minute {
		t.Fatalf("expected refreshed expiry, got %v", refreshed.ExpiresAt)
	}
	if refreshed.UserID != 1 || refreshed.Email != "user@example.com" {
		t.Fatalf("payload not preserved on refresh: %+v", refreshed)
	}
}

func TestSessionManager_Clear(t *testing.T) {
	manager := newTestSessionManager(time.Hour)

	rec := httptest.NewRecorder()
	manager.Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Fatalf("expected expired cookie, got max-age %d", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Fatalf("expected empty value, got %q", cookies[0].Value)
	}
}
