// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"time"

	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/tracing"
)

// SessionCookieName is the cookie carrying the user session token.
const SessionCookieName = "session"

var _ SessionManagerInterface = (*SessionManager)(nil)

// SessionManager moves user sessions between tokens and cookies. The
// session lifetime is sliding: Refresh re-issues the token with a fresh
// expiry while keeping the payload.
type SessionManager struct {
	codec    TokenCodecInterface
	lifetime time.Duration
	secure   bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewSessionManager(codec TokenCodecInterface, lifetime time.Duration, secure bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionManager {
	return &SessionManager{
		codec:    codec,
		lifetime: lifetime,
		secure:   secure,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *SessionManager) Lifetime() time.Duration {
	return m.lifetime
}

// Issue stamps the session with a fresh expiry and writes it as a
// cookie on the response.
func (m *SessionManager) Issue(w http.ResponseWriter, session *UserSession) error {
	session.ExpiresAt = time.Now().Add(m.lifetime)

	token, err := m.codec.IssueUserToken(session)
	if err != nil {
		return err
	}

	http.SetCookie(w, m.cookie(token, session.ExpiresAt))
	return nil
}

// Read parses the session cookie on the request. A missing cookie maps
// to ErrNotFound; a bad or expired token surfaces the codec error.
func (m *SessionManager) Read(r *http.Request) (*UserSession, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, ErrNotFound
	}

	return m.codec.ParseUserToken(cookie.Value)
}

// Refresh re-issues the cookie with the same payload and a new expiry.
func (m *SessionManager) Refresh(w http.ResponseWriter, session *UserSession) error {
	return m.Issue(w, session)
}

// Clear expires the session cookie on the client.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	cookie := m.cookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (m *SessionManager) cookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
