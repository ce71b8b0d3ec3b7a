// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopSecurityLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Security().SystemStartup()
	l.Security().AuthnFailure("user-1", "bad password")
	l.Security().AuthzFailure("user-1", "company:members:write")
	l.Security().SystemShutdown()
}
