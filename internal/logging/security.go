// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import "go.uber.org/zap"

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) AuthnSuccess(subject string) {
	s.l.Info("authentication success",
		zap.String("event", "authn.success"),
		zap.String("subject", subject),
	)
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn("authentication failure",
		zap.String("event", "authn.failure"),
		zap.String("subject", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz.failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}
