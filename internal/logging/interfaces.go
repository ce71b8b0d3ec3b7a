// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits audit events for security-relevant
// transitions, on a separate named logger so they can be routed
// independently of application logs.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthnSuccess(subject string)
	AuthnFailure(subject, reason string)
	AuthzFailure(subject, action string)
}
