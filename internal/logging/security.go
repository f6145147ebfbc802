// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const securityLevel = "WARN"

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name, description string) {
	s.l.Warn(
		description,
		zap.String("type", "security"),
		zap.String("event", name),
		zap.String("level", securityLevel),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("sys_startup", "onboarding service started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("sys_shutdown", "onboarding service stopped")
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.event(fmt.Sprintf("authn_token_invalid:%s", reason), "authentication failed")
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.event(fmt.Sprintf("authz_fail:%s,%s", userID, resource), fmt.Sprintf("user %s tried to access %s without permission", userID, resource))
}

func (s *SecurityLogger) UserCreated(actor, userID string) {
	s.event(fmt.Sprintf("user_created:%s,%s", actor, userID), fmt.Sprintf("%s created user %s", actor, userID))
}

func (s *SecurityLogger) AccountVerified(userID string) {
	s.event(fmt.Sprintf("user_updated:%s,email_verified", userID), fmt.Sprintf("user %s verified the account email", userID))
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named("security")}
}
