// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// NewNoopLogger discards every entry, security events included.
func NewNoopLogger() *Logger {
	return fromZap(zap.NewNop())
}

func fromZap(z *zap.Logger) *Logger {
	return &Logger{
		SugaredLogger: z.Sugar(),
		security:      newSecurityLogger(z),
	}
}
