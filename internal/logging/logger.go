// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

// Logger is the application logger, a sugared zap logger with a dedicated
// security event channel.
type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a JSON zap logger at the given level, unknown levels fall
// back to error.
func NewLogger(l string) *Logger {
	lvl, err := zapcore.ParseLevel(strings.ToLower(l))
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	z, err := c.Build()
	if err != nil {
		panic(err)
	}

	logger := fromZap(z)

	logger.Debugf("logger initialized with level %s", lvl)

	return logger
}
