// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"context"

	"github.com/wneessen/go-mail"

	"github.com/canonical/onboarding-service/internal/types"
)

type ServiceInterface interface {
	SendEmailNotification(ctx context.Context, n types.EmailNotification) error
}

// SenderInterface is satisfied by *mail.Client.
type SenderInterface interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}
