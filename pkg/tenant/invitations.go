// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/onboarding-service/internal/apperr"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/types"
)

const tokenBytes = 32

func newRawToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashToken is the form a raw token is persisted and looked up in.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// IssueInvitation persists a new invitation for (tenant, email). The raw token
// is only ever returned here.
func (s *Service) IssueInvitation(ctx context.Context, tenantID int64, email string) (*types.IssuedToken, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.IssueInvitation")
	defer span.End()

	raw, err := newRawToken()
	if err != nil {
		return nil, err
	}

	invitation, err := s.storage.CreateInvitation(ctx, &types.TenantInvitation{
		TenantID:  tenantID,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Token:     HashToken(raw),
		ExpiresAt: s.now().Add(s.invitationLifetime),
	})
	if err != nil {
		return nil, err
	}

	return &types.IssuedToken{Invitation: invitation, RawToken: raw}, nil
}

func (s *Service) ValidateEmailToken(ctx context.Context, rawToken string) (*types.ValidatedToken, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ValidateEmailToken")
	defer span.End()

	invitation, err := s.storage.GetInvitationByToken(ctx, HashToken(rawToken))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.ErrInvalidToken
	}

	if err != nil {
		return nil, err
	}

	if invitation.ExpiresAt.Before(s.now()) {
		return nil, apperr.ErrTokenExpired
	}

	tenant, err := s.storage.GetTenantByID(ctx, invitation.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %d: %w", invitation.TenantID, err)
	}

	return &types.ValidatedToken{InvitationID: invitation.ID, Email: invitation.Email, Tenant: tenant}, nil
}

// ConfirmEmailToken validates the token and consumes it in one transaction:
// pending verifications for the email flip to verified and the invitation is
// marked as used.
func (s *Service) ConfirmEmailToken(ctx context.Context, rawToken string) (*types.ValidatedToken, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ConfirmEmailToken")
	defer span.End()

	var validated *types.ValidatedToken

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		v, err := s.ValidateEmailToken(ctx, rawToken)
		if err != nil {
			return err
		}

		n, err := s.storage.MarkEmailVerified(ctx, v.Email)
		if err != nil {
			return err
		}

		if err := s.storage.MarkInvitationVerified(ctx, v.InvitationID); err != nil {
			return err
		}

		s.logger.Debugf("invitation %d consumed, %d verification rows updated", v.InvitationID, n)
		validated = v

		return nil
	})

	if err != nil {
		return nil, err
	}

	return validated, nil
}

// InviteMember issues an invitation for the request tenant and mails the
// sign-up link.
func (s *Service) InviteMember(ctx context.Context, email string) (*types.TenantInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.InviteMember")
	defer span.End()

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	issued, err := s.IssueInvitation(ctx, tenantID, email)
	if err != nil {
		return nil, err
	}

	err = s.email.SendEmailNotification(ctx, types.EmailNotification{
		Template: types.EmailTemplateInviteUser,
		Subject:  "You have been invited",
		To:       issued.Invitation.Email,
		Params: map[string]any{
			"Link":      s.invitationURL + issued.RawToken,
			"ExpiresAt": issued.Invitation.ExpiresAt,
		},
		SendMonitoringEmail: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send invitation: %w", err)
	}

	return issued.Invitation, nil
}

// GetInvitation only returns invitations of the request tenant.
func (s *Service) GetInvitation(ctx context.Context, id int64) (*types.TenantInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetInvitation")
	defer span.End()

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	invitation, err := s.storage.GetInvitationByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	if invitation.TenantID != tenantID {
		return nil, apperr.ErrNotFound
	}

	return invitation, nil
}

// GetPendingInvitationByEmail returns nil without error when nothing is pending.
func (s *Service) GetPendingInvitationByEmail(ctx context.Context, email string) (*types.TenantInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetPendingInvitationByEmail")
	defer span.End()

	invitation, err := s.storage.GetPendingInvitationByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}

	return invitation, err
}

func (s *Service) RemoveInvitationByEmail(ctx context.Context, email string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveInvitationByEmail")
	defer span.End()

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return 0, err
	}

	return s.storage.DeleteInvitationsByEmail(ctx, tenantID, email)
}

// GetInvitedMember returns the registered user behind email when it belongs to
// another tenant, i.e. one who joined the request tenant through an invitation.
// It returns nil without error otherwise.
func (s *Service) GetInvitedMember(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetInvitedMember")
	defer span.End()

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", email, err)
	}

	if user.TenantID == tenantID {
		return nil, nil
	}

	return user, nil
}
