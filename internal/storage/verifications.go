// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/onboarding-service/internal/types"
)

var invitationColumns = []string{"id", "tenant_id", "email", "token", "expires_at", "verified", "created_at"}

func (s *Storage) CreateEmailVerification(ctx context.Context, v *types.EmailVerification) (*types.EmailVerification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEmailVerification")
	defer span.End()

	var ev types.EmailVerification
	err := s.db.Statement(ctx).
		Insert("email_verifications").
		Columns("user_id", "email", "verified").
		Values(v.UserID, strings.ToLower(v.Email), v.Verified).
		Suffix("RETURNING id, user_id, email, verified, created_at").
		QueryRowContext(ctx).
		Scan(&ev.ID, &ev.UserID, &ev.Email, &ev.Verified, &ev.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert email verification: %w", err)
	}

	return &ev, nil
}

// MarkEmailVerified flips every pending verification for the email and
// returns how many rows changed.
func (s *Storage) MarkEmailVerified(ctx context.Context, email string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkEmailVerified")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("email_verifications").
		Set("verified", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"email": strings.ToLower(email), "verified": false}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to update email verifications: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return n, nil
}

func scanInvitation(row sq.RowScanner) (*types.TenantInvitation, error) {
	var i types.TenantInvitation
	if err := row.Scan(&i.ID, &i.TenantID, &i.Email, &i.Token, &i.ExpiresAt, &i.Verified, &i.CreatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, i *types.TenantInvitation) (*types.TenantInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("tenant_invitations").
		Columns("tenant_id", "email", "token", "expires_at", "verified").
		Values(i.TenantID, strings.ToLower(i.Email), i.Token, i.ExpiresAt, i.Verified).
		Suffix("RETURNING " + strings.Join(invitationColumns, ", ")).
		QueryRowContext(ctx)

	invitation, err := scanInvitation(row)
	if err != nil {
		return nil, translate(err, "failed to insert invitation")
	}

	return invitation, nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id int64) (*types.TenantInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"id": id}, "")
}

// GetInvitationByToken locks the row when called inside a transaction so
// concurrent confirmations of the same link serialise.
func (s *Storage) GetInvitationByToken(ctx context.Context, tokenHash string) (*types.TenantInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"token": tokenHash}, "FOR UPDATE")
}

func (s *Storage) GetPendingInvitationByEmail(ctx context.Context, email string) (*types.TenantInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitationByEmail")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"email": strings.ToLower(email), "verified": false}, "")
}

func (s *Storage) getInvitation(ctx context.Context, where sq.Eq, suffix string) (*types.TenantInvitation, error) {
	q := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("tenant_invitations").
		Where(where).
		OrderBy("id DESC").
		Limit(1)

	if suffix != "" {
		q = q.Suffix(suffix)
	}

	i, err := scanInvitation(q.QueryRowContext(ctx))
	if err != nil {
		return nil, translate(err, "failed to get invitation")
	}

	return i, nil
}

func (s *Storage) MarkInvitationVerified(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInvitationVerified")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenant_invitations").
		Set("verified", true).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update invitation: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteInvitationsByEmail(ctx context.Context, tenantID int64, email string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvitationsByEmail")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenant_invitations").
		Where(sq.Eq{"tenant_id": tenantID, "email": strings.ToLower(email)}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete invitations: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return n, nil
}
