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

var userColumns = []string{
	"id", "kratos_identity_id", "tenant_id", "company_id", "email", "first_name", "last_name", "photo_url", "require_password_reset", "created_at",
}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(
		&u.ID, &u.KratosIdentityID, &u.TenantID, &u.CompanyID, &u.Email,
		&u.FirstName, &u.LastName, &u.PhotoURL, &u.RequirePasswordReset, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("kratos_identity_id", "tenant_id", "company_id", "email", "first_name", "last_name", "photo_url", "require_password_reset").
		Values(u.KratosIdentityID, u.TenantID, u.CompanyID, strings.ToLower(u.Email), u.FirstName, u.LastName, u.PhotoURL, u.RequirePasswordReset).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		QueryRowContext(ctx)

	user, err := scanUser(row)
	if err != nil {
		return nil, translate(err, "failed to insert user")
	}

	return user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("users").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetUserByID(ctx context.Context, id int64) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Expr("lower(email) = ?", strings.ToLower(email)))
}

func (s *Storage) GetUserByIdentityID(ctx context.Context, identityID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByIdentityID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"kratos_identity_id": identityID})
}

func (s *Storage) getUser(ctx context.Context, where sq.Sqlizer) (*types.User, error) {
	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(where).
		OrderBy("id").
		Limit(1).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, translate(err, "failed to get user")
	}

	return u, nil
}
