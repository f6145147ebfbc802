// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

func newTestClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	return NewDBClientFromDB(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()), mock
}

func TestDBClient_WithTx(t *testing.T) {
	fnErr := errors.New("boom")

	testCases := []struct {
		name        string
		fn          func(*DBClient) func(context.Context) error
		setupMocks  func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "commit after successful statements",
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error {
					_, err := d.Statement(ctx).Update("tenants").Set("display_name", "x").Where("id = ?", 1).ExecContext(ctx)
					return err
				}
			},
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rollback when fn fails",
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error {
					if _, err := d.Statement(ctx).Update("tenants").Set("display_name", "x").ExecContext(ctx); err != nil {
						return err
					}
					return fnErr
				}
			},
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			},
			expectedErr: fnErr,
		},
		{
			name: "no transaction without statements",
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error { return nil }
			},
			setupMocks: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "nested call joins the outer transaction",
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error {
					return d.WithTx(ctx, func(inner context.Context) error {
						_, err := d.Statement(inner).Delete("tenant_invitations").ExecContext(inner)
						return err
					})
				}
			},
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM tenant_invitations").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, mock := newTestClient(t)
			tc.setupMocks(mock)

			err := d.WithTx(context.Background(), tc.fn(d))

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestDBClient_StatementWithoutTx(t *testing.T) {
	d, mock := newTestClient(t)

	mock.ExpectExec("DELETE FROM tenant_invitations").WillReturnResult(sqlmock.NewResult(0, 2))

	res, err := d.Statement(context.Background()).Delete("tenant_invitations").ExecContext(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n, _ := res.RowsAffected(); n != 2 {
		t.Errorf("expected 2 rows affected, got %d", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
