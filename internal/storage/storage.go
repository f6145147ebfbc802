// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/onboarding-service/internal/db"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantCompanyColumns = []string{
	"id", "tenant_id", "company_id", "display_name", "access_level", "is_default", "is_disabled", "created_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	var newTenant types.Tenant
	err := s.db.Statement(ctx).
		Insert("tenants").
		Columns("display_name").
		Values(t.DisplayName).
		Suffix("RETURNING id, display_name, created_at").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.DisplayName, &newTenant.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id int64) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "display_name", "created_at").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.DisplayName, &t.CreatedAt)

	if err != nil {
		return nil, translate(err, "failed to get tenant")
	}

	return &t, nil
}

// UpsertCompany inserts the company, or touches updated_at when a row with
// the same id already exists.
func (s *Storage) UpsertCompany(ctx context.Context, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertCompany")
	defer span.End()

	columns := []string{"name", "domain"}
	values := []interface{}{c.Name, c.Domain}
	if c.ID != 0 {
		columns = append([]string{"id"}, columns...)
		values = append([]interface{}{c.ID}, values...)
	}

	var company types.Company
	err := s.db.Statement(ctx).
		Insert("companies").
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (id) DO UPDATE SET updated_at = now() RETURNING id, name, domain, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&company.ID, &company.Name, &company.Domain, &company.CreatedAt, &company.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert company: %w", err)
	}

	return &company, nil
}

func (s *Storage) CreateTenantCompany(ctx context.Context, c *types.TenantCompany) (*types.TenantCompany, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenantCompany")
	defer span.End()

	accessLevel := c.AccessLevel
	if accessLevel == "" {
		accessLevel = types.AccessLevelUnknown
	}

	row := s.db.Statement(ctx).
		Insert("tenant_companies").
		Columns("tenant_id", "company_id", "display_name", "access_level", "is_default", "is_disabled").
		Values(c.TenantID, c.CompanyID, c.DisplayName, string(accessLevel), c.IsDefault, c.IsDisabled).
		Suffix("RETURNING id, tenant_id, company_id, display_name, access_level, is_default, is_disabled, created_at").
		QueryRowContext(ctx)

	company, err := scanTenantCompany(row)
	if err != nil {
		return nil, translate(err, "failed to insert tenant company")
	}

	return company, nil
}

func (s *Storage) GetTenantCompanyByID(ctx context.Context, id int64) (*types.TenantCompany, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantCompanyByID")
	defer span.End()

	return s.getTenantCompany(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetTenantCompanyByCompanyID(ctx context.Context, companyID int64) (*types.TenantCompany, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantCompanyByCompanyID")
	defer span.End()

	return s.getTenantCompany(ctx, sq.Eq{"company_id": companyID})
}

func (s *Storage) GetDefaultTenantCompany(ctx context.Context, tenantID int64) (*types.TenantCompany, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDefaultTenantCompany")
	defer span.End()

	return s.getTenantCompany(ctx, sq.Eq{"tenant_id": tenantID, "is_default": true})
}

func (s *Storage) getTenantCompany(ctx context.Context, where sq.Eq) (*types.TenantCompany, error) {
	row := s.db.Statement(ctx).
		Select(tenantCompanyColumns...).
		From("tenant_companies").
		Where(where).
		OrderBy("id").
		Limit(1).
		QueryRowContext(ctx)

	c, err := scanTenantCompany(row)
	if err != nil {
		return nil, translate(err, "failed to get tenant company")
	}

	return c, nil
}

func scanTenantCompany(row sq.RowScanner) (*types.TenantCompany, error) {
	var c types.TenantCompany
	var accessLevel string

	err := row.Scan(&c.ID, &c.TenantID, &c.CompanyID, &c.DisplayName, &accessLevel, &c.IsDefault, &c.IsDisabled, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	c.AccessLevel = types.AccessLevel(accessLevel)
	return &c, nil
}

func (s *Storage) CreateTenantTeam(ctx context.Context, t *types.TenantTeam) (*types.TenantTeam, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenantTeam")
	defer span.End()

	var team types.TenantTeam
	err := s.db.Statement(ctx).
		Insert("tenant_teams").
		Columns("tenant_id", "display_name", "is_default").
		Values(t.TenantID, t.DisplayName, t.IsDefault).
		Suffix("RETURNING id, tenant_id, display_name, is_default, created_at").
		QueryRowContext(ctx).
		Scan(&team.ID, &team.TenantID, &team.DisplayName, &team.IsDefault, &team.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert tenant team: %w", err)
	}

	return &team, nil
}
