// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccessLevel string

const (
	AccessLevelUnknown AccessLevel = "unknown"
	AccessLevelBasic   AccessLevel = "basic"
	AccessLevelFull    AccessLevel = "full"
)

type Tenant struct {
	ID          int64     `db:"id"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}

// Company is the organization record created at sign-up.
type Company struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Domain    string    `db:"domain"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TenantCompany binds a Company to a Tenant, one per tenant is the default.
type TenantCompany struct {
	ID          int64       `db:"id"`
	TenantID    int64       `db:"tenant_id"`
	CompanyID   int64       `db:"company_id"`
	DisplayName string      `db:"display_name"`
	AccessLevel AccessLevel `db:"access_level"`
	IsDefault   bool        `db:"is_default"`
	IsDisabled  bool        `db:"is_disabled"`
	CreatedAt   time.Time   `db:"created_at"`
}

type TenantTeam struct {
	ID          int64     `db:"id"`
	TenantID    int64     `db:"tenant_id"`
	DisplayName string    `db:"display_name"`
	IsDefault   bool      `db:"is_default"`
	CreatedAt   time.Time `db:"created_at"`
}

// User.CompanyID is the TenantCompany id, not the Company id.
type User struct {
	ID                   int64     `db:"id"`
	KratosIdentityID     string    `db:"kratos_identity_id"`
	TenantID             int64     `db:"tenant_id"`
	CompanyID            int64     `db:"company_id"`
	Email                string    `db:"email"`
	FirstName            string    `db:"first_name"`
	LastName             string    `db:"last_name"`
	PhotoURL             string    `db:"photo_url"`
	RequirePasswordReset bool      `db:"require_password_reset"`
	CreatedAt            time.Time `db:"created_at"`
}

// UserRef identifies a user either by row id or by email.
type UserRef struct {
	ID    int64
	Email string
}

type EmailVerification struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Email     string    `db:"email"`
	Verified  bool      `db:"verified"`
	CreatedAt time.Time `db:"created_at"`
}

type TenantInvitation struct {
	ID        int64     `db:"id"`
	TenantID  int64     `db:"tenant_id"`
	Email     string    `db:"email"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	Verified  bool      `db:"verified"`
	CreatedAt time.Time `db:"created_at"`
}

// IssuedToken is returned once at issue time, RawToken is never persisted.
type IssuedToken struct {
	Invitation *TenantInvitation
	RawToken   string
}

// ValidatedToken is the outcome of a successful token validation.
type ValidatedToken struct {
	InvitationID int64
	Email        string
	Tenant       *Tenant
}

type Product struct {
	ID               int64  `db:"id"`
	Name             string `db:"name"`
	DailyCreditValue int64  `db:"daily_credit_value"`
}

type ProductBundle struct {
	ID       int64     `db:"id"`
	PlanID   int64     `db:"plan_id"`
	Name     string    `db:"name"`
	Products []Product `db:"-"`
}

type SubscriptionPlan struct {
	ID      int64           `db:"id"`
	Name    string          `db:"name"`
	Price   decimal.Decimal `db:"price"`
	Bundles []ProductBundle `db:"-"`
}

// Contract, SubscriptionInstance and TenantProductUsage carry the TenantCompany
// id in CompanyID.
type Contract struct {
	ID             int64     `db:"id"`
	CompanyID      int64     `db:"company_id"`
	PlanID         int64     `db:"plan_id"`
	ContractTerms  string    `db:"contract_terms"`
	StartDate      time.Time `db:"start_date"`
	TrialStartDate time.Time `db:"trial_start_date"`
	TrialEndDate   time.Time `db:"trial_end_date"`
	FreeCredits    int64     `db:"free_credits"`
	AutoRenew      bool      `db:"auto_renew"`
}

type SubscriptionInstance struct {
	ID         int64     `db:"id"`
	CompanyID  int64     `db:"company_id"`
	PlanID     int64     `db:"plan_id"`
	ContractID int64     `db:"contract_id"`
	StartDate  time.Time `db:"start_date"`
	Active     bool      `db:"active"`
}

type SubscriptionProductCredits struct {
	ID                     int64 `db:"id"`
	SubscriptionInstanceID int64 `db:"subscription_instance_id"`
	ProductID              int64 `db:"product_id"`
	CreditsAllocated       int64 `db:"credits_allocated"`
	CreditsConsumed        int64 `db:"credits_consumed"`
}

type TenantProductUsage struct {
	ID               int64 `db:"id"`
	TenantID         int64 `db:"tenant_id"`
	CompanyID        int64 `db:"company_id"`
	ProductID        int64 `db:"product_id"`
	CreditsAllocated int64 `db:"credits_allocated"`
	CreditsConsumed  int64 `db:"credits_consumed"`
}

// DefaultContract is the outcome of a default contract bootstrap.
// Created is false when the company already had a contract.
type DefaultContract struct {
	Created  bool
	Contract *Contract
	Instance *SubscriptionInstance
	Credits  []*SubscriptionProductCredits
	Usage    []*TenantProductUsage
}

type VerificationStatus string

const (
	// VerificationStatusVerified means the email is verified and no company
	// was active in the request, so no contract was attempted.
	VerificationStatusVerified VerificationStatus = "verified"
	// VerificationStatusContractPending means the email is verified but the
	// default contract could not be created.
	VerificationStatusContractPending VerificationStatus = "contract_pending"
	// VerificationStatusProvisioned means the email is verified and the
	// company holds a contract.
	VerificationStatusProvisioned VerificationStatus = "provisioned"
)

type VerificationResult struct {
	User              *User
	Status            VerificationStatus
	ContractErr       error
	PendingInvitation bool
}

type LoginType string

const (
	LoginTypeCredentials LoginType = "credentials"
	LoginTypeGoogle      LoginType = "google"
)

// Principal is the authenticated caller derived from a bearer token.
type Principal struct {
	ID        string
	Email     string
	Name      string
	LoginType LoginType
	ExpiresAt time.Time
}

// NewTenantOptions describes the tenant to bootstrap for a company.
type NewTenantOptions struct {
	DisplayName string
	CompanyID   int64
	AccessLevel AccessLevel
}

// TenantInit is the outcome of a tenant bootstrap. Team is only set when the
// tenant was created by the call.
type TenantInit struct {
	TenantID int64
	Company  *TenantCompany
	Team     *TenantTeam
	Created  bool
}

type EmailTemplate string

const (
	EmailTemplateVerifyEmail EmailTemplate = "verify_email"
	EmailTemplateInviteUser  EmailTemplate = "invite_user"
)

type EmailNotification struct {
	Template            EmailTemplate
	Params              map[string]any
	Subject             string
	To                  string
	CC                  []string
	BCC                 []string
	SendMonitoringEmail bool
}

type CreateUserOptions struct {
	Email               string
	Password            string
	FirstName           string
	LastName            string
	PhotoURL            string
	RequireVerification bool
}

// EnsureUserOptions describes an identity that already exists at the provider.
type EnsureUserOptions struct {
	IdentityID string
	Email      string
	FirstName  string
	LastName   string
	PhotoURL   string
}
