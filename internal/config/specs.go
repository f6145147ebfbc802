// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port        int    `envconfig:"port" default:"8080"`
	RoutePrefix string `envconfig:"app_route_prefix" default:""`
	BodyLimit   int64  `envconfig:"body_limit" default:"26214400"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// credentials login type
	JWTSecret            string        `envconfig:"jwt_secret" required:"true"`
	SessionLifetime      time.Duration `envconfig:"session_lifetime" default:"1h"`
	SessionRefreshWindow time.Duration `envconfig:"session_refresh_window" default:"10m"`

	// provider login type
	ProviderIssuerURL string `envconfig:"provider_issuer_url" default:"https://accounts.google.com"`
	ProviderClientID  string `envconfig:"provider_client_id"`
	ProviderJWKSURL   string `envconfig:"provider_jwks_url"`

	SMTPHost     string `envconfig:"smtp_host"`
	SMTPPort     int    `envconfig:"smtp_port" default:"587"`
	SMTPUser     string `envconfig:"smtp_user"`
	SMTPPassword string `envconfig:"smtp_pass"`
	SMTPSecure   bool   `envconfig:"smtp_secure" default:"false"`
	EmailFrom    string `envconfig:"email_from"`

	EmailDisableAll        bool     `envconfig:"email_disable_all" default:"false"`
	EmailMonitoringEnabled bool     `envconfig:"email_monitoring_enabled" default:"false"`
	MonitoringRecipients   []string `envconfig:"monitoring_recipients"`
	MonitoringAddress      string   `envconfig:"email_monitoring_address"`

	DisableSignUpVerification bool          `envconfig:"disable_sign_up_verification" default:"false"`
	SignUpVerifyURL           string        `envconfig:"sign_up_verify_url" default:"http://localhost:8080/verify/"`
	SignUpInvitationURL       string        `envconfig:"sign_up_invitation_url" default:"http://localhost:3000/sign-up?invitation="`
	VerifyRedirectBaseURL     string        `envconfig:"verify_redirect_base_url" default:""`
	InvitationLifetime        time.Duration `envconfig:"invitation_lifetime" default:"24h"`
	SignUpRateLimit           int           `envconfig:"sign_up_rate_limit" default:"20"`

	PhoneDefaultRegion string `envconfig:"phone_default_region" default:"ZZ"`

	FreePlanID int64 `envconfig:"free_plan_id" default:"3"`

	WebhookAPIKey string `envconfig:"webhook_api_key"`

	TenantHashSalt      string `envconfig:"tenant_hash_salt" default:"tenant"`
	TenantHashMinLength int    `envconfig:"tenant_hash_min_length" default:"8"`

	MaintenanceStatus   bool   `envconfig:"maintenance_status" default:"false"`
	RedisURL            string `envconfig:"redis_url"`
	MaintenanceRedisKey string `envconfig:"maintenance_redis_key" default:"onboarding:maintenance"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}
