// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/onboarding-service/internal/authorization"
	"github.com/canonical/onboarding-service/internal/config"
	"github.com/canonical/onboarding-service/internal/db"
	"github.com/canonical/onboarding-service/internal/kratos"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/maintenance"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/monitoring/prometheus"
	"github.com/canonical/onboarding-service/internal/openfga"
	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/version"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/company"
	"github.com/canonical/onboarding-service/pkg/contract"
	"github.com/canonical/onboarding-service/pkg/email"
	"github.com/canonical/onboarding-service/pkg/signup"
	"github.com/canonical/onboarding-service/pkg/tenant"
	"github.com/canonical/onboarding-service/pkg/user"
	"github.com/canonical/onboarding-service/pkg/validation"
	"github.com/canonical/onboarding-service/pkg/verification"
	"github.com/canonical/onboarding-service/pkg/web"
	"github.com/canonical/onboarding-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	specs, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(version.Name, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	authorizer, err := newAuthorizer(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	hasher, err := requestctx.NewHasher(specs.TenantHashSalt, specs.TenantHashMinLength)
	if err != nil {
		return fmt.Errorf("failed to create tenant hasher: %w", err)
	}

	checker, closeRedis, err := newMaintenanceChecker(ctx, specs, tracer, logger)
	if err != nil {
		return err
	}
	defer closeRedis()

	emailService, err := newEmailService(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	credentials := authentication.NewCredentialsVerifier(specs.JWTSecret, specs.SessionLifetime, tracer, monitor, logger)
	verifier, err := newVerifier(ctx, specs, credentials, tracer, monitor, logger)
	if err != nil {
		return err
	}

	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)

	companyService := company.NewService(s, tracer, monitor, logger)
	contractService := contract.NewService(s, dbClient, specs.FreePlanID, tracer, monitor, logger)
	tenantService := tenant.NewService(s, dbClient, emailService, specs.InvitationLifetime, specs.SignUpInvitationURL, tracer, monitor, logger)
	verificationService := verification.NewService(s, kratosClient, tenantService, contractService, emailService, authorizer, specs.SignUpVerifyURL, tracer, monitor, logger)
	userService := user.NewService(s, kratosClient, verificationService, specs.DisableSignUpVerification, tracer, monitor, logger)
	validator := validation.NewValidator(kratosClient, validation.OpenDomainPolicy{}, specs.PhoneDefaultRegion, tracer, monitor, logger)
	signUpService := signup.NewService(validator, companyService, tenantService, userService, authorizer, tracer, monitor, logger)
	if specs.WebhookAPIKey == "" {
		logger.Warn("WEBHOOK_API_KEY is not set, registration webhooks will be rejected")
	}

	webhooksService := webhooks.NewService(s, companyService, tenantService, userService, authorizer, tracer, monitor, logger)

	router := web.NewRouter(
		web.Config{
			RoutePrefix:           specs.RoutePrefix,
			BodyLimit:             specs.BodyLimit,
			SignUpRateLimit:       specs.SignUpRateLimit,
			VerifyRedirectBaseURL: specs.VerifyRedirectBaseURL,
			SessionRefreshWindow:  specs.SessionRefreshWindow,
			WebhookAPIKey:         specs.WebhookAPIKey,
		},
		web.Services{
			SignUp:       signUpService,
			Verification: verificationService,
			Webhooks:     webhooksService,
			Tenant:       tenantService,
			Authorizer:   authorizer,
			Verifier:     verifier,
			TokenIssuer:  credentials,
			Hasher:       hasher,
			Maintenance:  checker,
		},
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func newAuthorizer(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*authorization.Authorizer, error) {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger), nil
	}

	ofga, err := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
		),
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, err
	}

	logger.Info("Authorization is enabled")

	return authorization.NewAuthorizer(ofga, tracer, monitor, logger), nil
}

func newMaintenanceChecker(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, logger logging.LoggerInterface) (*maintenance.Checker, func(), error) {
	if specs.RedisURL == "" {
		return maintenance.NewChecker(specs.MaintenanceStatus, nil, specs.MaintenanceRedisKey, tracer, logger), func() {}, nil
	}

	rdb, err := maintenance.NewRedisClient(ctx, specs.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	closer := func() {
		if err := rdb.Close(); err != nil {
			logger.Warnf("failed to close redis client: %v", err)
		}
	}

	return maintenance.NewChecker(specs.MaintenanceStatus, rdb, specs.MaintenanceRedisKey, tracer, logger), closer, nil
}

func newEmailService(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*email.Service, error) {
	cfg := email.Config{
		From:                 specs.EmailFrom,
		DisableAll:           specs.EmailDisableAll,
		MonitoringEnabled:    specs.EmailMonitoringEnabled,
		MonitoringRecipients: specs.MonitoringRecipients,
		MonitoringAddress:    specs.MonitoringAddress,
	}

	var sender email.SenderInterface

	if specs.SMTPHost == "" {
		logger.Warn("no SMTP host configured, emails are disabled")
		cfg.DisableAll = true
	} else {
		client, err := email.NewSMTPClient(email.SMTPConfig{
			Host:     specs.SMTPHost,
			Port:     specs.SMTPPort,
			User:     specs.SMTPUser,
			Password: specs.SMTPPassword,
			Secure:   specs.SMTPSecure,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create SMTP client: %w", err)
		}
		sender = client
	}

	return email.NewService(sender, cfg, tracer, monitor, logger)
}

// newVerifier registers the provider login type only when it is configured.
func newVerifier(ctx context.Context, specs *config.EnvSpec, credentials *authentication.CredentialsVerifier, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*authentication.Verifier, error) {
	var provider authentication.TokenVerifierInterface

	if specs.ProviderClientID != "" || specs.ProviderJWKSURL != "" {
		idTokenVerifier, err := authentication.NewIDTokenVerifier(ctx, specs.ProviderIssuerURL, specs.ProviderClientID, specs.ProviderJWKSURL)
		if err != nil {
			return nil, fmt.Errorf("failed to set up provider login: %w", err)
		}
		provider = authentication.NewProviderVerifier(idTokenVerifier, tracer, monitor, logger)
	} else {
		logger.Info("provider login type disabled")
	}

	return authentication.NewVerifier(credentials, provider, tracer, monitor, logger), nil
}
