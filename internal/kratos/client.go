// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	ory "github.com/ory/client-go"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

const (
	defaultSchemaID = "default"
	addressViaEmail = "email"
)

var (
	ErrIdentityNotFound  = errors.New("identity not found")
	ErrIdentityExists    = errors.New("identity already exists")
	ErrPasswordRejected  = errors.New("password rejected by policy")
	ErrAddressNotPresent = errors.New("email is not a verifiable address of the identity")
)

// NewIdentity is the data needed to register a password identity.
type NewIdentity struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	// Verified marks the email address as already verified
	Verified bool
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetIdentityIDByEmail returns "" when no identity owns the email.
func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(strings.ToLower(email)).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

func (c *Client) CreateIdentity(ctx context.Context, identity NewIdentity) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateIdentity")
	defer span.End()

	email := strings.ToLower(identity.Email)

	status := "pending"
	if identity.Verified {
		status = "completed"
	}

	body := ory.CreateIdentityBody{
		SchemaId: defaultSchemaID,
		Traits: map[string]interface{}{
			"email": email,
			"name": map[string]string{
				"first": identity.FirstName,
				"last":  identity.LastName,
			},
		},
		VerifiableAddresses: []ory.VerifiableIdentityAddress{
			{
				Value:    email,
				Verified: identity.Verified,
				Via:      addressViaEmail,
				Status:   status,
			},
		},
	}

	if identity.Password != "" {
		password := identity.Password
		body.Credentials = &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{Password: &password},
			},
		}
	}

	created, r, err := c.client.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		return "", classify(r, err, "failed to create identity")
	}

	return created.Id, nil
}

// SetCompanyClaim stores the company id in the identity public metadata so it
// ends up in issued sessions.
func (c *Client) SetCompanyClaim(ctx context.Context, identityID string, companyID int64) error {
	ctx, span := c.tracer.Start(ctx, "kratos.SetCompanyClaim")
	defer span.End()

	patch := []ory.JsonPatch{
		{
			Op:    "add",
			Path:  "/metadata_public",
			Value: map[string]interface{}{"companyId": companyID},
		},
	}

	_, r, err := c.client.IdentityAPI.PatchIdentity(ctx, identityID).JsonPatch(patch).Execute()
	if err != nil {
		return classify(r, err, "failed to set company claim")
	}

	return nil
}

func (c *Client) MarkEmailVerified(ctx context.Context, identityID, email string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.MarkEmailVerified")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, identityID).Execute()
	if err != nil {
		return classify(r, err, "failed to get identity")
	}

	idx := -1
	for i, addr := range identity.VerifiableAddresses {
		if strings.EqualFold(addr.Value, email) {
			idx = i
			break
		}
	}

	if idx < 0 {
		return ErrAddressNotPresent
	}

	patch := []ory.JsonPatch{
		{Op: "replace", Path: fmt.Sprintf("/verifiable_addresses/%d/verified", idx), Value: true},
		{Op: "replace", Path: fmt.Sprintf("/verifiable_addresses/%d/status", idx), Value: "completed"},
	}

	_, r, err = c.client.IdentityAPI.PatchIdentity(ctx, identityID).JsonPatch(patch).Execute()
	if err != nil {
		return classify(r, err, "failed to mark email verified")
	}

	return nil
}

func (c *Client) DeleteIdentity(ctx context.Context, identityID string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.DeleteIdentity")
	defer span.End()

	r, err := c.client.IdentityAPI.DeleteIdentity(ctx, identityID).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil
		}
		return classify(r, err, "failed to delete identity")
	}

	return nil
}

// classify turns admin API failures into the package sentinels where the
// status code identifies them.
func classify(r *http.Response, err error, msg string) error {
	if r == nil {
		return fmt.Errorf("%s: %w", msg, err)
	}

	switch r.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, ErrIdentityNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, ErrIdentityExists)
	case http.StatusBadRequest:
		var apiErr *ory.GenericOpenAPIError
		if errors.As(err, &apiErr) && strings.Contains(strings.ToLower(string(apiErr.Body())), "password") {
			return fmt.Errorf("%s: %w", msg, ErrPasswordRejected)
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}
