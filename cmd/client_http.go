// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/onboarding-service/internal/requestctx"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/tenant"
)

const clientTimeout = 30 * time.Second

// invitationsClient calls the tenant invitations API on behalf of a tenant owner.
type invitationsClient struct {
	endpoint  string
	token     string
	loginType string
	tenant    string

	client *http.Client
}

func newInvitationsClient(endpoint, token, loginType, tenantHash string) *invitationsClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &invitationsClient{
		endpoint:  strings.TrimSuffix(endpoint, "/"),
		token:     token,
		loginType: loginType,
		tenant:    tenantHash,
		client: &http.Client{
			Timeout:   clientTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *invitationsClient) Invite(ctx context.Context, email string) (*tenant.InvitationResponse, error) {
	out := new(tenant.InvitationResponse)
	err := c.do(ctx, http.MethodPost, "/tenant/invitations/", tenant.InviteMemberRequest{Email: email}, out)
	return out, err
}

func (c *invitationsClient) Get(ctx context.Context, id string) (*tenant.InvitationResponse, error) {
	out := new(tenant.InvitationResponse)
	err := c.do(ctx, http.MethodGet, "/tenant/invitations/"+url.PathEscape(id), nil, out)
	return out, err
}

func (c *invitationsClient) Remove(ctx context.Context, email string) (*tenant.RemoveInvitationResponse, error) {
	out := new(tenant.RemoveInvitationResponse)
	err := c.do(ctx, http.MethodDelete, "/tenant/invitations/?email="+url.QueryEscape(email), nil, out)
	return out, err
}

func (c *invitationsClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set(authentication.LoginTypeHeader, c.loginType)
	req.Header.Set(requestctx.TenantHeader, c.tenant)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
