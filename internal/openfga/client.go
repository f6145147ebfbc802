// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"

	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

type Config struct {
	ApiScheme   string
	ApiHost     string
	ApiToken    string
	StoreID     string
	AuthModelID string
	Debug       bool
}

func NewConfig(apiScheme, apiHost, storeID, apiToken, authModelID string, debug bool) *Config {
	return &Config{
		ApiScheme:   apiScheme,
		ApiHost:     apiHost,
		ApiToken:    apiToken,
		StoreID:     storeID,
		AuthModelID: authModelID,
		Debug:       debug,
	}
}

type Client struct {
	client *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) Check(ctx context.Context, user, relation, object string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	data, err := c.client.Check(ctx).Body(body).Execute()
	if err != nil {
		c.logger.Errorf("issue when checking %s#%s@%s: %s", object, relation, user, err)
		return false, err
	}

	return data.GetAllowed(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	body := client.ClientWriteRequest{
		Writes: []client.ClientTupleKey{
			{User: user, Relation: relation, Object: object},
		},
	}

	if _, err := c.client.Write(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issue when writing tuple %s#%s@%s: %s", object, relation, user, err)
		return err
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	body := client.ClientWriteRequest{
		Deletes: []client.ClientTupleKeyWithoutCondition{
			{User: user, Relation: relation, Object: object},
		},
	}

	if _, err := c.client.Write(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issue when deleting tuple %s#%s@%s: %s", object, relation, user, err)
		return err
	}

	return nil
}

func NewClient(cfg *Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	c := new(Client)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	scheme := cfg.ApiScheme
	if scheme == "" {
		scheme = "http"
	}

	conf := &client.ClientConfiguration{
		ApiUrl:               fmt.Sprintf("%s://%s", scheme, cfg.ApiHost),
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Debug:                cfg.Debug,
	}

	if cfg.ApiToken != "" {
		conf.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{ApiToken: cfg.ApiToken},
		}
	}

	fga, err := client.NewSdkClient(conf)
	if err != nil {
		return nil, fmt.Errorf("issues setting up openfga client: %w", err)
	}

	c.client = fga

	return c, nil
}
