// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/canonical/onboarding-service/internal/logging"
)

type Config struct {
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	Logger           logging.LoggerInterface

	Enabled bool
}

// exporter picks OTLP over gRPC, then OTLP over HTTP, then stdout.
func (c *Config) exporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	switch {
	case c.OtelGRPCEndpoint != "":
		return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(c.OtelGRPCEndpoint), otlptracegrpc.WithInsecure())
	case c.OtelHTTPEndpoint != "":
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(c.OtelHTTPEndpoint), otlptracehttp.WithInsecure())
	default:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		Logger:           logger,
		Enabled:          enabled,
	}
}

// NewNoopConfig disables tracing, spans are created by a noop provider.
func NewNoopConfig() *Config {
	return &Config{Logger: logging.NewNoopLogger()}
}
