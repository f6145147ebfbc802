// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
)

func TestNewNoopTracer(t *testing.T) {
	_, span := NewNoopTracer().Start(context.Background(), "tracing.TestNewNoopTracer")
	defer span.End()

	if span.IsRecording() {
		t.Fatal("expected a non recording span")
	}
}

func TestConfigExporter(t *testing.T) {
	tests := []struct {
		name   string
		cfg    *Config
		stdout bool
	}{
		{name: "no endpoints", cfg: NewConfig(true, "", "", nil), stdout: true},
		{name: "grpc endpoint", cfg: NewConfig(true, "localhost:4317", "", nil)},
		{name: "http endpoint", cfg: NewConfig(true, "", "localhost:4318", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.cfg.exporter(context.Background())
			if err != nil {
				t.Fatalf("exporter() error = %v", err)
			}
			defer e.Shutdown(context.Background())

			if _, ok := e.(*stdouttrace.Exporter); ok != tt.stdout {
				t.Fatalf("stdout exporter = %v, want %v", ok, tt.stdout)
			}
		})
	}
}
