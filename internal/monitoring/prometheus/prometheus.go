// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

const (
	SignUpCounter       = monitoring.SignUpCounter
	VerificationCounter = monitoring.VerificationCounter
	ContractCounter     = monitoring.ContractCounter
	EmailCounter        = monitoring.EmailCounter
)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	counters               map[string]*prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not defined")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not defined")
	}

	m.dependencyAvailability.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncrementCounter(name string, tags map[string]string) error {
	c, ok := m.counters[name]
	if !ok {
		return fmt.Errorf("counter %s not defined", name)
	}

	c.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	if existing, ok := register(m.responseTime).(*prometheus.HistogramVec); ok {
		m.responseTime = existing
	}
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	if existing, ok := register(m.dependencyAvailability).(*prometheus.GaugeVec); ok {
		m.dependencyAvailability = existing
	}
}

func (m *Monitor) registerCounters() {
	m.counters = map[string]*prometheus.CounterVec{
		SignUpCounter:       m.counter(SignUpCounter, "outcome"),
		VerificationCounter: m.counter(VerificationCounter, "outcome"),
		ContractCounter:     m.counter(ContractCounter, "outcome"),
		EmailCounter:        m.counter(EmailCounter, "template", "outcome"),
	}
}

func (m *Monitor) counter(name string, labels ...string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        name,
			Help:        name,
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		labels,
	)

	if existing, ok := register(c).(*prometheus.CounterVec); ok {
		return existing
	}

	return c
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}

// register returns the collector already registered under the same
// descriptor, if any, so multiple monitors can share one registry.
func register(c prometheus.Collector) prometheus.Collector {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return are.ExistingCollector
	}

	return c
}
