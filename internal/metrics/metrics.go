// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes prometheus counters for the verification flow.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label names and values.
const (
	LabelStatus        = "status"
	LabelStatusFail    = "fail"
	LabelStatusSuccess = "success"

	LabelDecision        = "decision"
	LabelDecisionGranted = "granted"
	LabelDecisionDenied  = "denied"
	LabelDecisionDismiss = "dismissed"

	LabelOperation        = "operation"
	LabelOperationDecrypt = "decrypt"
	LabelOperationSign    = "sign"
	LabelOperationEncrypt = "encrypt"
)

// Recorder is what the service layer reports to.
type Recorder interface {
	IncIngest(status string)
	IncDecision(decision, status string)
	ObserveModPow(operation string, elapsed time.Duration)
}

// Metrics holds the verifier collectors. The zero value is not usable; build
// it with [New].
type Metrics struct {
	ingests   *prometheus.CounterVec
	decisions *prometheus.CounterVec
	modPow    *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg. A nil reg gets a
// fresh private registry.
func New(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		ingests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "verifier_ingests_total",
				Help: "number of ingested ciphertexts by status",
			}, []string{LabelStatus}),
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "verifier_decisions_total",
				Help: "number of operator decisions by decision and status",
			}, []string{LabelDecision, LabelStatus}),
		modPow: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "verifier_modpow_seconds",
			Help:    "time spent in modular exponentiation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{LabelOperation}),
		gatherer: reg,
	}

	var err error
	if m.ingests, err = register(reg, m.ingests); err != nil {
		return nil, err
	}
	if m.decisions, err = register(reg, m.decisions); err != nil {
		return nil, err
	}
	if m.modPow, err = register(reg, m.modPow); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, reusing an identical collector that is already
// registered.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}

// IncIngest counts one ingest attempt.
func (m *Metrics) IncIngest(status string) {
	m.ingests.WithLabelValues(status).Inc()
}

// IncDecision counts one resolved, failed or dismissed decision.
func (m *Metrics) IncDecision(decision, status string) {
	m.decisions.WithLabelValues(decision, status).Inc()
}

// ObserveModPow records how long one modular exponentiation took.
func (m *Metrics) ObserveModPow(operation string, elapsed time.Duration) {
	m.modPow.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Nop is a [Recorder] that drops everything.
type Nop struct{}

func (Nop) IncIngest(string)                    {}
func (Nop) IncDecision(string, string)          {}
func (Nop) ObserveModPow(string, time.Duration) {}
