// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "basement"

type metrics struct {
	registry *prometheus.Registry

	operations    *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	totalDeposits *prometheus.GaugeVec
	accrued       *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
	}

	m.operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "engine",
			Name:      "operations_total",
			Help:      "Engine operations by name and result",
		},
		[]string{"operation", "result"},
	)

	m.duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "engine",
			Name:      "operation_duration_seconds",
			Help:      "Time taken by an engine operation including lock wait",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"operation"},
	)

	m.totalDeposits = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "farm",
			Name:      "total_deposits",
			Help:      "Total deposits of a farm after its last committed operation",
		},
		[]string{"farm"},
	)

	m.accrued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "farm",
			Name:      "compounded_total",
			Help:      "Rewards compounded into a farm",
		},
		[]string{"farm"},
	)

	m.registry.MustRegister(
		m.operations,
		m.duration,
		m.totalDeposits,
		m.accrued,
		prometheus.NewGoCollector(),
	)
	return m
}

func (m *metrics) record(operation string, start time.Time, err error) {
	result := "ok"
	if nil != err {
		result = "error"
	}
	m.operations.WithLabelValues(operation, result).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
