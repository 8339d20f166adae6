/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package stubagent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
)

type metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
}

// newMetrics creates the metrics of a stub agent in their own registry, so multiple agents can live in one process.
func newMetrics() *metrics {
	result := &metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vpsubmit",
			Subsystem: "stubagent",
			Name:      "submissions_total",
			Help:      "Number of received presentation submissions by outcome.",
		}, []string{"outcome"}),
	}
	result.registry.MustRegister(
		result.submissions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return result
}
