// Package metrics exposes the evolution driver's progress as Prometheus
// gauges. There is no HTTP server here: the registry is dumped to the text
// exposition format on demand (e.g. alongside the run's report) rather than
// scraped, since the driver itself never opens a network port.
package metrics

import (
	"bytes"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector tracks one run's progress as three gauges: the most recently
// reported generation, that generation's best fitness, and the configured population
// size (constant for the run, exposed for dashboards that join on it).
type Collector struct {
	registry       *prometheus.Registry
	generation     prometheus.Gauge
	bestFitness    prometheus.Gauge
	populationSize prometheus.Gauge
}

// NewCollector builds a Collector with its own private registry — runs
// don't share state, so there is no global default-registry registration.
func NewCollector(populationSize int) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ga_generation",
			Help: "Current generation index of the evolution run.",
		}),
		bestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ga_best_fitness",
			Help: "Best (closest to zero) fitness of the most recently reported generation.",
		}),
		populationSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ga_population_size",
			Help: "Configured population size for the run.",
		}),
	}

	registry.MustRegister(c.generation, c.bestFitness, c.populationSize)
	c.populationSize.Set(float64(populationSize))

	return c
}

// Observe records one generation's progress. It is the shape expected by
// ga.ProgressFunc, so it can be passed directly as the driver's callback.
func (c *Collector) Observe(generation int, bestFitness float64) {
	c.generation.Set(float64(generation))
	c.bestFitness.Set(bestFitness)
}

// DumpText renders the current gauge values in the Prometheus text
// exposition format.
func (c *Collector) DumpText() (string, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return "", fmt.Errorf("metrics: gathering: %w", err)
	}
	var buf bytes.Buffer
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, family); err != nil {
			return "", fmt.Errorf("metrics: encoding: %w", err)
		}
	}
	return buf.String(), nil
}
