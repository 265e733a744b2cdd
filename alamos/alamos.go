// Package alamos collects in-process measurements for a run into a tree of
// experiments that can be reported as JSON. A nil Experiment is valid
// everywhere and turns every metric created against it into a no-op.
package alamos

import (
	"sort"
	"sync"
)

type Experiment interface {
	// Key returns the name the experiment was created or sub-keyed with.
	Key() string
	// Sub returns the child experiment with the given key, creating it if
	// it does not exist.
	Sub(key string) Experiment
	// AddMetric attaches a metric to the experiment, replacing any metric
	// already registered under the same key.
	AddMetric(m baseMetric)
	// Metrics returns a snapshot of the metrics attached directly to the
	// experiment.
	Metrics() map[string]baseMetric
	// Report returns the experiment and all of its children as nested maps.
	Report() Report
}

// Report is a JSON-friendly view of an experiment tree.
type Report map[string]interface{}

type experiment struct {
	key      string
	mu       sync.Mutex
	children map[string]Experiment
	metrics  map[string]baseMetric
}

func New(key string) Experiment {
	return &experiment{
		key:      key,
		children: make(map[string]Experiment),
		metrics:  make(map[string]baseMetric),
	}
}

// Sub is a nil-safe version of Experiment.Sub.
func Sub(exp Experiment, key string) Experiment {
	if exp == nil {
		return nil
	}
	return exp.Sub(key)
}

func (e *experiment) Key() string { return e.key }

func (e *experiment) Sub(key string) Experiment {
	e.mu.Lock()
	defer e.mu.Unlock()
	if exp, ok := e.children[key]; ok {
		return exp
	}
	exp := New(key)
	e.children[key] = exp
	return exp
}

func (e *experiment) AddMetric(m baseMetric) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.metrics[m.key()] = m
}

func (e *experiment) Metrics() map[string]baseMetric {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]baseMetric, len(e.metrics))
	for k, m := range e.metrics {
		out[k] = m
	}
	return out
}

func (e *experiment) Report() Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := make(Report, len(e.metrics)+len(e.children))
	for k, m := range e.metrics {
		r[k] = m.report()
	}
	keys := make([]string, 0, len(e.children))
	for k := range e.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r[k] = e.children[k].Report()
	}
	return r
}
