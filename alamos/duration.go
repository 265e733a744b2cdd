package alamos

import (
	"time"
)

type Duration interface {
	Metric[time.Duration]
	Start()
	Stop() time.Duration
}

type duration struct {
	start time.Time
	Metric[time.Duration]
}

func (d *duration) Start() {
	if !d.start.IsZero() {
		panic("duration already started. please call Stop() first")
	}
	d.start = time.Now()
}

func (d *duration) Stop() time.Duration {
	if d.start.IsZero() {
		panic("duration not started. please call Start() first")
	}
	t := time.Since(d.start)
	d.start = time.Time{}
	d.Record(t)
	return t
}

func NewSeriesDuration(exp Experiment, key string) Duration {
	if exp == nil {
		return emptyDuration{}
	}
	return &duration{Metric: NewSeries[time.Duration](exp, key)}
}

func NewGaugeDuration(exp Experiment, key string) Duration {
	if exp == nil {
		return emptyDuration{}
	}
	return &duration{Metric: NewGauge[time.Duration](exp, key)}
}

type emptyDuration struct {
	empty[time.Duration]
}

func (emptyDuration) Start() {}

func (emptyDuration) Stop() time.Duration { return 0 }
