package alamos

type Metric[T any] interface {
	Record(T)
	Values() []T
	Count() int
}

type baseMetric interface {
	key() string
	report() interface{}
}

type entry struct {
	k string
}

func (e entry) key() string { return e.k }

// |||||| GAUGE ||||||

// gauge keeps the most recent value and the number of times it was set.
type gauge[T Numeric] struct {
	entry
	count int
	value T
}

func NewGauge[T Numeric](exp Experiment, key string) Metric[T] {
	if exp == nil {
		return empty[T]{}
	}
	m := &gauge[T]{entry: entry{k: key}}
	exp.AddMetric(m)
	return m
}

func (g *gauge[T]) Record(v T) {
	g.count++
	g.value = v
}

func (g *gauge[T]) Values() []T {
	if g.count == 0 {
		return nil
	}
	return []T{g.value}
}

func (g *gauge[T]) Count() int { return g.count }

func (g *gauge[T]) report() interface{} {
	return map[string]interface{}{"count": g.count, "value": g.value}
}

// |||||| SERIES ||||||

// series keeps every recorded value in order.
type series[T any] struct {
	entry
	values []T
}

func NewSeries[T any](exp Experiment, key string) Metric[T] {
	if exp == nil {
		return empty[T]{}
	}
	m := &series[T]{entry: entry{k: key}}
	exp.AddMetric(m)
	return m
}

func (s *series[T]) Record(v T) { s.values = append(s.values, v) }

func (s *series[T]) Values() []T { return s.values }

func (s *series[T]) Count() int { return len(s.values) }

func (s *series[T]) report() interface{} { return s.values }

// |||||| EMPTY ||||||

type empty[T any] struct{}

func (empty[T]) Record(T) {}

func (empty[T]) Values() []T { return nil }

func (empty[T]) Count() int { return 0 }

// Numeric admits time.Duration through ~int64.
type Numeric interface {
	~float64 | ~float32 | ~int | ~int64 | ~int32 | ~int16 | ~int8 |
		~uint64 | ~uint32 | ~uint16 | ~uint8
}
