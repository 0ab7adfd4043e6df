package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the allocator metric families for one registry. Create it once
// per registry and share it between Instrumented allocators; each allocator
// reports under its own name label.
type Metrics struct {
	allocations   *prometheus.CounterVec
	deallocations *prometheus.CounterVec
	failures      *prometheus.CounterVec
	bytesInUse    *prometheus.GaugeVec
}

// NewMetrics registers the allocator metric families with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		allocations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "goosekit",
			Subsystem: "alloc",
			Name:      "allocations_total",
			Help:      "Total number of regions handed out.",
		}, []string{"allocator"}),
		deallocations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "goosekit",
			Subsystem: "alloc",
			Name:      "deallocations_total",
			Help:      "Total number of regions released.",
		}, []string{"allocator"}),
		failures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "goosekit",
			Subsystem: "alloc",
			Name:      "failures_total",
			Help:      "Total number of allocation requests that failed.",
		}, []string{"allocator"}),
		bytesInUse: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "goosekit",
			Subsystem: "alloc",
			Name:      "bytes_in_use",
			Help:      "Bytes currently held in live regions.",
		}, []string{"allocator"}),
	}
}

// Instrumented wraps an Allocator and reports every request to Metrics.
//
// Only Allocate and Deallocate are forwarded. Construction and destruction
// hooks of the wrapped allocator are not visible through the wrapper, so
// containers using it fall back to the default lifecycle primitives.
type Instrumented[T any] struct {
	inner   Allocator[T]
	name    string
	metrics *Metrics

	allocations   prometheus.Counter
	deallocations prometheus.Counter
	failures      prometheus.Counter
	bytesInUse    prometheus.Gauge
}

// Instrument wraps inner, reporting under name.
func Instrument[T any](inner Allocator[T], name string, m *Metrics) *Instrumented[T] {
	return &Instrumented[T]{
		inner:         inner,
		name:          name,
		metrics:       m,
		allocations:   m.allocations.WithLabelValues(name),
		deallocations: m.deallocations.WithLabelValues(name),
		failures:      m.failures.WithLabelValues(name),
		bytesInUse:    m.bytesInUse.WithLabelValues(name),
	}
}

// Unwrap returns the wrapped allocator.
func (a *Instrumented[T]) Unwrap() Allocator[T] { return a.inner }

func (a *Instrumented[T]) Allocate(n int) ([]T, error) {
	p, err := a.inner.Allocate(n)
	if err != nil {
		a.failures.Inc()
		return nil, err
	}
	if n > 0 {
		a.allocations.Inc()
		if size, err := regionBytes[T](n); err == nil {
			a.bytesInUse.Add(float64(size))
		}
	}
	return p, nil
}

func (a *Instrumented[T]) Deallocate(p []T, n int) {
	a.inner.Deallocate(p, n)
	if n > 0 {
		a.deallocations.Inc()
		if size, err := regionBytes[T](n); err == nil {
			a.bytesInUse.Sub(float64(size))
		}
	}
}

// Equal reports whether other is an Instrumented allocator reporting to the
// same series and wrapping an equal allocator. Storage moved between
// differently labelled allocators would leave both gauges wrong, and a bare
// inner allocator reports to no series at all.
func (a *Instrumented[T]) Equal(other any) bool {
	o, ok := other.(*Instrumented[T])
	if !ok {
		return false
	}
	return a.name == o.name && a.metrics == o.metrics && Equal(a.inner, o.inner)
}

// Layout reports the wrapped allocator's layout.
func (a *Instrumented[T]) Layout() Layout {
	if lp, ok := a.inner.(LayoutProvider); ok {
		return LayoutOf[T]().Merge(lp.Layout())
	}
	return LayoutOf[T]()
}
