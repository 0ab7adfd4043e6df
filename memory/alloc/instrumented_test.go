package alloc

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumented_ReportsTraffic(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := NewMetrics(reg)
	a := Instrument[int64](NewLimited[int64](NewBudget(64)), "test", m)

	p, err := a.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.allocations.WithLabelValues("test")))
	assert.Equal(t, 32.0, testutil.ToFloat64(m.bytesInUse.WithLabelValues("test")))

	_, err = a.Allocate(5)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("test")))

	a.Deallocate(p, 4)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deallocations.WithLabelValues("test")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.bytesInUse.WithLabelValues("test")))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestInstrumented_ZeroCountIsNotAnAllocation(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	a := Instrument[int](Heap[int]{}, "heap", m)

	_, err := a.Allocate(0)
	require.NoError(t, err)
	a.Deallocate(nil, 0)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.allocations.WithLabelValues("heap")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.deallocations.WithLabelValues("heap")))
}

func TestInstrumented_EqualityAndLayout(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	b := NewBudget(80)
	a1 := Instrument[int64](NewLimited[int64](b), "a", m)
	a2 := Instrument[int64](NewLimited[int64](b), "a", m)
	other := Instrument[int64](NewLimited[int64](NewBudget(80)), "a", m)

	assert.True(t, Equal(a1, a2), "same series, same budget")
	assert.False(t, Equal(a1, other))
	assert.Equal(t, 10, a1.Layout().MaxCount)
	assert.Same(t, b, a1.Unwrap().(*Limited[int64]).Budget())
}

func TestInstrumented_EqualRequiresSameSeries(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	a := Instrument[int](Heap[int]{}, "a", m)
	b := Instrument[int](Heap[int]{}, "b", m)
	elsewhere := Instrument[int](Heap[int]{}, "a", NewMetrics(prometheus.NewRegistry()))

	assert.False(t, Equal(a, b), "different labels")
	assert.False(t, Equal(a, elsewhere), "different registries")

	lim := NewLimited[int](NewBudget(64))
	wrapped := Instrument[int](lim, "lim", m)
	assert.False(t, Equal(lim, wrapped))
	assert.False(t, Equal(wrapped, lim), "a bare allocator never equals its wrapper")
	assert.False(t, Equal(Heap[int]{}, a))
	assert.False(t, Equal(a, Heap[int]{}))
}
