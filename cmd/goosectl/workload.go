package main

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/joshuapare/goosekit/container/optional"
	"github.com/joshuapare/goosekit/container/vector"
	"github.com/joshuapare/goosekit/internal/logger"
	"github.com/joshuapare/goosekit/memory/alloc"
)

var (
	workloadCount     int
	workloadBudget    int
	workloadAllocator string
)

func init() {
	cmd := newWorkloadCmd()
	cmd.Flags().IntVarP(&workloadCount, "count", "n", 1000, "Number of elements to push")
	cmd.Flags().IntVar(&workloadBudget, "budget", 1<<20, "Byte budget for the limited allocator")
	cmd.Flags().
		StringVarP(&workloadAllocator, "allocator", "a", "heap", "Allocator to use: heap, limited or mmap")
	rootCmd.AddCommand(cmd)
}

func newWorkloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workload",
		Short: "Grow, clone and release a vector and report allocator metrics",
		Long: `The workload command pushes --count integers into a vector backed by the
selected allocator, clones it, shrinks the original and releases both. The
allocator is instrumented and the resulting metrics are printed at the end.

Example:
  goosectl workload --count 10000 --allocator mmap
  goosectl workload --allocator limited --budget 4096 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkload(workloadAllocator, workloadCount, workloadBudget)
		},
	}
}

type workloadResult struct {
	Allocator string             `json:"allocator"`
	Count     int                `json:"count"`
	Pushed    int                `json:"pushed"`
	Error     string             `json:"error,omitempty"`
	PeakBytes int                `json:"peak_bytes,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
}

func newAllocator(name string, budget int) (alloc.Allocator[int], *alloc.Budget, error) {
	switch name {
	case "heap":
		return alloc.Heap[int]{}, nil, nil
	case "limited":
		b := alloc.NewBudget(budget)
		return alloc.NewLimited[int](b), b, nil
	case "mmap":
		mm, err := alloc.NewMmap[int]()
		if err != nil {
			return nil, nil, err
		}
		return mm, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown allocator %q (want heap, limited or mmap)", name)
	}
}

// workload runs the vector exercise against a. It stops at the first failure
// and reports how many elements made it in; the vectors are always released.
func workload(a alloc.Allocator[int], count int) (int, error) {
	v := vector.New(vector.WithAllocator[int](a), vector.WithLogger[int](logger.L))
	defer v.Release()

	for i := range count {
		if err := v.PushBack(i); err != nil {
			return v.Len(), err
		}
	}

	clone, err := v.Clone()
	if err != nil {
		return v.Len(), err
	}
	defer clone.Release()

	var last optional.Optional[int]
	if back, err := clone.Back(); err == nil {
		last.Set(back)
	}
	logger.L.Debug("workload: filled", "len", v.Len(), "cap", v.Cap(), "last", last.String())

	if err := v.ShrinkToFit(); err != nil {
		return v.Len(), err
	}
	return v.Len(), nil
}

func runWorkload(name string, count, budget int) error {
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}
	inner, b, err := newAllocator(name, budget)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	a := alloc.Instrument(inner, name, alloc.NewMetrics(reg))

	res := workloadResult{Allocator: name, Count: count}
	res.Pushed, err = workload(a, count)
	if err != nil {
		res.Error = err.Error()
	}
	if b != nil {
		res.PeakBytes = b.Peak()
	}

	families, gerr := reg.Gather()
	if gerr != nil {
		return fmt.Errorf("gather metrics: %w", gerr)
	}
	res.Metrics = flattenMetrics(families)

	if jsonOut {
		return printJSON(res)
	}

	printInfo("Allocator: %s\n", res.Allocator)
	printInfo("Elements:  %d/%d\n", res.Pushed, res.Count)
	if b != nil {
		printInfo("Peak:      %d of %d bytes\n", res.PeakBytes, b.Limit())
	}
	if res.Error != "" {
		printInfo("Stopped:   %s\n", res.Error)
	}
	printInfo("\nMetrics:\n")
	names := make([]string, 0, len(res.Metrics))
	for n := range res.Metrics {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		printInfo("  %-40s %g\n", n, res.Metrics[n])
	}
	return nil
}

// flattenMetrics maps each counter and gauge family to its single value. Each
// registry holds one allocator, so every family has one series.
func flattenMetrics(families []*dto.MetricFamily) map[string]float64 {
	m := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				m[mf.GetName()] = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				m[mf.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}
	return m
}
