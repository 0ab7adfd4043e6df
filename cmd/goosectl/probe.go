package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/joshuapare/goosekit/memory/alloc"
	"github.com/joshuapare/goosekit/memory/traits"
)

func init() {
	rootCmd.AddCommand(newProbeCmd())
}

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Report the capabilities detected on each built-in allocator",
		Long: `The probe command runs capability detection against every built-in
allocator for int elements and prints which optional operations each one
provides. Operations an allocator does not provide fall back to the default
lifecycle primitives.

Example:
  goosectl probe
  goosectl probe --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe()
		},
	}
	return cmd
}

type probeRow struct {
	Allocator    string `json:"allocator"`
	Capabilities string `json:"capabilities"`
	MaxCount     int    `json:"max_count"`
}

func probeRows() ([]probeRow, error) {
	mm, err := alloc.NewMmap[int]()
	if err != nil {
		return nil, fmt.Errorf("mmap allocator: %w", err)
	}
	limited := alloc.NewLimited[int](alloc.NewBudget(1 << 20))
	instrumented := alloc.Instrument[int](alloc.Heap[int]{}, "heap", alloc.NewMetrics(prometheus.NewRegistry()))

	allocators := []struct {
		name string
		a    alloc.Allocator[int]
	}{
		{"heap", alloc.Heap[int]{}},
		{"limited", limited},
		{"mmap", mm},
		{"instrumented", instrumented},
	}

	rows := make([]probeRow, 0, len(allocators))
	for _, entry := range allocators {
		tr := traits.New(entry.a)
		rows = append(rows, probeRow{
			Allocator:    entry.name,
			Capabilities: tr.Caps().String(),
			MaxCount:     tr.MaxCount(),
		})
	}
	return rows, nil
}

func runProbe() error {
	rows, err := probeRows()
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(rows)
	}

	printInfo("%-14s %-12s %s\n", "ALLOCATOR", "MAX COUNT", "CAPABILITIES")
	for _, r := range rows {
		printInfo("%-14s %-12d %s\n", r.Allocator, r.MaxCount, r.Capabilities)
	}
	return nil
}
