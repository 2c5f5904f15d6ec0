package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/natefinch/atomic"

	"github.com/go-borrow/borrow"
	"github.com/go-borrow/borrow/internal/cli"
)

// scenario is one benchmark workload over a borrow.Cell.
type scenario struct {
	name string
	desc string
	run  func(iterations int) error
}

// scenarios in display order.
var scenarios = []scenario{
	{
		name: "shared",
		desc: "shared borrow, read, release",
		run:  runShared,
	},
	{
		name: "exclusive",
		desc: "exclusive borrow, write, release",
		run:  runExclusive,
	},
	{
		name: "map",
		desc: "shared borrow, map to a sub-view, release",
		run:  runMap,
	},
	{
		name: "derive",
		desc: "shared borrow, derive an iterator, consume, release",
		run:  runDerive,
	},
	{
		name: "mixed",
		desc: "alternating shared and exclusive cycles",
		run:  runMixed,
	},
}

func lookupScenario(name string) *scenario {
	for i := range scenarios {
		if scenarios[i].name == name {
			return &scenarios[i]
		}
	}

	return nil
}

// Result holds one scenario's measurement.
type Result struct {
	Scenario   string  `json:"scenario"`
	Iterations int     `json:"iterations"`
	NsPerOp    float64 `json:"ns_per_op"`
	OpsPerSec  float64 `json:"ops_per_sec"`
}

// Report is the JSON document written with --out.
type Report struct {
	Timestamp  string   `json:"timestamp"`
	Iterations int      `json:"iterations"`
	Results    []Result `json:"results"`
}

// runScenarios runs the configured scenarios and collects a report.
func runScenarios(cfg Config) (Report, error) {
	names := cfg.Scenarios
	if len(names) == 0 {
		names = make([]string, 0, len(scenarios))
		for _, sc := range scenarios {
			names = append(names, sc.name)
		}
	}

	report := Report{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Iterations: cfg.Iterations,
	}

	for _, name := range names {
		sc := lookupScenario(name)
		if sc == nil {
			return Report{}, fmt.Errorf("%w: unknown scenario %q", errConfigInvalid, name)
		}

		start := time.Now()

		if err := sc.run(cfg.Iterations); err != nil {
			return Report{}, fmt.Errorf("scenario %s: %w", name, err)
		}

		elapsed := time.Since(start)
		nsPerOp := float64(elapsed.Nanoseconds()) / float64(cfg.Iterations)

		result := Result{
			Scenario:   name,
			Iterations: cfg.Iterations,
			NsPerOp:    nsPerOp,
		}
		if elapsed > 0 {
			result.OpsPerSec = float64(cfg.Iterations) / elapsed.Seconds()
		}

		report.Results = append(report.Results, result)
	}

	return report, nil
}

func printReport(o *cli.IO, report Report) {
	o.Printf("%-10s %12s %14s\n", "scenario", "ns/op", "ops/sec")

	for _, r := range report.Results {
		o.Printf("%-10s %12.1f %14.0f\n", r.Scenario, r.NsPerOp, r.OpsPerSec)
	}
}

// writeReport writes the report atomically so a partially written file
// never shadows a previous complete one.
func writeReport(path string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	data = append(data, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

type payload struct {
	name  string
	items []string
	hits  int
}

func newBenchCell() *borrow.Cell[payload] {
	return borrow.NewCell(payload{
		name:  "bench",
		items: []string{"a", "b", "c", "d"},
	})
}

func runShared(iterations int) error {
	cell := newBenchCell()

	for n := 0; n < iterations; n++ {
		g, err := cell.TryBorrow()
		if err != nil {
			return err
		}

		_ = g.Value().name
		g.Release()
	}

	return nil
}

func runExclusive(iterations int) error {
	cell := newBenchCell()

	for n := 0; n < iterations; n++ {
		w, err := cell.TryBorrowMut()
		if err != nil {
			return err
		}

		w.Value().hits++
		w.Release()
	}

	return nil
}

func runMap(iterations int) error {
	cell := newBenchCell()

	for n := 0; n < iterations; n++ {
		g, err := cell.TryBorrow()
		if err != nil {
			return err
		}

		items := borrow.Map(g, func(p payload) []string { return p.items })
		_ = items.Value()
		items.Release()
	}

	return nil
}

func runDerive(iterations int) error {
	cell := newBenchCell()

	for n := 0; n < iterations; n++ {
		g, err := cell.TryBorrow()
		if err != nil {
			return err
		}

		d, err := borrow.MapDerive(g, func(p payload) (int, error) {
			return len(p.items), nil
		})
		if err != nil {
			return err
		}

		_ = *d.Value()
		d.Release()
	}

	return nil
}

func runMixed(iterations int) error {
	cell := newBenchCell()

	for i := 0; i < iterations; i++ {
		if i%2 == 0 {
			g, err := cell.TryBorrow()
			if err != nil {
				return err
			}

			_ = g.Value().name
			g.Release()

			continue
		}

		w, err := cell.TryBorrowMut()
		if err != nil {
			return err
		}

		w.Value().hits++
		w.Release()
	}

	return nil
}
