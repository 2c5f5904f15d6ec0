// Package main provides borrow-bench, a micro-benchmark tool for the
// borrow library's acquisition, transform and release paths.
package main

import (
	"context"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/go-borrow/borrow/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	o := cli.NewIO(out, errOut)

	flags := flag.NewFlagSet("borrow-bench", flag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "HuJSON config file with iterations/scenarios/out")
	iterations := flags.IntP("iterations", "n", 0, "iterations per scenario (overrides config)")
	scenarioNames := flags.StringSlice("scenario", nil, "scenario to run, repeatable (overrides config)")
	outPath := flags.String("out", "", "write a JSON report to this file (overrides config)")
	list := flags.Bool("list", false, "list available scenarios and exit")

	cmd := &cli.Command{
		Flags: flags,
		Usage: "borrow-bench [flags]",
		Short: "benchmark borrow cell acquisition, transform and release",
		Long: "borrow-bench measures the throughput of the borrow library's hot\n" +
			"paths: shared and exclusive borrow/release cycles, guard mapping,\n" +
			"and derived-value creation. Results are printed per scenario and\n" +
			"optionally written to a JSON report.",
		Exec: func(_ context.Context, o *cli.IO, _ []string) error {
			if *list {
				for _, sc := range scenarios {
					o.Printf("  %-10s %s\n", sc.name, sc.desc)
				}

				return nil
			}

			cfg := DefaultConfig()

			if *configPath != "" {
				loaded, err := LoadConfig(*configPath)
				if err != nil {
					return err
				}

				cfg = loaded
			}

			// Flags win over the config file.
			if *iterations > 0 {
				cfg.Iterations = *iterations
			}

			if len(*scenarioNames) > 0 {
				cfg.Scenarios = *scenarioNames
			}

			if *outPath != "" {
				cfg.Out = *outPath
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			report, err := runScenarios(cfg)
			if err != nil {
				return err
			}

			printReport(o, report)

			if cfg.Out != "" {
				if err := writeReport(cfg.Out, report); err != nil {
					return err
				}

				o.Println()
				o.Println("report written to", cfg.Out)
			}

			return nil
		},
	}

	return cmd.Run(context.Background(), o, args)
}
