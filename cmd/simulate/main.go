package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/levenlabs/go-lflag"
	"github.com/solarquote/solarquote/pkg/log"
	"github.com/solarquote/solarquote/pkg/scenario"
	"github.com/solarquote/solarquote/pkg/simulation"
	"github.com/solarquote/solarquote/pkg/tariff"
)

func main() {
	c := tariff.Configured()

	scenarioPath := lflag.RequiredString("scenario", "Path to the scenario YAML file")
	output := lflag.String("output", "-", "Where to write the JSON result (- for stdout)")
	hourlyCSV := lflag.String("hourly-csv", "", "Optional path to write the hourly ledger as CSV")
	compare := lflag.Bool("compare", false, "Compare the scenario with and without a battery instead of a single run")

	lflag.Configure()
	level := log.ConfigureFromFlags()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// stdout may carry the result
	ctx = log.With(ctx, slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(ctx, c, *scenarioPath, *output, *hourlyCSV, *compare); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "simulation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, c *tariff.Catalog, scenarioPath, output, hourlyCSV string, compare bool) error {
	f, err := scenario.Load(scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	in, err := f.Input(ctx, c)
	if err != nil {
		return err
	}

	var result any
	var ledger *simulation.Ledger
	if compare {
		result, err = scenario.Compare(ctx, in, f.Tier())
	} else {
		result, ledger, err = simulation.RunWithLedger(ctx, in)
	}
	if err != nil {
		return err
	}

	if err := writeTo(output, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if hourlyCSV != "" {
		if ledger == nil {
			log.Ctx(ctx).WarnContext(ctx, "no hourly ledger to write", slog.Bool("compare", compare))
			return nil
		}
		if err := writeTo(hourlyCSV, ledger.WriteCSV); err != nil {
			return fmt.Errorf("failed to write hourly csv: %w", err)
		}
	}

	log.Ctx(ctx).InfoContext(ctx, "scenario simulated", slog.String("scenario", scenarioPath), slog.String("name", f.Name))
	return nil
}

func writeTo(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
