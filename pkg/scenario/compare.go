package scenario

import (
	"context"
	"log/slog"
	"math"

	"github.com/solarquote/solarquote/pkg/log"
	"github.com/solarquote/solarquote/pkg/simulation"
	"github.com/solarquote/solarquote/pkg/types"
	"golang.org/x/sync/errgroup"
)

// PaybackHorizonYears is the longest payback reported.
const PaybackHorizonYears = 25

// Comparison is an installation simulated without and with a battery.
type Comparison struct {
	Baseline    *types.Result `json:"baseline"`
	WithBattery *types.Result `json:"withBattery,omitempty"`
	// Recommendation is set when the installation qualifies for a battery.
	Recommendation *Recommendation `json:"recommendation,omitempty"`

	BatteryCostPLN    float64 `json:"batteryCostPLN"`
	BatterySavingsPLN float64 `json:"batterySavingsPLN"`
	// PaybackYears is nil when the battery does not pay for itself within
	// PaybackHorizonYears.
	PaybackYears *float64 `json:"paybackYears"`
}

// Payback returns the simple payback period of an investment. It returns
// false when the savings never recover the cost within PaybackHorizonYears.
func Payback(costPLN, annualSavingsPLN float64) (float64, bool) {
	if costPLN <= 0 || annualSavingsPLN <= 0 {
		return 0, false
	}
	years := costPLN / annualSavingsPLN
	if years > PaybackHorizonYears {
		return 0, false
	}
	return math.Round(years*10) / 10, true
}

func run(ctx context.Context, in simulation.Input, b types.Battery) (*types.Result, error) {
	in.Battery = b
	return simulation.Run(ctx, in)
}

// Compare simulates in without a battery and with one. When in has no
// battery the recommended one for tier is simulated instead, and WithBattery
// stays nil if none is recommended.
func Compare(ctx context.Context, in simulation.Input, tier Tier) (*Comparison, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c := new(Comparison)
	battery, hasBattery := in.Battery.(types.StorageBattery)
	if hasBattery {
		battery, hasBattery = types.NewBattery(battery.Capacity, battery.PowerKW, battery.Efficiency).(types.StorageBattery)
	}
	if !hasBattery {
		baseline, err := run(ctx, in, types.NoBattery{})
		if err != nil {
			return nil, err
		}
		c.Baseline = baseline
		rec, ok := Recommend(baseline, tier)
		if !ok {
			log.Ctx(ctx).DebugContext(ctx, "no battery recommended")
			return c, nil
		}
		c.Recommendation = &rec
		c.WithBattery, err = run(ctx, in, rec.Battery())
		if err != nil {
			return nil, err
		}
		c.BatteryCostPLN = rec.CostPLN
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			var err error
			c.Baseline, err = run(egCtx, in, types.NoBattery{})
			return err
		})
		eg.Go(func() error {
			var err error
			c.WithBattery, err = run(egCtx, in, battery)
			return err
		})
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		if rec, ok := Recommend(c.Baseline, tier); ok {
			c.Recommendation = &rec
		}
		c.BatteryCostPLN = battery.Capacity * tier.CostPLNPerKWh()
	}

	c.BatterySavingsPLN = math.Round((c.WithBattery.AnnualCashflow.NetPLN-c.Baseline.AnnualCashflow.NetPLN)*100) / 100
	if years, ok := Payback(c.BatteryCostPLN, c.BatterySavingsPLN); ok {
		c.PaybackYears = &years
	}

	log.Ctx(ctx).DebugContext(
		ctx,
		"battery comparison finished",
		slog.Float64("batterySavingsPLN", c.BatterySavingsPLN),
		slog.Float64("batteryCostPLN", c.BatteryCostPLN),
	)
	return c, nil
}
