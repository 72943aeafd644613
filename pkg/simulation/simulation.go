package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/solarquote/solarquote/pkg/log"
	"github.com/solarquote/solarquote/pkg/profile"
	"github.com/solarquote/solarquote/pkg/types"
)

// ErrInvalidInput is wrapped by every input validation failure.
var ErrInvalidInput = errors.New("invalid simulation input")

// Input is everything one annual simulation needs.
type Input struct {
	// AnnualProductionKWh is the target for the synthesized production
	// profile. It is ignored when ProductionProfile is set.
	AnnualProductionKWh float64
	// AnnualConsumptionKWh is the stated annual demand. It is the target for
	// the synthesized consumption profile and the net-billing cap.
	AnnualConsumptionKWh float64

	Tariff types.Tariff
	// ClearingPrices are the hourly export prices in PLN/kWh.
	ClearingPrices []float64

	// ProductionProfile and ConsumptionProfile are hourly kWh. Nil profiles
	// are synthesized.
	ProductionProfile  []float64
	ConsumptionProfile []float64

	// Battery is NoBattery when nil.
	Battery types.Battery
	// Household shapes the synthesized consumption profile.
	Household types.Household
}

func validateSeries(name string, series []float64) error {
	if len(series) != types.HoursPerYear {
		return fmt.Errorf("%w: %s must have %d values, got %d", ErrInvalidInput, name, types.HoursPerYear, len(series))
	}
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s has non-finite value %v at hour %d", ErrInvalidInput, name, v, i)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s has negative value %v at hour %d", ErrInvalidInput, name, v, i)
		}
	}
	return nil
}

// Validate checks the input without running the simulation.
func (in Input) Validate() error {
	for _, v := range []float64{in.AnnualProductionKWh, in.AnnualConsumptionKWh, in.Household.HeatingKWh, in.Household.CoolingKWh} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite annual energy %v", ErrInvalidInput, v)
		}
	}
	if in.AnnualProductionKWh < 0 {
		return fmt.Errorf("%w: negative annual production", ErrInvalidInput)
	}
	if in.AnnualConsumptionKWh < 0 {
		return fmt.Errorf("%w: negative annual consumption", ErrInvalidInput)
	}
	if in.Household.HeatingKWh < 0 || in.Household.CoolingKWh < 0 {
		return fmt.Errorf("%w: negative heating or cooling budget", ErrInvalidInput)
	}
	if err := in.Tariff.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validateSeries("clearing prices", in.ClearingPrices); err != nil {
		return err
	}
	if in.ProductionProfile != nil {
		if err := validateSeries("production profile", in.ProductionProfile); err != nil {
			return err
		}
	}
	if in.ConsumptionProfile != nil {
		if err := validateSeries("consumption profile", in.ConsumptionProfile); err != nil {
			return err
		}
	}
	if b, ok := in.Battery.(types.StorageBattery); ok && b.Efficiency > 1 {
		return fmt.Errorf("%w: battery efficiency %v is above 1", ErrInvalidInput, b.Efficiency)
	}
	return nil
}

// normalizeBattery applies the presence rule and the default efficiency to
// batteries that were not built with types.NewBattery.
func normalizeBattery(b types.Battery) types.Battery {
	sb, ok := b.(types.StorageBattery)
	if !ok {
		return types.NoBattery{}
	}
	return types.NewBattery(sb.Capacity, sb.PowerKW, sb.Efficiency)
}

// Run simulates one year hour by hour and returns the result.
func Run(ctx context.Context, in Input) (*types.Result, error) {
	res, _, err := RunWithLedger(ctx, in)
	return res, err
}

// RunWithLedger is Run that also returns the hourly ledger. The ledger is nil
// when the installation produces nothing.
func RunWithLedger(ctx context.Context, in Input) (*types.Result, *Ledger, error) {
	if err := in.Validate(); err != nil {
		return nil, nil, err
	}

	si := stepInput{
		production:  in.ProductionProfile,
		consumption: in.ConsumptionProfile,
		clearing:    in.ClearingPrices,
		tariff:      in.Tariff,
		battery:     normalizeBattery(in.Battery),
	}
	if si.production == nil {
		si.production = profile.Production(in.AnnualProductionKWh)
	}
	if si.consumption == nil {
		si.consumption = profile.Consumption(in.AnnualConsumptionKWh, in.Household)
	}

	if profile.Sum(si.production) <= 0 {
		log.Ctx(ctx).DebugContext(ctx, "no production, returning empty result")
		return emptyResult(si), nil, nil
	}

	l := step(si)
	s := Settle(l.ExportedKWh, l.ExportPLN, in.AnnualConsumptionKWh, si.clearing)
	res := aggregate(si, l, s)

	log.Ctx(ctx).DebugContext(
		ctx,
		"simulation finished",
		slog.Float64("productionKWh", res.EnergyFlow.ProductionKWh),
		slog.Float64("consumptionKWh", res.EnergyFlow.ConsumptionKWh),
		slog.Float64("surplusKWh", res.EnergyFlow.SurplusKWh),
		slog.Float64("netPLN", res.AnnualCashflow.NetPLN),
		slog.Float64("lostDepositPLN", res.AnnualCashflow.LostDepositPLN),
	)
	return res, l, nil
}
