package simulation

import "github.com/solarquote/solarquote/pkg/types"

// Flow is the energy balance of one hour after battery dispatch. Charge and
// discharge are never both positive.
type Flow struct {
	// AutoconsumptionKWh is PV energy consumed directly by the household.
	AutoconsumptionKWh float64
	// SurplusKWh is PV energy exported to the grid after charging.
	SurplusKWh    float64
	GridImportKWh float64
	ChargeKWh     float64
	DischargeKWh  float64
}

// BatteryState is a battery and its state of charge at an hour boundary.
type BatteryState struct {
	Battery types.Battery
	SoCKWh  float64
}

// Dispatch settles one hour of production against consumption and returns
// the flow and the battery state for the next hour.
//
// Charging is limited by power and by room/efficiency, and the state of
// charge is credited charge*efficiency. A battery without a positive
// efficiency charges at types.DefaultBatteryEfficiency. Discharge has no loss
// factor.
func Dispatch(state BatteryState, productionKWh, consumptionKWh float64) (Flow, BatteryState) {
	var f Flow
	balance := productionKWh - consumptionKWh

	if balance >= 0 {
		f.AutoconsumptionKWh = consumptionKWh
		f.SurplusKWh = balance
		switch b := state.Battery.(type) {
		case types.StorageBattery:
			if state.SoCKWh >= b.Capacity {
				break
			}
			eff := b.Efficiency
			if eff <= 0 {
				eff = types.DefaultBatteryEfficiency
			}
			room := b.Capacity - state.SoCKWh
			charge := max(0, min(f.SurplusKWh, b.PowerKW, room/eff))
			state.SoCKWh = min(b.Capacity, state.SoCKWh+charge*eff)
			f.ChargeKWh = charge
			f.SurplusKWh -= charge
		case types.NoBattery, nil:
		}
		return f, state
	}

	f.AutoconsumptionKWh = productionKWh
	deficit := -balance
	switch b := state.Battery.(type) {
	case types.StorageBattery:
		if state.SoCKWh <= 0 {
			break
		}
		discharge := min(deficit, b.PowerKW, state.SoCKWh)
		state.SoCKWh = max(0, state.SoCKWh-discharge)
		f.DischargeKWh = discharge
		deficit = max(0, deficit-discharge)
	case types.NoBattery, nil:
	}
	f.GridImportKWh = deficit
	return f, state
}
