package simulation

import (
	"testing"

	"github.com/solarquote/solarquote/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestDispatch(t *testing.T) {
	battery := types.StorageBattery{Capacity: 10, PowerKW: 5, Efficiency: 0.5}

	t.Run("Surplus Without Battery", func(t *testing.T) {
		f, s := Dispatch(BatteryState{Battery: types.NoBattery{}}, 3, 1)
		assert.Equal(t, Flow{AutoconsumptionKWh: 1, SurplusKWh: 2}, f)
		assert.Zero(t, s.SoCKWh)
	})

	t.Run("Nil Battery", func(t *testing.T) {
		f, s := Dispatch(BatteryState{}, 1, 3)
		assert.Equal(t, Flow{AutoconsumptionKWh: 1, GridImportKWh: 2}, f)
		assert.Zero(t, s.SoCKWh)
	})

	t.Run("Balanced Hour", func(t *testing.T) {
		f, s := Dispatch(BatteryState{Battery: battery, SoCKWh: 4}, 2, 2)
		assert.Equal(t, Flow{AutoconsumptionKWh: 2}, f)
		assert.Equal(t, 4.0, s.SoCKWh)
	})

	t.Run("Charge Limited By Power", func(t *testing.T) {
		f, s := Dispatch(BatteryState{Battery: battery}, 10, 0)
		assert.Equal(t, 5.0, f.ChargeKWh)
		assert.Equal(t, 5.0, f.SurplusKWh)
		// efficiency is applied when crediting the state of charge
		assert.Equal(t, 2.5, s.SoCKWh)
		assert.Zero(t, f.DischargeKWh)
	})

	t.Run("Charge Limited By Room Over Efficiency", func(t *testing.T) {
		f, s := Dispatch(BatteryState{Battery: battery, SoCKWh: 9}, 10, 0)
		// room is 1 kWh, so 2 kWh of surplus are drawn at 50% efficiency
		assert.Equal(t, 2.0, f.ChargeKWh)
		assert.Equal(t, 8.0, f.SurplusKWh)
		assert.Equal(t, 10.0, s.SoCKWh)
	})

	t.Run("Zero Efficiency Charges At Default", func(t *testing.T) {
		b := types.StorageBattery{Capacity: 10, PowerKW: 5}
		f, s := Dispatch(BatteryState{Battery: b}, 10, 0)
		assert.Equal(t, 5.0, f.ChargeKWh)
		assert.Equal(t, 5.0, f.SurplusKWh)
		assert.InDelta(t, 5*types.DefaultBatteryEfficiency, s.SoCKWh, 1e-9)

		// near full, the room is still divided by a finite efficiency
		f, s = Dispatch(BatteryState{Battery: b, SoCKWh: 9.5}, 10, 0)
		assert.InDelta(t, 0.5/types.DefaultBatteryEfficiency, f.ChargeKWh, 1e-9)
		assert.InDelta(t, 10, s.SoCKWh, 1e-9)
		assert.InDelta(t, 10-f.ChargeKWh, f.SurplusKWh, 1e-9)
	})

	t.Run("Charge Limited By Surplus", func(t *testing.T) {
		f, s := Dispatch(BatteryState{Battery: battery}, 1.5, 0.5)
		assert.Equal(t, 1.0, f.ChargeKWh)
		assert.Zero(t, f.SurplusKWh)
		assert.Equal(t, 0.5, s.SoCKWh)
	})

	t.Run("Full Battery Exports Everything", func(t *testing.T) {
		f, s := Dispatch(BatteryState{Battery: battery, SoCKWh: 10}, 4, 1)
		assert.Equal(t, Flow{AutoconsumptionKWh: 1, SurplusKWh: 3}, f)
		assert.Equal(t, 10.0, s.SoCKWh)
	})

	t.Run("Discharge Has No Loss", func(t *testing.T) {
		f, s := Dispatch(BatteryState{Battery: battery, SoCKWh: 10}, 1, 4)
		assert.Equal(t, Flow{AutoconsumptionKWh: 1, DischargeKWh: 3}, f)
		assert.Equal(t, 7.0, s.SoCKWh)
	})

	t.Run("Discharge Limited By Power", func(t *testing.T) {
		f, s := Dispatch(BatteryState{Battery: battery, SoCKWh: 10}, 0, 8)
		assert.Equal(t, 5.0, f.DischargeKWh)
		assert.Equal(t, 3.0, f.GridImportKWh)
		assert.Equal(t, 5.0, s.SoCKWh)
	})

	t.Run("Discharge Limited By SoC", func(t *testing.T) {
		f, s := Dispatch(BatteryState{Battery: battery, SoCKWh: 1}, 0, 3)
		assert.Equal(t, 1.0, f.DischargeKWh)
		assert.Equal(t, 2.0, f.GridImportKWh)
		assert.Zero(t, s.SoCKWh)
	})

	t.Run("Empty Battery Imports", func(t *testing.T) {
		f, s := Dispatch(BatteryState{Battery: battery}, 0, 3)
		assert.Equal(t, Flow{GridImportKWh: 3}, f)
		assert.Zero(t, s.SoCKWh)
	})
}
