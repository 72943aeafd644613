package types

// DefaultBatteryEfficiency is the round-trip charging efficiency assumed when
// none is given.
const DefaultBatteryEfficiency = 0.95

// Battery is either NoBattery or a StorageBattery.
type Battery interface {
	// CapacityKWh is zero for NoBattery.
	CapacityKWh() float64
	isBattery()
}

// NoBattery is an installation without storage.
type NoBattery struct{}

func (NoBattery) CapacityKWh() float64 { return 0 }
func (NoBattery) isBattery() {}

// StorageBattery is a home battery with a usable capacity, a symmetric
// charge/discharge power limit and a charging efficiency.
type StorageBattery struct {
	Capacity   float64
	PowerKW    float64
	Efficiency float64
}

func (b StorageBattery) CapacityKWh() float64 { return b.Capacity }
func (StorageBattery) isBattery() {}

// NewBattery returns NoBattery unless both capacity and power are positive.
// A non-positive efficiency is replaced with DefaultBatteryEfficiency.
func NewBattery(capacityKWh, powerKW, efficiency float64) Battery {
	if capacityKWh <= 0 || powerKW <= 0 {
		return NoBattery{}
	}
	if efficiency <= 0 {
		efficiency = DefaultBatteryEfficiency
	}
	return StorageBattery{
		Capacity:   capacityKWh,
		PowerKW:    powerKW,
		Efficiency: efficiency,
	}
}

// BatteryConfig is the serialized form of a battery in requests and scenario
// files.
type BatteryConfig struct {
	CapacityKWh float64 `json:"capacityKWh" yaml:"capacity_kwh"`
	PowerKW     float64 `json:"powerKW" yaml:"power_kw"`
	Efficiency  float64 `json:"efficiency,omitempty" yaml:"efficiency,omitempty"`
}

// Battery converts the config into a Battery. A nil config is NoBattery.
func (c *BatteryConfig) Battery() Battery {
	if c == nil {
		return NoBattery{}
	}
	return NewBattery(c.CapacityKWh, c.PowerKW, c.Efficiency)
}
