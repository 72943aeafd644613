package types

import (
	"fmt"
	"time"
)

// TariffType identifies a Polish retail tariff group.
type TariffType string

const (
	TariffG11  TariffType = "g11"
	TariffG12  TariffType = "g12"
	TariffG12W TariffType = "g12w"
)

// TariffZone is an hour-of-day window with its own retail price. A window
// whose HourStart is after its HourEnd wraps past midnight.
type TariffZone struct {
	HourStart     int            `json:"hourStart" yaml:"hour_start"`
	HourEnd       int            `json:"hourEnd" yaml:"hour_end"`
	DaysOfTheWeek []time.Weekday `json:"daysOfTheWeek,omitempty" yaml:"days_of_the_week,omitempty"`
	PLNPerKWh     float64        `json:"plnPerKWh" yaml:"pln_per_kwh"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
}

// Contains checks if the hour of the day and weekday fall inside the zone.
func (z TariffZone) Contains(hourOfDay int, dow time.Weekday) bool {
	if z.HourStart <= z.HourEnd {
		if hourOfDay < z.HourStart || hourOfDay >= z.HourEnd {
			return false
		}
	} else if hourOfDay < z.HourStart && hourOfDay >= z.HourEnd {
		return false
	}
	if len(z.DaysOfTheWeek) > 0 {
		var found bool
		for _, d := range z.DaysOfTheWeek {
			if d == dow {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Tariff is the retail price schedule a household pays for grid energy.
type Tariff struct {
	Operator string     `json:"operator,omitempty" yaml:"operator,omitempty"`
	Type     TariffType `json:"type" yaml:"type"`

	// FlatPLNPerKWh is charged whenever no zone covers the hour.
	FlatPLNPerKWh float64      `json:"flatPLNPerKWh" yaml:"flat_pln_per_kwh"`
	Zones         []TariffZone `json:"zones,omitempty" yaml:"zones,omitempty"`

	// EnergyPLNPerKWh and DistributionPLNPerKWh split the average price into
	// the energy sale and the distribution part (variable distribution plus
	// quality, OZE and cogeneration fees).
	EnergyPLNPerKWh       float64 `json:"energyPLNPerKWh" yaml:"energy_pln_per_kwh"`
	DistributionPLNPerKWh float64 `json:"distributionPLNPerKWh" yaml:"distribution_pln_per_kwh"`
}

// RateAt returns the retail price for an hour of the day on the given weekday.
func (t Tariff) RateAt(hourOfDay int, dow time.Weekday) float64 {
	for _, z := range t.Zones {
		if z.Contains(hourOfDay, dow) {
			return z.PLNPerKWh
		}
	}
	return t.FlatPLNPerKWh
}

// Rate returns the retail price for an hour of the simulated year.
func (t Tariff) Rate(hour int) float64 {
	return t.RateAt(hour%HoursPerDay, WeekdayOfDay(hour/HoursPerDay))
}

// Validate checks that every zone describes a usable hour window.
func (t Tariff) Validate() error {
	if t.FlatPLNPerKWh < 0 {
		return fmt.Errorf("negative flat tariff: %v", t.FlatPLNPerKWh)
	}
	for i, z := range t.Zones {
		if z.HourStart < 0 || z.HourStart > 23 || z.HourEnd < 0 || z.HourEnd > 24 {
			return fmt.Errorf("zone %d: hours must be within 0-24, got %d-%d", i, z.HourStart, z.HourEnd)
		}
		if z.PLNPerKWh < 0 {
			return fmt.Errorf("zone %d: negative price %v", i, z.PLNPerKWh)
		}
	}
	return nil
}

// OperatorInfo provides metadata about a distribution system operator and the
// tariffs it offers.
type OperatorInfo struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Tariffs []TariffOption `json:"tariffs"`
}

// TariffOption describes one tariff of an operator.
type TariffOption struct {
	Type                  TariffType `json:"type"`
	PeakPLNPerKWh         float64    `json:"peakPLNPerKWh"`
	OffPeakPLNPerKWh      float64    `json:"offPeakPLNPerKWh,omitempty"`
	EnergyPLNPerKWh       float64    `json:"energyPLNPerKWh"`
	DistributionPLNPerKWh float64    `json:"distributionPLNPerKWh"`
	TotalPLNPerKWh        float64    `json:"totalPLNPerKWh"`
	FixedMonthlyPLN       float64    `json:"fixedMonthlyPLN"`

	// FixedAnnualPLN includes the capacity fee at a consumption of
	// ReferenceConsumptionKWh per year.
	FixedAnnualPLN          float64 `json:"fixedAnnualPLN"`
	ReferenceConsumptionKWh float64 `json:"referenceConsumptionKWh"`
}
