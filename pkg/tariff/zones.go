package tariff

import (
	"time"

	"github.com/solarquote/solarquote/pkg/types"
)

// Flat returns a single-zone G11 tariff.
func Flat(rate float64) types.Tariff {
	return types.Tariff{
		Type:          types.TariffG11,
		FlatPLNPerKWh: rate,
	}
}

// G12 returns a two-zone tariff that is off-peak from 22:00 to 06:00 and from
// 13:00 to 15:00 every day.
func G12(peak, offPeak float64) types.Tariff {
	return types.Tariff{
		Type:          types.TariffG12,
		FlatPLNPerKWh: peak,
		Zones: []types.TariffZone{
			{HourStart: 22, HourEnd: 6, PLNPerKWh: offPeak, Description: "Night"},
			{HourStart: 13, HourEnd: 15, PLNPerKWh: offPeak, Description: "Afternoon"},
		},
	}
}

// G12W returns a two-zone tariff that is off-peak from 22:00 to 06:00 on
// weekdays and for the whole weekend.
func G12W(peak, offPeak float64) types.Tariff {
	return types.Tariff{
		Type:          types.TariffG12W,
		FlatPLNPerKWh: peak,
		Zones: []types.TariffZone{
			{
				HourStart:     0,
				HourEnd:       24,
				DaysOfTheWeek: []time.Weekday{time.Saturday, time.Sunday},
				PLNPerKWh:     offPeak,
				Description:   "Weekend",
			},
			{HourStart: 22, HourEnd: 6, PLNPerKWh: offPeak, Description: "Night"},
		},
	}
}

// FromRates builds the zone schedule for a tariff type from operator rates
// and attaches its decomposed components.
func FromRates(operator string, tt types.TariffType, r Rates) types.Tariff {
	var t types.Tariff
	switch tt {
	case types.TariffG12:
		t = G12(r.PeakPLNPerKWh(), r.OffPeakPLNPerKWh())
	case types.TariffG12W:
		t = G12W(r.PeakPLNPerKWh(), r.OffPeakPLNPerKWh())
	default:
		t = Flat(r.PeakPLNPerKWh())
	}
	c := r.Decompose(t.Type)
	t.Operator = operator
	t.EnergyPLNPerKWh = c.EnergyPLNPerKWh
	t.DistributionPLNPerKWh = c.DistributionPLNPerKWh
	return t
}
