package tariff

import (
	"math"

	"github.com/solarquote/solarquote/pkg/types"
)

// peakWeight is the share of household consumption assumed to fall in the
// peak zone of a two-zone tariff when averaging it into one price.
const peakWeight = 0.6

// CapacityFeeTier is an annual capacity fee charged when annual consumption
// is at most MaxKWh.
type CapacityFeeTier struct {
	MaxKWh    float64
	AnnualPLN float64
}

// Rates are the published per-kWh and fixed components of one operator
// tariff. Single-zone tariffs only set the peak fields.
type Rates struct {
	EnergyPeak          float64
	EnergyOffPeak       float64
	DistributionPeak    float64
	DistributionOffPeak float64

	QualityFee      float64
	OZEFee          float64
	CogenerationFee float64

	NetworkFixedMonthlyPLN float64
	SubscriptionMonthlyPLN float64
	CapacityFeeTiers       []CapacityFeeTier
}

// Components is a tariff split into what the net-billing deposit can pay for
// (energy) and what is always paid in cash (distribution and fees).
type Components struct {
	EnergyPLNPerKWh       float64
	DistributionPLNPerKWh float64
	TotalPLNPerKWh        float64
}

// OtherFees is the sum of the quality, OZE and cogeneration fees.
func (r Rates) OtherFees() float64 {
	return r.QualityFee + r.OZEFee + r.CogenerationFee
}

// PeakPLNPerKWh is the full variable price in the peak zone, or the only zone
// of a single-zone tariff.
func (r Rates) PeakPLNPerKWh() float64 {
	return r.EnergyPeak + r.DistributionPeak + r.OtherFees()
}

// OffPeakPLNPerKWh is the full variable price in the off-peak zone.
func (r Rates) OffPeakPLNPerKWh() float64 {
	return r.EnergyOffPeak + r.DistributionOffPeak + r.OtherFees()
}

// Decompose splits the tariff into energy and distribution components.
// Two-zone tariffs are averaged with a 60/40 peak/off-peak weighting.
func (r Rates) Decompose(tt types.TariffType) Components {
	energy, dist := r.EnergyPeak, r.DistributionPeak
	if tt != types.TariffG11 {
		energy = peakWeight*r.EnergyPeak + (1-peakWeight)*r.EnergyOffPeak
		dist = peakWeight*r.DistributionPeak + (1-peakWeight)*r.DistributionOffPeak
	}
	fees := r.OtherFees()
	return Components{
		EnergyPLNPerKWh:       round4(energy),
		DistributionPLNPerKWh: round4(dist + fees),
		TotalPLNPerKWh:        round4(energy + dist + fees),
	}
}

// AnnualFixedPLN is the yearly sum of the network and subscription fees and
// the capacity fee tier matching the annual consumption.
func (r Rates) AnnualFixedPLN(annualConsumptionKWh float64) float64 {
	total := 12 * (r.NetworkFixedMonthlyPLN + r.SubscriptionMonthlyPLN)
	for _, tier := range r.CapacityFeeTiers {
		if annualConsumptionKWh <= tier.MaxKWh {
			total += tier.AnnualPLN
			break
		}
	}
	return math.Round(total*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

var (
	pgeCapacityFees = []CapacityFeeTier{
		{MaxKWh: 500, AnnualPLN: 28.56},
		{MaxKWh: 1200, AnnualPLN: 68.52},
		{MaxKWh: 2800, AnnualPLN: 114.24},
		{MaxKWh: math.Inf(1), AnnualPLN: 163.56},
	}
	standardCapacityFees = []CapacityFeeTier{
		{MaxKWh: 500, AnnualPLN: 51.48},
		{MaxKWh: 1200, AnnualPLN: 123.72},
		{MaxKWh: 2800, AnnualPLN: 206.16},
		{MaxKWh: math.Inf(1), AnnualPLN: 288.60},
	}
)

// withFees fills in the variable fees shared by every operator.
func withFees(r Rates) Rates {
	r.QualityFee = 0.0407
	r.OZEFee = 0.0090
	r.CogenerationFee = 0.0037
	return r
}

// operatorRates are the 2025 published tariffs of the Polish distribution
// system operators, net of fixed fees.
var operatorRates = map[string]map[types.TariffType]Rates{
	"pge": {
		types.TariffG11: withFees(Rates{
			EnergyPeak: 0.6189, DistributionPeak: 0.4267,
			NetworkFixedMonthlyPLN: 12.28, SubscriptionMonthlyPLN: 8.31,
			CapacityFeeTiers: pgeCapacityFees,
		}),
	},
	"tauron": {
		types.TariffG11: withFees(Rates{
			EnergyPeak: 0.6113, DistributionPeak: 0.3690,
			NetworkFixedMonthlyPLN: 13.36, SubscriptionMonthlyPLN: 5.60,
			CapacityFeeTiers: standardCapacityFees,
		}),
		types.TariffG12: withFees(Rates{
			EnergyPeak: 0.8241, EnergyOffPeak: 0.6273,
			DistributionPeak: 0.4305, DistributionOffPeak: 0.0861,
			NetworkFixedMonthlyPLN: 13.36, SubscriptionMonthlyPLN: 5.60,
			CapacityFeeTiers: standardCapacityFees,
		}),
		types.TariffG12W: withFees(Rates{
			EnergyPeak: 0.9471, EnergyOffPeak: 0.6273,
			DistributionPeak: 0.5043, DistributionOffPeak: 0.0738,
			NetworkFixedMonthlyPLN: 13.36, SubscriptionMonthlyPLN: 5.60,
			CapacityFeeTiers: standardCapacityFees,
		}),
	},
	"enea": {
		types.TariffG11: withFees(Rates{
			EnergyPeak: 0.6187, DistributionPeak: 0.3613,
			NetworkFixedMonthlyPLN: 12.80, SubscriptionMonthlyPLN: 4.72,
			CapacityFeeTiers: standardCapacityFees,
		}),
		types.TariffG12: withFees(Rates{
			EnergyPeak: 0.8856, EnergyOffPeak: 0.5166,
			DistributionPeak: 0.4182, DistributionOffPeak: 0.1353,
			NetworkFixedMonthlyPLN: 17.90, SubscriptionMonthlyPLN: 4.72,
			CapacityFeeTiers: standardCapacityFees,
		}),
		types.TariffG12W: withFees(Rates{
			EnergyPeak: 0.9963, EnergyOffPeak: 0.5289,
			DistributionPeak: 0.4059, DistributionOffPeak: 0.1230,
			NetworkFixedMonthlyPLN: 32.30, SubscriptionMonthlyPLN: 4.72,
			CapacityFeeTiers: standardCapacityFees,
		}),
	},
	"energa": {
		types.TariffG11: withFees(Rates{
			EnergyPeak: 0.6200, DistributionPeak: 0.5289,
			NetworkFixedMonthlyPLN: 14.50, SubscriptionMonthlyPLN: 5.71,
			CapacityFeeTiers: standardCapacityFees,
		}),
		types.TariffG12: withFees(Rates{
			EnergyPeak: 0.8856, EnergyOffPeak: 0.5781,
			DistributionPeak: 0.6519, DistributionOffPeak: 0.1845,
			NetworkFixedMonthlyPLN: 24.80, SubscriptionMonthlyPLN: 5.71,
			CapacityFeeTiers: standardCapacityFees,
		}),
		types.TariffG12W: withFees(Rates{
			EnergyPeak: 0.9225, EnergyOffPeak: 0.6027,
			DistributionPeak: 0.6765, DistributionOffPeak: 0.1968,
			NetworkFixedMonthlyPLN: 24.80, SubscriptionMonthlyPLN: 5.71,
			CapacityFeeTiers: standardCapacityFees,
		}),
	},
	"eon": {
		types.TariffG11: withFees(Rates{
			EnergyPeak: 0.6210, DistributionPeak: 0.3545,
			NetworkFixedMonthlyPLN: 22.80, SubscriptionMonthlyPLN: 3.50,
			CapacityFeeTiers: standardCapacityFees,
		}),
		types.TariffG12: withFees(Rates{
			EnergyPeak: 0.7425, EnergyOffPeak: 0.6120,
			DistributionPeak: 0.3850, DistributionOffPeak: 0.1156,
			NetworkFixedMonthlyPLN: 22.80, SubscriptionMonthlyPLN: 3.50,
			CapacityFeeTiers: standardCapacityFees,
		}),
		types.TariffG12W: withFees(Rates{
			EnergyPeak: 0.7995, EnergyOffPeak: 0.6765,
			DistributionPeak: 0.3888, DistributionOffPeak: 0.1632,
			NetworkFixedMonthlyPLN: 22.80, SubscriptionMonthlyPLN: 3.50,
			CapacityFeeTiers: standardCapacityFees,
		}),
	},
}
