package scenario

import (
	"fmt"
	"math"

	"github.com/solarquote/solarquote/pkg/types"
)

// Tier is the equipment quality tier of a quote.
type Tier string

const (
	TierPremium  Tier = "premium"
	TierStandard Tier = "standard"
	TierEconomy  Tier = "economy"
)

const (
	minProductionKWh     = 3000
	minSurplusRatio      = 0.2
	dailySurplusShare    = 0.5
	minCapacityKWh       = 5
	maxCapacityKWh       = 20
	justifiedAutoconRate = 0.45
)

// ParseTier returns the tier named by s. An empty string is TierStandard.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(s); t {
	case "":
		return TierStandard, nil
	case TierPremium, TierStandard, TierEconomy:
		return t, nil
	default:
		return "", fmt.Errorf("unknown battery tier: %q", s)
	}
}

// CRate is the battery power per kWh of capacity installed for the tier.
func (t Tier) CRate() float64 {
	switch t {
	case TierPremium:
		return 1.0
	case TierEconomy:
		return 0.5
	default:
		return 0.7
	}
}

// CostPLNPerKWh is the installed battery price per kWh of capacity.
func (t Tier) CostPLNPerKWh() float64 {
	switch t {
	case TierPremium:
		return 3800
	case TierEconomy:
		return 3200
	default:
		return 3500
	}
}

// Model names the battery product offered for the capacity.
func (t Tier) Model(capacityKWh float64) string {
	switch t {
	case TierPremium:
		switch {
		case capacityKWh <= 6:
			return "Huawei LUNA2000 5kWh"
		case capacityKWh <= 11:
			return "BYD Battery-Box HVS 10.2"
		default:
			return "Tesla Powerwall 2 (13.5 kWh)"
		}
	case TierEconomy:
		return fmt.Sprintf("LiFePO4 %d kWh", int(capacityKWh))
	default:
		if capacityKWh <= 6 {
			return "Pylontech US3000C (3.5 kWh)"
		}
		return "Pylontech Force H2 (10.6 kWh)"
	}
}

// Recommendation is a suggested battery for an installation.
type Recommendation struct {
	Tier        Tier    `json:"tier"`
	Model       string  `json:"model"`
	CapacityKWh float64 `json:"capacityKWh"`
	PowerKW     float64 `json:"powerKW"`
	CostPLN     float64 `json:"costPLN"`
	// EconomicallyJustified is false when direct autoconsumption is already
	// high and the battery mostly buys independence.
	EconomicallyJustified bool `json:"economicallyJustified"`
}

// Battery returns the recommended battery with the default efficiency.
func (r Recommendation) Battery() types.Battery {
	return types.NewBattery(r.CapacityKWh, r.PowerKW, 0)
}

// Recommend sizes a battery from a simulation run without one. It returns
// false when the installation is too small or exports too little for a
// battery to be offered.
func Recommend(baseline *types.Result, tier Tier) (Recommendation, bool) {
	production := baseline.EnergyFlow.ProductionKWh
	surplus := baseline.EnergyFlow.SurplusKWh
	if production < minProductionKWh || surplus/production < minSurplusRatio {
		return Recommendation{}, false
	}

	capacity := math.Round(surplus / types.DaysPerYear * dailySurplusShare)
	capacity = max(minCapacityKWh, min(capacity, maxCapacityKWh))
	power := math.Round(capacity*tier.CRate()*2) / 2

	return Recommendation{
		Tier:                  tier,
		Model:                 tier.Model(capacity),
		CapacityKWh:           capacity,
		PowerKW:               power,
		CostPLN:               capacity * tier.CostPLNPerKWh(),
		EconomicallyJustified: baseline.Rates.AutoconsumptionRate <= justifiedAutoconRate,
	}, true
}
