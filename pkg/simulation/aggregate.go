package simulation

import (
	"fmt"
	"math"
	"slices"

	"github.com/solarquote/solarquote/pkg/types"
)

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func roundPLN(v float64) float64  { return round(v, 2) }
func roundKWh(v float64) float64  { return round(v, 1) }
func roundRate(v float64) float64 { return round(v, 3) }

func roundMonths(m [types.MonthsPerYear]float64, places int) [types.MonthsPerYear]float64 {
	for i := range m {
		m[i] = round(m[i], places)
	}
	return m
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// chart renders a 24-hour window of the ledger for display.
func chart(records []HourRecord, capacityKWh float64) []types.ChartPoint {
	points := make([]types.ChartPoint, 0, len(records))
	for i, r := range records {
		var soc float64
		if capacityKWh > 0 {
			soc = r.SoCKWh / capacityKWh * 100
		}
		points = append(points, types.ChartPoint{
			Hour:                fmt.Sprintf("%02d:00", i),
			PVKWh:               round(r.ProductionKWh, 3),
			ConsumptionKWh:      round(r.ConsumptionKWh, 3),
			BatteryChargeKWh:    round(r.ChargeKWh, 3),
			BatteryDischargeKWh: round(r.DischargeKWh, 3),
			GridImportKWh:       round(r.GridImportKWh, 3),
			SoCPercent:          round(soc, 1),
		})
	}
	return points
}

func tariffInfo(t types.Tariff, b types.Battery) types.TariffInfo {
	info := types.TariffInfo{
		Operator:              t.Operator,
		Type:                  t.Type,
		FlatPLNPerKWh:         t.FlatPLNPerKWh,
		EnergyPLNPerKWh:       t.EnergyPLNPerKWh,
		DistributionPLNPerKWh: t.DistributionPLNPerKWh,
		Zones:                 t.Zones,
	}
	if sb, ok := b.(types.StorageBattery); ok {
		info.BatteryCapacityKWh = sb.Capacity
		info.BatteryPowerKW = sb.PowerKW
		info.BatteryEfficiency = sb.Efficiency
	}
	return info
}

// aggregate assembles the rounded result of a completed run.
func aggregate(in stepInput, l *Ledger, s Settlement) *types.Result {
	batteryBenefit := l.BatteryDischargeBenefitPLN - l.BatteryOpportunityCostPLN
	internal := l.AutoconsumptionKWh + l.DischargedKWh

	// used is derived from the rounded deposit and loss so the published
	// ledger balances to the grosz
	deposit := roundPLN(s.DepositPLN)
	lost := roundPLN(s.LostPLN)
	used := roundPLN(deposit - lost)

	soc := make([]float64, len(l.Hours))
	for i, r := range l.Hours {
		soc[i] = round(r.SoCKWh, 4)
	}

	res := &types.Result{
		AnnualCashflow: types.Cashflow{
			AutoconsumptionPLN:         roundPLN(l.AutoconsumptionPLN),
			NetBillingPLN:              used,
			BatteryBenefitPLN:          roundPLN(batteryBenefit),
			BatteryDischargeBenefitPLN: roundPLN(l.BatteryDischargeBenefitPLN),
			BatteryOpportunityCostPLN:  roundPLN(l.BatteryOpportunityCostPLN),
			LostDepositPLN:             lost,
			RefundPLN:                  roundPLN(s.RefundPLN),
			DistributionCostPLN:        roundPLN(l.GridImportKWh * in.tariff.DistributionPLNPerKWh),
			GridImportCostPLN:          roundPLN(l.GridImportCostPLN),
			NetPLN:                     roundPLN(l.AutoconsumptionPLN + used + batteryBenefit),
		},
		EnergyFlow: types.EnergyFlow{
			ProductionKWh:        roundKWh(l.ProductionKWh),
			ConsumptionKWh:       roundKWh(l.ConsumptionKWh),
			AutoconsumptionKWh:   roundKWh(l.AutoconsumptionKWh),
			SurplusKWh:           roundKWh(l.ExportedKWh),
			GridImportKWh:        roundKWh(l.GridImportKWh),
			BatteryChargedKWh:    roundKWh(l.ChargedKWh),
			BatteryDischargedKWh: roundKWh(l.DischargedKWh),
			InternalUsageKWh:     roundKWh(internal),
			Monthly: types.MonthlyEnergy{
				ProductionKWh:      roundMonths(l.Monthly.ProductionKWh, 1),
				ConsumptionKWh:     roundMonths(l.Monthly.ConsumptionKWh, 1),
				AutoconsumptionKWh: roundMonths(l.Monthly.AutoconsumptionKWh, 1),
				SurplusKWh:         roundMonths(l.Monthly.SurplusKWh, 1),
				GridImportKWh:      roundMonths(l.Monthly.GridImportKWh, 1),
			},
			ProductionProfile:  slices.Clone(in.production),
			ConsumptionProfile: slices.Clone(in.consumption),
			SoCProfile:         soc,
		},
		Rates: types.Rates{
			AutoconsumptionRate: roundRate(ratio(internal, l.ProductionKWh)),
			SelfSufficiencyRate: roundRate(ratio(internal, l.ConsumptionKWh)),
		},
		NetBilling: types.NetBillingLedger{
			MonthlySurplusKWh:             roundMonths(l.MonthlyExportedKWh, 1),
			MonthlyDepositPLN:             roundMonths(l.MonthlyDepositPLN, 2),
			AnnualDepositPLN:              deposit,
			AnnualDepositUsedPLN:          used,
			AnnualDepositLostPLN:          lost,
			RefundPLN:                     roundPLN(s.RefundPLN),
			UnusedSurplusKWh:              roundKWh(s.UnusedKWh),
			AverageClearingPricePLNPerKWh: round(s.AverageClearingPLNPerKWh, 4),
			EffectiveRatePLNPerKWh:        roundRate(s.EffectiveRatePLNPerKWh),
		},
		TariffInfo: tariffInfo(in.tariff, in.battery),
		SeasonalCharts: types.SeasonalCharts{
			Summer: chart(l.window(SummerChartStart), in.battery.CapacityKWh()),
			Winter: chart(l.window(WinterChartStart), in.battery.CapacityKWh()),
		},
	}
	return res
}

// emptyResult is the result for an installation that produces nothing. The
// household's whole demand is met by the grid and every value and ratio is
// zero.
func emptyResult(in stepInput) *types.Result {
	var monthly [types.MonthsPerYear]float64
	var consumption float64
	for h, v := range in.consumption {
		monthly[types.MonthOfHour(h)] += v
		consumption += v
	}
	monthly = roundMonths(monthly, 1)

	return &types.Result{
		EnergyFlow: types.EnergyFlow{
			ConsumptionKWh: roundKWh(consumption),
			GridImportKWh:  roundKWh(consumption),
			Monthly: types.MonthlyEnergy{
				ConsumptionKWh: monthly,
				GridImportKWh:  monthly,
			},
			ProductionProfile:  make([]float64, types.HoursPerYear),
			ConsumptionProfile: slices.Clone(in.consumption),
			SoCProfile:         make([]float64, types.HoursPerYear),
		},
		TariffInfo: tariffInfo(in.tariff, in.battery),
		SeasonalCharts: types.SeasonalCharts{
			Summer: []types.ChartPoint{},
			Winter: []types.ChartPoint{},
		},
	}
}
