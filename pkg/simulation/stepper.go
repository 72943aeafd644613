package simulation

import "github.com/solarquote/solarquote/pkg/types"

const (
	// SummerChartStart is the first hour of the representative summer day
	// (17 June).
	SummerChartStart = 4032
	// WinterChartStart is the first hour of the representative winter day
	// (15 January).
	WinterChartStart = 336
)

// HourRecord is one simulated hour.
type HourRecord struct {
	Hour              int
	ProductionKWh     float64
	ConsumptionKWh    float64
	TariffPLNPerKWh   float64
	ClearingPLNPerKWh float64

	Flow
	SoCKWh float64
}

// Ledger accumulates the hourly records of a simulated year and their
// running totals.
type Ledger struct {
	Hours []HourRecord

	ProductionKWh      float64
	ConsumptionKWh     float64
	AutoconsumptionKWh float64
	ExportedKWh        float64
	GridImportKWh      float64
	ChargedKWh         float64
	DischargedKWh      float64

	AutoconsumptionPLN         float64
	ExportPLN                  float64
	GridImportCostPLN          float64
	BatteryDischargeBenefitPLN float64
	BatteryOpportunityCostPLN  float64

	// Monthly is bucketed by calendar month. Its SurplusKWh is the gross
	// surplus before charging.
	Monthly types.MonthlyEnergy
	// MonthlyExportedKWh and MonthlyDepositPLN are the net-billing deposit
	// inflows per calendar month.
	MonthlyExportedKWh [types.MonthsPerYear]float64
	MonthlyDepositPLN  [types.MonthsPerYear]float64
}

// stepInput is the validated, fully populated input of one run.
type stepInput struct {
	production  []float64
	consumption []float64
	clearing    []float64
	tariff      types.Tariff
	battery     types.Battery
}

// step runs the hourly energy balance for the whole year. Each hour depends
// on the battery state left by the previous one.
func step(in stepInput) *Ledger {
	l := &Ledger{Hours: make([]HourRecord, 0, types.HoursPerYear)}
	state := BatteryState{Battery: in.battery}
	for h := 0; h < types.HoursPerYear; h++ {
		rec := HourRecord{
			Hour:              h,
			ProductionKWh:     in.production[h],
			ConsumptionKWh:    in.consumption[h],
			TariffPLNPerKWh:   in.tariff.Rate(h),
			ClearingPLNPerKWh: in.clearing[h],
		}
		rec.Flow, state = Dispatch(state, rec.ProductionKWh, rec.ConsumptionKWh)
		rec.SoCKWh = state.SoCKWh
		l.add(rec)
	}
	return l
}

func (l *Ledger) add(rec HourRecord) {
	l.Hours = append(l.Hours, rec)

	l.ProductionKWh += rec.ProductionKWh
	l.ConsumptionKWh += rec.ConsumptionKWh
	l.AutoconsumptionKWh += rec.AutoconsumptionKWh
	l.ExportedKWh += rec.SurplusKWh
	l.GridImportKWh += rec.GridImportKWh
	l.ChargedKWh += rec.ChargeKWh
	l.DischargedKWh += rec.DischargeKWh

	exportPLN := rec.SurplusKWh * rec.ClearingPLNPerKWh
	l.AutoconsumptionPLN += rec.AutoconsumptionKWh * rec.TariffPLNPerKWh
	l.ExportPLN += exportPLN
	l.GridImportCostPLN += rec.GridImportKWh * rec.TariffPLNPerKWh
	l.BatteryDischargeBenefitPLN += rec.DischargeKWh * rec.TariffPLNPerKWh
	l.BatteryOpportunityCostPLN += rec.ChargeKWh * rec.ClearingPLNPerKWh

	m := types.MonthOfHour(rec.Hour)
	l.Monthly.ProductionKWh[m] += rec.ProductionKWh
	l.Monthly.ConsumptionKWh[m] += rec.ConsumptionKWh
	l.Monthly.AutoconsumptionKWh[m] += rec.AutoconsumptionKWh
	l.Monthly.SurplusKWh[m] += max(0, rec.ProductionKWh-rec.ConsumptionKWh)
	l.Monthly.GridImportKWh[m] += rec.GridImportKWh
	l.MonthlyExportedKWh[m] += rec.SurplusKWh
	l.MonthlyDepositPLN[m] += exportPLN
}

// window returns the records of the 24 hours starting at start.
func (l *Ledger) window(start int) []HourRecord {
	if start < 0 || start+types.HoursPerDay > len(l.Hours) {
		return nil
	}
	return l.Hours[start : start+types.HoursPerDay]
}
