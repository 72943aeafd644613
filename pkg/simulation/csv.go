package simulation

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes one row per simulated hour.
func (l *Ledger) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{
		"hour",
		"production_kwh",
		"consumption_kwh",
		"tariff_pln_per_kwh",
		"clearing_pln_per_kwh",
		"autoconsumption_kwh",
		"surplus_kwh",
		"grid_import_kwh",
		"charge_kwh",
		"discharge_kwh",
		"soc_kwh",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range l.Hours {
		row := []string{
			strconv.Itoa(r.Hour),
			fmtFloat(r.ProductionKWh),
			fmtFloat(r.ConsumptionKWh),
			fmtFloat(r.TariffPLNPerKWh),
			fmtFloat(r.ClearingPLNPerKWh),
			fmtFloat(r.AutoconsumptionKWh),
			fmtFloat(r.SurplusKWh),
			fmtFloat(r.GridImportKWh),
			fmtFloat(r.ChargeKWh),
			fmtFloat(r.DischargeKWh),
			fmtFloat(r.SoCKWh),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
