package market

import (
	"math"

	"github.com/solarquote/solarquote/pkg/types"
)

const (
	// BaseYear is the year the monthly averages were published for.
	BaseYear = 2025

	inflationRate = 0.04
	minPrice      = 0.01
)

// MonthlyRCEm2025 are the monthly average market clearing prices (RCEm) in
// PLN/kWh, January first.
var MonthlyRCEm2025 = [types.MonthsPerYear]float64{
	0.320, 0.310, 0.295, 0.275, 0.250, 0.235,
	0.230, 0.240, 0.260, 0.280, 0.300, 0.315,
}

// HourlyProfile scales the monthly average for each hour of the day. Midday
// prices collapse under PV output and the evening peak is the most valuable.
var HourlyProfile = [types.HoursPerDay]float64{
	0.92, 0.88, 0.85, 0.84, 0.86, 0.92,
	1.10, 1.22, 1.18, 1.08, 0.88, 0.58,
	0.48, 0.52, 0.68, 0.92, 1.12, 1.32,
	1.48, 1.55, 1.45, 1.28, 1.12, 1.02,
}

// Monthly returns the monthly averages for year, grown by 4% a year from
// BaseYear.
func Monthly(year int) [types.MonthsPerYear]float64 {
	if year == BaseYear {
		return MonthlyRCEm2025
	}
	var out [types.MonthsPerYear]float64
	f := math.Pow(1+inflationRate, float64(year-BaseYear))
	for i, p := range MonthlyRCEm2025 {
		out[i] = p * f
	}
	return out
}

// Hourly synthesizes an 8760-hour clearing price series for year. Hours 11
// through 14 are further depressed in summer and lifted in winter.
func Hourly(year int) []float64 {
	monthly := Monthly(year)
	prices := make([]float64, 0, types.HoursPerYear)
	for day := 0; day < types.DaysPerYear; day++ {
		avg := monthly[types.MonthOfDay(day)]
		midday := 1 - 0.1*math.Sin(2*math.Pi*float64(day-80)/types.DaysPerYear)
		for h := 0; h < types.HoursPerDay; h++ {
			factor := HourlyProfile[h]
			if h >= 11 && h <= 14 {
				factor *= midday
			}
			p := max(minPrice, avg*factor)
			prices = append(prices, math.Round(p*1e4)/1e4)
		}
	}
	return prices
}
