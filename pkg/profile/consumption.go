package profile

import "github.com/solarquote/solarquote/pkg/types"

// BaseLoadKW is the constant background draw of a household (fridge,
// standby).
const BaseLoadKW = 0.15

var (
	// heatingShare is the share of the annual heating budget spent in each
	// calendar month.
	heatingShare = [types.MonthsPerYear]float64{0.19, 0.16, 0.13, 0.07, 0.02, 0, 0, 0, 0.02, 0.08, 0.14, 0.19}
	// coolingShare is the share of the annual cooling budget spent in each
	// calendar month.
	coolingShare = [types.MonthsPerYear]float64{0, 0, 0, 0, 0.10, 0.25, 0.35, 0.25, 0.05, 0, 0, 0}

	// atHomeWeights is the hourly activity of one occupant who stays home.
	atHomeWeights = [types.HoursPerDay]float64{
		0, 0, 0, 0, 0, 0, 0.8, 1.5, 1.2, 1.0, 2.5, 3.5,
		3.0, 2.5, 2.0, 1.5, 2.5, 4.0, 5.0, 4.5, 3.0, 1.5, 0.5, 0,
	}
	// awayWeights is the hourly activity of one occupant who is out during the
	// working day.
	awayWeights = [types.HoursPerDay]float64{
		0, 0, 0, 0, 0, 0, 1.5, 2.0, 0.2, 0, 0, 0,
		0, 0, 0, 0, 2.5, 4.5, 5.5, 4.5, 3.0, 1.5, 0.5, 0,
	}
)

// activityWeight is the combined activity of the household for an hour.
func activityWeight(day, hour, people, homeWeekday int) float64 {
	if types.IsWeekend(day) {
		return float64(people) * atHomeWeights[hour]
	}
	return float64(homeWeekday)*atHomeWeights[hour] + float64(people-homeWeekday)*awayWeights[hour]
}

// heatingHourShare splits a day's heating: 35% over 09:00-17:00, the rest
// over the other 16 hours.
func heatingHourShare(hour int) float64 {
	if hour >= 9 && hour <= 16 {
		return 0.35 / 8
	}
	return 0.65 / 16
}

// coolingHourShare splits a day's cooling: 80% over 12:00-19:00, the rest
// over the other 17 hours.
func coolingHourShare(hour int) float64 {
	if hour >= 12 && hour <= 18 {
		return 0.8 / 7
	}
	return 0.2 / 17
}

// Consumption synthesizes an hourly household demand curve for a year that
// sums to annualKWh. The non-thermal budget is spread by occupancy, with a
// constant baseload underneath, and the heating and cooling budgets follow
// their monthly and intra-day shapes.
func Consumption(annualKWh float64, household types.Household) []float64 {
	people, homeWeekday := household.Occupancy()
	heating := max(0, household.HeatingKWh)
	cooling := max(0, household.CoolingKWh)

	baseTotal := max(0, annualKWh-heating-cooling)
	activityTotal := max(0, baseTotal-types.HoursPerYear*BaseLoadKW)

	var weightSum float64
	for day := 0; day < types.DaysPerYear; day++ {
		for h := 0; h < types.HoursPerDay; h++ {
			weightSum += activityWeight(day, h, people, homeWeekday)
		}
	}
	var perWeight float64
	if weightSum > 0 {
		perWeight = activityTotal / weightSum
	}

	profile := make([]float64, 0, types.HoursPerYear)
	for day := 0; day < types.DaysPerYear; day++ {
		month := types.MonthOfDay(day)
		days := float64(types.DaysPerMonth[month])
		dayHeat := heating * heatingShare[month] / days
		dayCool := cooling * coolingShare[month] / days

		for h := 0; h < types.HoursPerDay; h++ {
			v := BaseLoadKW + activityWeight(day, h, people, homeWeekday)*perWeight
			v += dayHeat * heatingHourShare(h)
			v += dayCool * coolingHourShare(h)
			profile = append(profile, v)
		}
	}
	return Rescale(profile, annualKWh)
}
