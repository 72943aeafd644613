package profile

import (
	"math"

	"github.com/solarquote/solarquote/pkg/types"
)

// Production synthesizes an hourly PV production curve for a year that sums
// to annualKWh. Each day is a parabola between 06:00 and 18:00 scaled by a
// sinusoidal season peaking in late June.
func Production(annualKWh float64) []float64 {
	profile := make([]float64, 0, types.HoursPerYear)
	daily := annualKWh / types.DaysPerYear
	for day := 0; day < types.DaysPerYear; day++ {
		seasonal := 0.7 + 0.3*math.Sin(2*math.Pi*float64(day-80)/types.DaysPerYear)
		for h := 0; h < types.HoursPerDay; h++ {
			var hf float64
			if h >= 6 && h <= 18 {
				hf = 4 * float64(h-6) * float64(18-h) / 144
			}
			profile = append(profile, daily*seasonal*hf)
		}
	}
	return Rescale(profile, annualKWh)
}

// Rescale multiplies every value by one factor so the profile sums to
// target. A profile with no positive sum, or a non-positive target, becomes
// all zeros.
func Rescale(profile []float64, target float64) []float64 {
	var sum float64
	for _, v := range profile {
		sum += v
	}
	if sum <= 0 || target <= 0 {
		for i := range profile {
			profile[i] = 0
		}
		return profile
	}
	scale := target / sum
	for i := range profile {
		profile[i] *= scale
	}
	return profile
}

// Sum returns the total of a profile.
func Sum(profile []float64) float64 {
	var sum float64
	for _, v := range profile {
		sum += v
	}
	return sum
}
