package market

import (
	"math"

	"github.com/solarquote/solarquote/pkg/types"
)

// Statistics summarize a clearing price series.
type Statistics struct {
	Hours int     `json:"hours"`
	Year  int     `json:"year,omitempty"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	// AnnualAvg is the mean over every hour.
	AnnualAvg float64 `json:"annualAvg"`
	// PeakAvg is the mean over 18:00-21:00, OffPeakAvg over 11:00-14:00.
	PeakAvg    float64 `json:"peakAvg"`
	OffPeakAvg float64 `json:"offPeakAvg"`
	Ratio      float64 `json:"ratio"`
}

// Average returns the mean of the series or 0 when it is empty.
func Average(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	var sum float64
	for _, p := range prices {
		sum += p
	}
	return sum / float64(len(prices))
}

// Stats computes Statistics for an hourly series that starts at midnight.
func Stats(prices []float64) Statistics {
	s := Statistics{Hours: len(prices)}
	if len(prices) == 0 {
		return s
	}
	s.Min, s.Max = math.Inf(1), math.Inf(-1)
	var peakSum, offPeakSum float64
	var peakN, offPeakN int
	for i, p := range prices {
		s.Min = min(s.Min, p)
		s.Max = max(s.Max, p)
		switch h := i % types.HoursPerDay; {
		case h >= 18 && h <= 20:
			peakSum += p
			peakN++
		case h >= 11 && h <= 13:
			offPeakSum += p
			offPeakN++
		}
	}
	s.AnnualAvg = round4(Average(prices))
	if peakN > 0 {
		s.PeakAvg = round4(peakSum / float64(peakN))
	}
	if offPeakN > 0 {
		s.OffPeakAvg = round4(offPeakSum / float64(offPeakN))
	}
	if offPeakSum > 0 && peakN > 0 {
		ratio := (peakSum / float64(peakN)) / (offPeakSum / float64(offPeakN))
		s.Ratio = math.Round(ratio*100) / 100
	}
	return s
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
