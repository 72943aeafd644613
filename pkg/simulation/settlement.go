package simulation

import "github.com/solarquote/solarquote/pkg/market"

const (
	// forfeitShare of the deposit value of surplus beyond annual consumption
	// is lost; the rest is refunded.
	forfeitShare = 0.8
	refundShare  = 1 - forfeitShare
)

// Settlement is the year-end net-billing deposit account.
type Settlement struct {
	// DepositPLN is the value of all exported energy before the cap.
	DepositPLN float64
	UsedPLN    float64
	LostPLN    float64
	RefundPLN  float64

	UnusedKWh                float64
	AverageClearingPLNPerKWh float64
	EffectiveRatePLNPerKWh   float64
}

// Settle applies the annual cap to the deposit. Surplus beyond the stated
// annual consumption is valued at the mean clearing price and that value is
// split 80% forfeited, 20% refunded. The forfeited amount never exceeds the
// deposit.
func Settle(exportedKWh, depositPLN, annualConsumptionKWh float64, clearing []float64) Settlement {
	s := Settlement{
		DepositPLN:               depositPLN,
		AverageClearingPLNPerKWh: market.Average(clearing),
	}
	if exportedKWh > annualConsumptionKWh {
		s.UnusedKWh = exportedKWh - annualConsumptionKWh
		unusedPLN := s.UnusedKWh * s.AverageClearingPLNPerKWh
		s.LostPLN = min(depositPLN, unusedPLN*forfeitShare)
		s.RefundPLN = unusedPLN * refundShare
	}
	s.UsedPLN = depositPLN - s.LostPLN
	if exportedKWh > 0 {
		s.EffectiveRatePLNPerKWh = s.UsedPLN / exportedKWh
	}
	return s
}
