package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/solarquote/solarquote/pkg/log"
	"github.com/solarquote/solarquote/pkg/scenario"
	"github.com/solarquote/solarquote/pkg/simulation"
	"github.com/solarquote/solarquote/pkg/types"
)

// simulateRequest is the body of /api/simulate and /api/compare.
type simulateRequest struct {
	AnnualProductionKWh  float64 `json:"annualProductionKWh"`
	AnnualConsumptionKWh float64 `json:"annualConsumptionKWh"`

	// Operator and TariffType select a catalog tariff. Tariff overrides both.
	Operator   string           `json:"operator"`
	TariffType types.TariffType `json:"tariffType"`
	Tariff     *types.Tariff    `json:"tariff"`

	// ClearingPrices default to the server's configured series.
	ClearingPrices     []float64 `json:"clearingPrices"`
	ProductionProfile  []float64 `json:"productionProfile"`
	ConsumptionProfile []float64 `json:"consumptionProfile"`

	Battery     *types.BatteryConfig `json:"battery"`
	BatteryTier string               `json:"batteryTier"`
	Household   types.Household      `json:"household"`
}

// input adapts the request into a simulation input. The returned error is
// always the caller's fault.
func (s *Server) input(req simulateRequest) (simulation.Input, error) {
	if req.Battery != nil && req.Battery.Efficiency > 1 {
		return simulation.Input{}, fmt.Errorf("%w: battery efficiency %v is above 1", simulation.ErrInvalidInput, req.Battery.Efficiency)
	}
	in := simulation.Input{
		AnnualProductionKWh:  req.AnnualProductionKWh,
		AnnualConsumptionKWh: req.AnnualConsumptionKWh,
		ClearingPrices:       req.ClearingPrices,
		ProductionProfile:    req.ProductionProfile,
		ConsumptionProfile:   req.ConsumptionProfile,
		Battery:              req.Battery.Battery(),
		Household:            req.Household,
	}
	if req.Tariff != nil {
		in.Tariff = *req.Tariff
	} else {
		in.Tariff = s.catalog.Lookup(req.Operator, req.TariffType)
	}
	if in.ClearingPrices == nil {
		in.ClearingPrices = s.prices.Prices()
	}
	return in, nil
}

func (s *Server) decodeSimulateRequest(w http.ResponseWriter, r *http.Request) (simulation.Input, simulateRequest, bool) {
	ctx := r.Context()

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode simulate request", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return simulation.Input{}, req, false
	}
	in, err := s.input(req)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return simulation.Input{}, req, false
	}
	return in, req, true
}

// writeSimulationError maps a simulation error to a response and returns the
// metrics result label.
func writeSimulationError(w http.ResponseWriter, r *http.Request, err error) string {
	ctx := r.Context()
	if errors.Is(err, simulation.ErrInvalidInput) {
		log.Ctx(ctx).InfoContext(ctx, "rejected simulation input", slog.Any("error", err))
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return resultInvalid
	}
	log.Ctx(ctx).ErrorContext(ctx, "failed to run simulation", slog.Any("error", err))
	writeJSONError(w, "failed to run simulation", http.StatusInternalServerError)
	return resultError
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	in, _, ok := s.decodeSimulateRequest(w, r)
	if !ok {
		observeSimulation(kindSimulate, resultInvalid, time.Since(start))
		return
	}

	res, err := simulation.Run(ctx, in)
	if err != nil {
		observeSimulation(kindSimulate, writeSimulationError(w, r, err), time.Since(start))
		return
	}
	observeSimulation(kindSimulate, resultSuccess, time.Since(start))
	writeJSON(w, res)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	in, req, ok := s.decodeSimulateRequest(w, r)
	if !ok {
		observeSimulation(kindCompare, resultInvalid, time.Since(start))
		return
	}
	tier := s.tier
	if req.BatteryTier != "" {
		var err error
		if tier, err = scenario.ParseTier(req.BatteryTier); err != nil {
			observeSimulation(kindCompare, resultInvalid, time.Since(start))
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	c, err := scenario.Compare(ctx, in, tier)
	if err != nil {
		observeSimulation(kindCompare, writeSimulationError(w, r, err), time.Since(start))
		return
	}
	observeSimulation(kindCompare, resultSuccess, time.Since(start))
	writeJSON(w, c)
}
