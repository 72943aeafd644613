package server

import (
	"net/http"
	"strconv"

	"github.com/solarquote/solarquote/pkg/market"
)

func (s *Server) handleListTariffs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.catalog.List())
}

type clearingPricesResponse struct {
	Origin string            `json:"origin"`
	Stats  market.Statistics `json:"stats"`
	Prices []float64         `json:"prices,omitempty"`
}

func (s *Server) handleClearingPrices(w http.ResponseWriter, r *http.Request) {
	resp := clearingPricesResponse{
		Origin: s.prices.Origin(),
		Stats:  s.prices.Stats(),
	}
	if v := r.URL.Query().Get("hourly"); v != "" {
		hourly, err := strconv.ParseBool(v)
		if err != nil {
			writeJSONError(w, "hourly must be a boolean", http.StatusBadRequest)
			return
		}
		if hourly {
			resp.Prices = s.prices.Prices()
		}
	}
	writeJSON(w, resp)
}
