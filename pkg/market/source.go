package market

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/levenlabs/go-lflag"
	"github.com/solarquote/solarquote/pkg/common"
	"github.com/solarquote/solarquote/pkg/log"
)

// Source holds the clearing price series used when a request does not carry
// its own.
type Source struct {
	year   int
	origin string
	prices []float64
}

// Configured returns a Source loaded from the file or URL given by flags, or
// synthesized for the configured year when none is given.
func Configured() *Source {
	s := &Source{}

	location := lflag.String("clearing-price-file", "", "CSV file or http(s) URL with 8760 hourly RCEm prices in PLN/kWh (synthetic when empty)")
	year := BaseYear
	lflag.JSON(&year, "clearing-price-year", year, "Year to synthesize RCEm prices for when no file is given")
	timeout := lflag.Duration("clearing-price-timeout", 30*time.Second, "Timeout for fetching the clearing price URL")

	lflag.Do(func() {
		ctx := context.Background()
		s.year = year
		if *location == "" {
			s.origin = "synthetic"
			s.prices = Hourly(year)
			return
		}
		prices, err := Load(ctx, common.HTTPClient(*timeout), *location)
		if err != nil {
			log.Ctx(ctx).Error("failed to load clearing prices", slog.String("location", *location), slog.Any("error", err))
			os.Exit(1)
		}
		s.origin = *location
		s.prices = prices
		log.Ctx(ctx).Info("loaded clearing prices", slog.String("location", *location), slog.Int("hours", len(prices)))
	})
	return s
}

// NewSource returns a Source with a fixed series.
func NewSource(origin string, prices []float64) *Source {
	return &Source{
		origin: origin,
		prices: prices,
	}
}

// Synthetic returns a Source with the synthetic series for year.
func Synthetic(year int) *Source {
	return &Source{
		year:   year,
		origin: "synthetic",
		prices: Hourly(year),
	}
}

// Prices returns a copy of the series.
func (s *Source) Prices() []float64 {
	return slices.Clone(s.prices)
}

// Origin describes where the series came from.
func (s *Source) Origin() string {
	return s.origin
}

// Stats returns statistics of the series.
func (s *Source) Stats() Statistics {
	st := Stats(s.prices)
	st.Year = s.year
	return st
}

// Load reads an hourly series CSV from a local path or an http(s) URL.
func Load(ctx context.Context, client *http.Client, location string) ([]float64, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open series file: %w", err)
		}
		defer f.Close()
		return ReadCSV(f)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch series: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status fetching series: %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return ReadCSV(resp.Body)
}
