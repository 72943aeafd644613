package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/solarquote/solarquote/pkg/common"
	"github.com/solarquote/solarquote/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourly(t *testing.T) {
	prices := Hourly(BaseYear)
	require.Len(t, prices, types.HoursPerYear)

	t.Run("Profile", func(t *testing.T) {
		assert.InDelta(t, 0.2944, prices[0], 1e-9)
		assert.InDelta(t, 0.496, prices[19], 1e-9)
		// last day of January is still January
		assert.InDelta(t, 0.2944, prices[30*24], 1e-9)
		assert.InDelta(t, 0.2852, prices[31*24], 1e-9)
	})

	t.Run("Midday Cannibalisation", func(t *testing.T) {
		for day := 0; day < types.DaysPerYear; day++ {
			assert.Less(t, prices[day*24+12], prices[day*24+19], "day %d", day)
		}
		// midday is lower in July than in January relative to the monthly average
		july := 190
		janRatio := prices[12] / MonthlyRCEm2025[0]
		julyRatio := prices[july*24+12] / MonthlyRCEm2025[6]
		assert.Less(t, julyRatio, janRatio)
	})

	t.Run("Floor", func(t *testing.T) {
		for i, p := range prices {
			assert.GreaterOrEqual(t, p, minPrice, "hour %d", i)
		}
	})

	t.Run("Inflation", func(t *testing.T) {
		next := Monthly(BaseYear + 1)
		assert.InDelta(t, 0.320*1.04, next[0], 1e-9)
		assert.Equal(t, MonthlyRCEm2025, Monthly(BaseYear))
	})
}

func TestStats(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, Statistics{}, Stats(nil))
		assert.Zero(t, Average(nil))
	})

	t.Run("Synthetic", func(t *testing.T) {
		s := Stats(Hourly(BaseYear))
		assert.Equal(t, types.HoursPerYear, s.Hours)
		assert.Greater(t, s.PeakAvg, s.AnnualAvg)
		assert.Less(t, s.OffPeakAvg, s.AnnualAvg)
		assert.Greater(t, s.Ratio, 2.0)
		assert.LessOrEqual(t, s.Min, s.OffPeakAvg)
		assert.GreaterOrEqual(t, s.Max, s.PeakAvg)
	})

	t.Run("Constant", func(t *testing.T) {
		prices := make([]float64, 48)
		for i := range prices {
			prices[i] = 0.3
		}
		s := Stats(prices)
		assert.InDelta(t, 0.3, s.AnnualAvg, 1e-9)
		assert.InDelta(t, 0.3, s.PeakAvg, 1e-9)
		assert.InDelta(t, 1.0, s.Ratio, 1e-9)
	})
}

func csvSeries(header bool, twoColumns bool, n int) string {
	var b strings.Builder
	if header {
		if twoColumns {
			b.WriteString("hour,price\n")
		} else {
			b.WriteString("price\n")
		}
	}
	for i := 0; i < n; i++ {
		if twoColumns {
			fmt.Fprintf(&b, "%d,%.4f\n", i, 0.25)
		} else {
			fmt.Fprintf(&b, "%.4f\n", 0.25)
		}
	}
	return b.String()
}

func TestReadCSV(t *testing.T) {
	t.Run("Single Column", func(t *testing.T) {
		prices, err := ReadCSV(strings.NewReader(csvSeries(false, false, types.HoursPerYear)))
		require.NoError(t, err)
		assert.Len(t, prices, types.HoursPerYear)
		assert.Equal(t, 0.25, prices[100])
	})

	t.Run("Header And Two Columns", func(t *testing.T) {
		prices, err := ReadCSV(strings.NewReader(csvSeries(true, true, types.HoursPerYear)))
		require.NoError(t, err)
		assert.Len(t, prices, types.HoursPerYear)
	})

	t.Run("Wrong Length", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(csvSeries(true, false, 100)))
		assert.ErrorIs(t, err, ErrWrongLength)
	})

	t.Run("Bad Value", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("0.1\nabc\n"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrWrongLength)
	})

	for _, v := range []string{"NaN", "Inf", "-Inf", "+infinity"} {
		t.Run("Non Finite "+v, func(t *testing.T) {
			lines := strings.Split(csvSeries(true, true, types.HoursPerYear), "\n")
			lines[50] = "49," + v
			_, err := ReadCSV(strings.NewReader(strings.Join(lines, "\n")))
			assert.ErrorIs(t, err, ErrNonFinite)
			assert.Contains(t, err.Error(), "line 51")
		})
	}

	t.Run("Non Finite First Row", func(t *testing.T) {
		lines := strings.Split(csvSeries(false, false, types.HoursPerYear), "\n")
		lines[0] = "NaN"
		_, err := ReadCSV(strings.NewReader(strings.Join(lines, "\n")))
		assert.ErrorIs(t, err, ErrNonFinite)
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	client := common.HTTPClient(5 * time.Second)

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rcem.csv")
		require.NoError(t, os.WriteFile(path, []byte(csvSeries(true, false, types.HoursPerYear)), 0o600))
		prices, err := Load(ctx, client, path)
		require.NoError(t, err)
		assert.Len(t, prices, types.HoursPerYear)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := Load(ctx, client, filepath.Join(t.TempDir(), "missing.csv"))
		assert.Error(t, err)
	})

	t.Run("URL", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(csvSeries(false, true, types.HoursPerYear)))
		}))
		defer srv.Close()

		prices, err := Load(ctx, client, srv.URL)
		require.NoError(t, err)
		assert.Len(t, prices, types.HoursPerYear)
	})

	t.Run("URL Error Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := Load(ctx, client, srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}

func TestSource(t *testing.T) {
	s := Synthetic(BaseYear)
	assert.Equal(t, "synthetic", s.Origin())
	assert.Equal(t, BaseYear, s.Stats().Year)

	prices := s.Prices()
	prices[0] = 99
	assert.NotEqual(t, 99.0, s.Prices()[0], "Prices must return a copy")

	fixed := NewSource("test", []float64{0.1, 0.2})
	assert.Equal(t, "test", fixed.Origin())
	assert.InDelta(t, 0.15, fixed.Stats().AnnualAvg, 1e-9)
}
