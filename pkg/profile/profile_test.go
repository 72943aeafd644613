package profile

import (
	"testing"

	"github.com/solarquote/solarquote/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthTotal(profile []float64, month int) float64 {
	var sum float64
	for h, v := range profile {
		if types.MonthOfHour(h) == month {
			sum += v
		}
	}
	return sum
}

func TestProduction(t *testing.T) {
	t.Run("Sums To Target", func(t *testing.T) {
		for _, target := range []float64{1, 4500, 12000.5} {
			p := Production(target)
			require.Len(t, p, types.HoursPerYear)
			assert.InDelta(t, target, Sum(p), 1.0)
		}
	})

	t.Run("Night Is Dark", func(t *testing.T) {
		p := Production(5000)
		for day := 0; day < types.DaysPerYear; day++ {
			for _, h := range []int{0, 3, 5, 6, 18, 19, 23} {
				assert.Zero(t, p[day*24+h], "day %d hour %d", day, h)
			}
		}
		assert.Greater(t, p[12], p[9])
	})

	t.Run("Summer Beats Winter", func(t *testing.T) {
		p := Production(5000)
		assert.Greater(t, monthTotal(p, 5), monthTotal(p, 11))
		for _, v := range p {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	})

	t.Run("Zero Target", func(t *testing.T) {
		p := Production(0)
		require.Len(t, p, types.HoursPerYear)
		assert.Zero(t, Sum(p))
	})
}

func TestConsumption(t *testing.T) {
	t.Run("Sums To Target", func(t *testing.T) {
		home := 2
		for _, hh := range []types.Household{
			{},
			{Size: 5, PeopleHomeWeekday: &home, HeatingKWh: 3000, CoolingKWh: 500},
			{Size: 1, HeatingKWh: 10000},
		} {
			c := Consumption(4000, hh)
			require.Len(t, c, types.HoursPerYear)
			assert.InDelta(t, 4000, Sum(c), 1.0)
			for i, v := range c {
				require.GreaterOrEqual(t, v, 0.0, "hour %d", i)
			}
		}
	})

	t.Run("Baseload Only", func(t *testing.T) {
		// a budget below the baseload leaves nothing for activity
		c := Consumption(types.HoursPerYear*BaseLoadKW, types.Household{})
		for _, v := range c {
			assert.InDelta(t, BaseLoadKW, v, 1e-9)
		}
	})

	t.Run("Weekends At Home", func(t *testing.T) {
		nobody := 0
		c := Consumption(5000, types.Household{Size: 2, PeopleHomeWeekday: &nobody})
		// weekday noon is baseload only while Saturday noon has activity
		assert.Greater(t, c[5*24+12], c[0*24+12])
		assert.Greater(t, c[0*24+18], c[0*24+12])
	})

	t.Run("Heating In Winter", func(t *testing.T) {
		c := Consumption(8000, types.Household{HeatingKWh: 4000})
		assert.Greater(t, monthTotal(c, 0), 2*monthTotal(c, 6))
	})

	t.Run("Cooling In Summer", func(t *testing.T) {
		c := Consumption(6000, types.Household{CoolingKWh: 2000})
		assert.Greater(t, monthTotal(c, 6), monthTotal(c, 0))
	})

	t.Run("Zero Target", func(t *testing.T) {
		c := Consumption(0, types.Household{})
		require.Len(t, c, types.HoursPerYear)
		assert.Zero(t, Sum(c))
	})
}

func TestRescale(t *testing.T) {
	assert.Equal(t, []float64{1, 3}, Rescale([]float64{0.5, 1.5}, 4))
	assert.Equal(t, []float64{0, 0}, Rescale([]float64{0, 0}, 4))
	assert.Equal(t, []float64{0, 0}, Rescale([]float64{1, 2}, -1))
}
