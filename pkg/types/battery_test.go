package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBattery(t *testing.T) {
	t.Run("Zero Capacity", func(t *testing.T) {
		assert.Equal(t, NoBattery{}, NewBattery(0, 5, 0.9))
	})

	t.Run("Zero Power", func(t *testing.T) {
		assert.Equal(t, NoBattery{}, NewBattery(10, 0, 0.9))
	})

	t.Run("Default Efficiency", func(t *testing.T) {
		b := NewBattery(10, 5, 0)
		assert.Equal(t, StorageBattery{Capacity: 10, PowerKW: 5, Efficiency: DefaultBatteryEfficiency}, b)
		assert.Equal(t, 10.0, b.CapacityKWh())
	})

	t.Run("Config", func(t *testing.T) {
		var nilConfig *BatteryConfig
		assert.Equal(t, NoBattery{}, nilConfig.Battery())
		assert.Equal(t, 0.0, nilConfig.Battery().CapacityKWh())

		c := &BatteryConfig{CapacityKWh: 5, PowerKW: 1, Efficiency: 1}
		assert.Equal(t, StorageBattery{Capacity: 5, PowerKW: 1, Efficiency: 1}, c.Battery())
	})
}

func TestHouseholdOccupancy(t *testing.T) {
	people, home := Household{}.Occupancy()
	assert.Equal(t, DefaultHouseholdSize, people)
	assert.Equal(t, DefaultPeopleHomeWeekday, home)

	zero := 0
	people, home = Household{Size: 4, PeopleHomeWeekday: &zero}.Occupancy()
	assert.Equal(t, 4, people)
	assert.Equal(t, 0, home)

	many := 9
	people, home = Household{Size: 2, PeopleHomeWeekday: &many}.Occupancy()
	assert.Equal(t, 2, people)
	assert.Equal(t, 2, home)

	people, _ = Household{Size: -3}.Occupancy()
	assert.Equal(t, 1, people)
}
