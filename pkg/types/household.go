package types

const (
	DefaultHouseholdSize     = 3
	DefaultPeopleHomeWeekday = 1
)

// Household describes the occupants and seasonal loads used to synthesize a
// consumption profile when no measured one is available.
type Household struct {
	// Size is the number of occupants. Zero means DefaultHouseholdSize.
	Size int `json:"size,omitempty" yaml:"size,omitempty"`
	// PeopleHomeWeekday is how many occupants stay home on weekdays. Nil
	// means DefaultPeopleHomeWeekday.
	PeopleHomeWeekday *int `json:"peopleHomeWeekday,omitempty" yaml:"people_home_weekday,omitempty"`

	// HeatingKWh and CoolingKWh are the annual heat-pump and air-conditioning
	// budgets included in the annual consumption.
	HeatingKWh float64 `json:"heatingKWh,omitempty" yaml:"heating_kwh,omitempty"`
	CoolingKWh float64 `json:"coolingKWh,omitempty" yaml:"cooling_kwh,omitempty"`
}

// Occupancy returns the number of occupants and how many of them stay home on
// weekdays, with defaults applied and the home count clamped to the size.
func (h Household) Occupancy() (people, homeWeekday int) {
	people = h.Size
	if people == 0 {
		people = DefaultHouseholdSize
	}
	people = max(1, people)

	homeWeekday = DefaultPeopleHomeWeekday
	if h.PeopleHomeWeekday != nil {
		homeWeekday = *h.PeopleHomeWeekday
	}
	homeWeekday = min(max(0, homeWeekday), people)
	return people, homeWeekday
}
