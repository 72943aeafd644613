package types

import "time"

const (
	HoursPerDay   = 24
	DaysPerYear   = 365
	HoursPerYear  = HoursPerDay * DaysPerYear
	MonthsPerYear = 12
)

// DaysPerMonth is the length of each calendar month in the simulated
// non-leap year.
var DaysPerMonth = [MonthsPerYear]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var monthOfDay [DaysPerYear]int

func init() {
	day := 0
	for m, n := range DaysPerMonth {
		for i := 0; i < n; i++ {
			monthOfDay[day] = m
			day++
		}
	}
}

// MonthOfDay returns the zero-based calendar month for a zero-based day of the
// year. Days past the end of the year fall into December.
func MonthOfDay(day int) int {
	if day < 0 {
		return 0
	}
	if day >= DaysPerYear {
		return MonthsPerYear - 1
	}
	return monthOfDay[day]
}

// MonthOfHour returns the zero-based calendar month for an hour of the year.
func MonthOfHour(hour int) int {
	return MonthOfDay(hour / HoursPerDay)
}

// WeekdayOfDay returns the day of the week for a zero-based day of the year.
// The simulated year starts on a Monday.
func WeekdayOfDay(day int) time.Weekday {
	return time.Weekday((day + 1) % 7)
}

// IsWeekend reports whether the zero-based day of the year is a Saturday or
// Sunday.
func IsWeekend(day int) bool {
	switch WeekdayOfDay(day) {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}
