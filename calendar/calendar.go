package calendar

import "fmt"

// The planner works on an abstract non-leap reference year at hourly
// resolution: hour 0 is the first hour of January 1st.

const (
	HoursPerYear = 8760
	HoursPerDay  = 24
	DaysPerYear  = 365
	MonthsInYear = 12
)

// HoursPerMonth holds the number of hours in each month of a non-leap year.
var HoursPerMonth = [MonthsInYear]int{744, 672, 744, 720, 744, 720, 744, 744, 720, 744, 720, 744}

var monthNames = [MonthsInYear]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// monthStartHours[m] is the hour-of-year at which month m begins.
var monthStartHours = func() [MonthsInYear]int {
	var starts [MonthsInYear]int
	hour := 0
	for m := 0; m < MonthsInYear; m++ {
		starts[m] = hour
		hour += HoursPerMonth[m]
	}
	return starts
}()

// MonthOfHour returns the zero-based month containing the given hour-of-year.
func MonthOfHour(hour int) int {
	for m := MonthsInYear - 1; m >= 0; m-- {
		if hour >= monthStartHours[m] {
			return m
		}
	}
	return 0
}

// MonthStartHour returns the hour-of-year at which the given zero-based month begins.
func MonthStartHour(month int) int {
	return monthStartHours[month]
}

// DayOfHour returns the zero-based day-of-year containing the given hour-of-year.
func DayOfHour(hour int) int {
	return hour / HoursPerDay
}

// HourOfDay returns the hour within the day (0-23) for the given hour-of-year.
func HourOfDay(hour int) int {
	return hour % HoursPerDay
}

// DayLabel returns a human readable label like "Mar 2" for the given zero-based day-of-year.
func DayLabel(day int) string {
	remaining := day
	for m := 0; m < MonthsInYear; m++ {
		daysInMonth := HoursPerMonth[m] / HoursPerDay
		if remaining < daysInMonth {
			return fmt.Sprintf("%s %d", monthNames[m], remaining+1)
		}
		remaining -= daysInMonth
	}
	return fmt.Sprintf("day %d", day)
}
