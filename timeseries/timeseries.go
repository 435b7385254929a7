package timeseries

import (
	"fmt"

	"github.com/cepro/energyplanner/calendar"
)

// Series is an ordered sequence of hourly values covering the reference year,
// index 0 being the first hour of January 1st.
type Series []float64

// Constant returns a series of the given length filled with the given value.
func Constant(value float64, length int) Series {
	s := make(Series, length)
	for i := range s {
		s[i] = value
	}
	return s
}

// Sum returns the sum of all values in the series.
func (s Series) Sum() float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

// Max returns the largest value in the series, or zero for an empty series.
func (s Series) Max() float64 {
	max := 0.0
	for i, v := range s {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

// CheckYear verifies that the series covers exactly one reference year.
func (s Series) CheckYear() error {
	if len(s) != calendar.HoursPerYear {
		return fmt.Errorf("series has %d entries, expected %d", len(s), calendar.HoursPerYear)
	}
	return nil
}

// CheckFractions verifies that all values lie within [0, 1].
func (s Series) CheckFractions() error {
	for hour, v := range s {
		if v < 0 || v > 1 {
			return fmt.Errorf("value %f at hour %d is outside [0, 1]", v, hour)
		}
	}
	return nil
}

// CheckNonNegative verifies that no value is negative.
func (s Series) CheckNonNegative() error {
	for hour, v := range s {
		if v < 0 {
			return fmt.Errorf("value %f at hour %d is negative", v, hour)
		}
	}
	return nil
}

// ScaleAnnual returns a copy of the series scaled so that it sums to the
// given annual total. A series summing to zero is returned unchanged.
func ScaleAnnual(s Series, annualTotal float64) Series {
	sum := s.Sum()
	scaled := make(Series, len(s))
	if sum == 0 {
		copy(scaled, s)
		return scaled
	}
	factor := annualTotal / sum
	for i, v := range s {
		scaled[i] = v * factor
	}
	return scaled
}

// ScaleMonthly returns a copy of the series rescaled so that each calendar
// month sums to the corresponding weight, keeping the hourly shape within
// each month. The weights use the same unit as the series values.
func ScaleMonthly(s Series, monthlyWeights []float64) (Series, error) {
	if err := s.CheckYear(); err != nil {
		return nil, err
	}
	if len(monthlyWeights) != calendar.MonthsInYear {
		return nil, fmt.Errorf("got %d monthly weights, expected %d", len(monthlyWeights), calendar.MonthsInYear)
	}

	scaled := make(Series, len(s))
	hour := 0
	for month := 0; month < calendar.MonthsInYear; month++ {
		monthHours := calendar.HoursPerMonth[month]

		baseMonthTotal := 0.0
		for h := hour; h < hour+monthHours; h++ {
			baseMonthTotal += s[h]
		}

		factor := 0.0
		if baseMonthTotal > 0 {
			factor = monthlyWeights[month] / baseMonthTotal
		}
		for h := hour; h < hour+monthHours; h++ {
			scaled[h] = s[h] * factor
		}

		hour += monthHours
	}

	return scaled, nil
}
