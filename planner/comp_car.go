package planner

import (
	"math"

	"github.com/cepro/energyplanner/calendar"
	"github.com/cepro/energyplanner/solver"
	"github.com/cepro/energyplanner/timeseries"
)

// electricCar schedules the charging of an electric car. Each day the car
// must receive exactly its daily driving energy, capped by the battery size.
// Charging hours are restricted to the nightly plug-in window unless daytime
// charging is enabled, and each hour is bounded by the charger power.
type electricCar struct {
	dailyKm         float64
	efficiencyKWhKm float64
	batterySizeKWh  float64
	chargerPowerW   float64
	chargeDuringDay bool
	dayStartHour    int
	dayEndHour      int

	chargeVars []int
}

func (s *electricCar) name() string { return "car" }

// chargeable reports whether the car is at the charger in the given hour of
// the day. The car is away during the daytime window unless daytime charging
// is configured.
func (s *electricCar) chargeable(hourOfDay int) bool {
	if s.chargeDuringDay {
		return true
	}
	return hourOfDay < s.dayStartHour || hourOfDay >= s.dayEndHour
}

func (s *electricCar) build(p *solver.Problem, b *bus) error {
	dailyNeedWh := math.Min(s.dailyKm*s.efficiencyKWhKm, s.batterySizeKWh) * 1000.0
	hourlyMaxWh := math.Min(s.chargerPowerW, s.batterySizeKWh*1000.0)

	s.chargeVars = make([]int, b.hours)
	for h := 0; h < b.hours; h++ {
		charge := p.AddVar(0)
		s.chargeVars[h] = charge

		if !s.chargeable(calendar.HourOfDay(h)) {
			p.SetUpper(charge, 0)
		} else {
			p.SetUpper(charge, hourlyMaxWh)
		}

		b.addConsumption(h, solver.Term{Var: charge, Coeff: 1})
	}

	days := b.hours / calendar.HoursPerDay
	for d := 0; d < days; d++ {
		terms := make([]solver.Term, 0, calendar.HoursPerDay)
		for h := d * calendar.HoursPerDay; h < (d+1)*calendar.HoursPerDay; h++ {
			terms = append(terms, solver.Term{Var: s.chargeVars[h], Coeff: 1})
		}
		p.AddEq(terms, dailyNeedWh)
	}
	return nil
}

func (s *electricCar) chargeWh(sol *solver.Solution) timeseries.Series {
	return seriesOf(sol, s.chargeVars)
}
