package planner

import (
	"github.com/cepro/energyplanner/solver"
	"github.com/cepro/energyplanner/timeseries"
)

// pvSystem sizes the photovoltaic array. Hourly production is not a free
// variable: it is the capacity scaled by the irradiance fraction, so the
// subsystem contributes `capacity * irradiance[h]` supply terms directly.
type pvSystem struct {
	invPerKW     float64
	annuity      float64
	capMaxW      float64
	irradiance   timeseries.Series
	autonomyMode bool

	capVar int
}

func (s *pvSystem) name() string { return "pv" }

func (s *pvSystem) build(p *solver.Problem, b *bus) error {
	capCost := s.annuity * s.invPerKW / 1000.0
	if s.autonomyMode {
		capCost = 0
	}
	s.capVar = p.AddVar(capCost)
	p.SetUpper(s.capVar, s.capMaxW)

	for h := 0; h < b.hours; h++ {
		if s.irradiance[h] == 0 {
			continue
		}
		b.addSupply(h, solver.Term{Var: s.capVar, Coeff: s.irradiance[h]})
	}
	return nil
}

// productionWh returns the solved hourly PV production series.
func (s *pvSystem) productionWh(sol *solver.Solution) timeseries.Series {
	capacity := sol.Value(s.capVar)
	production := make(timeseries.Series, len(s.irradiance))
	for h, irr := range s.irradiance {
		production[h] = capacity * irr
	}
	return production
}
