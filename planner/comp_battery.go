package planner

import (
	"github.com/cepro/energyplanner/solver"
	"github.com/cepro/energyplanner/timeseries"
)

// batterySystem sizes the battery and dispatches its hourly charge and
// discharge. The state-of-charge recurrence wraps hour 0 back to the last
// hour so the year is one repeating cycle rather than a cold start.
type batterySystem struct {
	invPerKWh    float64
	annuity      float64
	etaIn        float64
	etaOut       float64
	lossPerHour  float64
	cRateLimit   float64
	capMaxWh     float64
	autonomyMode bool

	capVar  int
	socVars []int
	inVars  []int
	outVars []int
}

func (s *batterySystem) name() string { return "battery" }

func (s *batterySystem) build(p *solver.Problem, b *bus) error {
	capCost := s.annuity * s.invPerKWh / 1000.0
	if s.autonomyMode {
		capCost = 0
	}
	s.capVar = p.AddVar(capCost)
	p.SetUpper(s.capVar, s.capMaxWh)

	s.socVars = make([]int, b.hours)
	s.inVars = make([]int, b.hours)
	s.outVars = make([]int, b.hours)
	for h := 0; h < b.hours; h++ {
		s.socVars[h] = p.AddVar(0)
		s.inVars[h] = p.AddVar(0)
		s.outVars[h] = p.AddVar(0)
	}

	retention := 1.0 - s.lossPerHour
	for h := 0; h < b.hours; h++ {
		soc := s.socVars[h]
		in := s.inVars[h]
		out := s.outVars[h]

		// state bounded by capacity, power bounded by C-rate
		p.AddLe([]solver.Term{{Var: soc, Coeff: 1}, {Var: s.capVar, Coeff: -1}}, 0)
		p.AddLe([]solver.Term{{Var: in, Coeff: 1}, {Var: s.capVar, Coeff: -s.cRateLimit}}, 0)
		p.AddLe([]solver.Term{{Var: out, Coeff: 1}, {Var: s.capVar, Coeff: -s.cRateLimit}}, 0)

		// soc[h] == soc[h-1]*retention + in[h]*etaIn - out[h]/etaOut, with
		// the recurrence at hour 0 closing the cycle against the last hour.
		prev := s.socVars[(h-1+b.hours)%b.hours]
		if s.etaOut > 0 {
			p.AddEq([]solver.Term{
				{Var: soc, Coeff: 1},
				{Var: prev, Coeff: -retention},
				{Var: in, Coeff: -s.etaIn},
				{Var: out, Coeff: 1.0 / s.etaOut},
			}, 0)
		} else {
			// a battery that cannot discharge is a pure sink; pin the output
			p.SetUpper(out, 0)
			p.AddEq([]solver.Term{
				{Var: soc, Coeff: 1},
				{Var: prev, Coeff: -retention},
				{Var: in, Coeff: -s.etaIn},
			}, 0)
		}

		b.addSupply(h, solver.Term{Var: out, Coeff: 1})
		b.addConsumption(h, solver.Term{Var: in, Coeff: 1})
	}
	return nil
}

func (s *batterySystem) socWh(sol *solver.Solution) timeseries.Series {
	return seriesOf(sol, s.socVars)
}

func (s *batterySystem) chargeWh(sol *solver.Solution) timeseries.Series {
	return seriesOf(sol, s.inVars)
}

func (s *batterySystem) dischargeWh(sol *solver.Solution) timeseries.Series {
	return seriesOf(sol, s.outVars)
}
