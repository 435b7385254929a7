package planner

import (
	"github.com/cepro/energyplanner/solver"
	"github.com/cepro/energyplanner/timeseries"
)

// hotWaterStore sizes a thermal hot-water store and time-shifts the hot
// water load through it. The hourly hot-water demand itself is fixed
// consumption on the bus; the store adds a charge variable (extra draw) and
// a discharge variable (demand served from the store) around it, with the
// same cyclic state recurrence as the battery.
type hotWaterStore struct {
	invPerKWh    float64
	annuity      float64
	etaIn        float64
	etaOut       float64
	lossPerHour  float64
	cRateLimit   float64
	demand       timeseries.Series
	autonomyMode bool

	capVar  int
	socVars []int
	inVars  []int
	outVars []int
}

func (s *hotWaterStore) name() string { return "hotwater" }

func (s *hotWaterStore) build(p *solver.Problem, b *bus) error {
	capCost := s.annuity * s.invPerKWh / 1000.0
	if s.autonomyMode {
		capCost = 0
	}
	s.capVar = p.AddVar(capCost)

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

		// discharge can only displace the hour's hot-water demand
		p.SetUpper(out, s.demand[h])

		prev := s.socVars[(h-1+b.hours)%b.hours]
		if s.etaOut > 0 {
			p.AddEq([]solver.Term{
				{Var: soc, Coeff: 1},
				{Var: prev, Coeff: -retention},
				{Var: in, Coeff: -s.etaIn},
				{Var: out, Coeff: 1.0 / s.etaOut},
			}, 0)
		} else {
			p.SetUpper(out, 0)
			p.AddEq([]solver.Term{
				{Var: soc, Coeff: 1},
				{Var: prev, Coeff: -retention},
				{Var: in, Coeff: -s.etaIn},
			}, 0)
		}

		b.addSupply(h, solver.Term{Var: out, Coeff: 1})
		b.addConsumption(h, solver.Term{Var: in, Coeff: 1})
		b.addFixedConsumption(h, s.demand[h])
	}
	return nil
}

func (s *hotWaterStore) socWh(sol *solver.Solution) timeseries.Series {
	return seriesOf(sol, s.socVars)
}

func (s *hotWaterStore) chargeWh(sol *solver.Solution) timeseries.Series {
	return seriesOf(sol, s.inVars)
}

func (s *hotWaterStore) dischargeWh(sol *solver.Solution) timeseries.Series {
	return seriesOf(sol, s.outVars)
}
