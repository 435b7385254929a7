package planner

import (
	"github.com/cepro/energyplanner/solver"
	"github.com/cepro/energyplanner/timeseries"
)

// gridConnection sizes the grid connection and dispatches hourly import and
// export through it. Both directions are bounded by the connection capacity,
// which is itself a sizing variable unless capMaxW pins a ceiling on it.
type gridConnection struct {
	invPerKW     float64
	annuity      float64
	tariffPerKWh float64
	feedInPerKWh float64
	allowFeedIn  bool
	capMaxW      float64 // 0 means the connection is sized freely
	autonomyMode bool

	capVar     int
	importVars []int
	exportVars []int
}

func (s *gridConnection) name() string { return "grid" }

func (s *gridConnection) build(p *solver.Problem, b *bus) error {
	capCost := s.annuity * s.invPerKW / 1000.0
	importCost := s.tariffPerKWh / 1000.0
	exportCost := -s.feedInPerKWh / 1000.0
	if s.autonomyMode {
		// Autonomy maximization minimizes total import; tariffs and
		// investment terms stay out of the objective.
		capCost = 0
		importCost = 1
		exportCost = 0
	}

	s.capVar = p.AddVar(capCost)
	if s.capMaxW > 0 {
		p.SetUpper(s.capVar, s.capMaxW)
	}

	s.importVars = make([]int, b.hours)
	s.exportVars = make([]int, b.hours)
	for h := 0; h < b.hours; h++ {
		imp := p.AddVar(importCost)
		exp := p.AddVar(exportCost)
		s.importVars[h] = imp
		s.exportVars[h] = exp

		p.AddLe([]solver.Term{{Var: imp, Coeff: 1}, {Var: s.capVar, Coeff: -1}}, 0)
		p.AddLe([]solver.Term{{Var: exp, Coeff: 1}, {Var: s.capVar, Coeff: -1}}, 0)
		if !s.allowFeedIn {
			p.SetUpper(exp, 0)
		}

		b.addSupply(h, solver.Term{Var: imp, Coeff: 1})
		b.addConsumption(h, solver.Term{Var: exp, Coeff: 1})
	}
	return nil
}

func (s *gridConnection) importsWh(sol *solver.Solution) timeseries.Series {
	return seriesOf(sol, s.importVars)
}

func (s *gridConnection) exportsWh(sol *solver.Solution) timeseries.Series {
	return seriesOf(sol, s.exportVars)
}

// seriesOf reads the solved values of a block of hourly variables.
func seriesOf(sol *solver.Solution, vars []int) timeseries.Series {
	s := make(timeseries.Series, len(vars))
	for i, v := range vars {
		s[i] = sol.Value(v)
	}
	return s
}
