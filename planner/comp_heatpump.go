package planner

import (
	"github.com/cepro/energyplanner/solver"
	"github.com/cepro/energyplanner/timeseries"
)

// heatPump sizes the heat pump and dispatches its hourly electrical draw.
// Heat output is draw * COP and must cover the hourly heat demand; the
// solver is free to overshoot an hour when that is cheaper overall, e.g. to
// soak up PV that would otherwise be clipped.
type heatPump struct {
	invPerKW     float64
	annuity      float64
	cop          timeseries.Series
	heatDemand   timeseries.Series // Wh of heat per hour
	autonomyMode bool

	capVar   int
	drawVars []int
}

func (s *heatPump) name() string { return "heatpump" }

func (s *heatPump) build(p *solver.Problem, b *bus) error {
	capCost := s.annuity * s.invPerKW / 1000.0
	if s.autonomyMode {
		capCost = 0
	}
	s.capVar = p.AddVar(capCost)

	s.drawVars = make([]int, b.hours)
	for h := 0; h < b.hours; h++ {
		draw := p.AddVar(0)
		s.drawVars[h] = draw

		// draw * cop >= heatDemand, expressed as a lower bound on the draw
		p.SetLower(draw, s.heatDemand[h]/s.cop[h])
		p.AddLe([]solver.Term{{Var: draw, Coeff: 1}, {Var: s.capVar, Coeff: -1}}, 0)

		b.addConsumption(h, solver.Term{Var: draw, Coeff: 1})
	}
	return nil
}

func (s *heatPump) drawWh(sol *solver.Solution) timeseries.Series {
	return seriesOf(sol, s.drawVars)
}
