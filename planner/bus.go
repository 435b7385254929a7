package planner

import "github.com/cepro/energyplanner/solver"

// bus accumulates the hourly energy-balance terms contributed by the
// subsystems. Once every subsystem has registered its supply and consumption
// terms, one balance equality is emitted per hour:
//
//	sum(supply[h]) == sum(consumption[h]) + fixedConsumption[h]
type bus struct {
	hours            int
	supply           [][]solver.Term
	consumption      [][]solver.Term
	fixedConsumption []float64
}

func newBus(hours int) *bus {
	return &bus{
		hours:            hours,
		supply:           make([][]solver.Term, hours),
		consumption:      make([][]solver.Term, hours),
		fixedConsumption: make([]float64, hours),
	}
}

func (b *bus) addSupply(hour int, t solver.Term) {
	b.supply[hour] = append(b.supply[hour], t)
}

func (b *bus) addConsumption(hour int, t solver.Term) {
	b.consumption[hour] = append(b.consumption[hour], t)
}

func (b *bus) addFixedConsumption(hour int, energyWh float64) {
	b.fixedConsumption[hour] += energyWh
}

// emitBalances adds the per-hour energy balance equalities to the problem.
func (b *bus) emitBalances(p *solver.Problem) {
	for h := 0; h < b.hours; h++ {
		terms := make([]solver.Term, 0, len(b.supply[h])+len(b.consumption[h]))
		terms = append(terms, b.supply[h]...)
		for _, t := range b.consumption[h] {
			terms = append(terms, solver.Term{Var: t.Var, Coeff: -t.Coeff})
		}
		p.AddEq(terms, b.fixedConsumption[h])
	}
}
