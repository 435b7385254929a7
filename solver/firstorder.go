package solver

import (
	"context"
	"fmt"
	"math"
)

// The sparse path is a diagonally preconditioned primal-dual splitting
// method (Chambolle-Pock). It touches the constraint matrix only through
// sparse row passes, so year-long systems with tens of thousands of rows
// solve in memory proportional to their nonzeros.

const (
	firstOrderTolerance     = 1e-6
	firstOrderMaxIterations = 400000
	firstOrderCheckEvery    = 250
)

type sparseRow struct {
	cols []int
	vals []float64
	rhs  float64
	le   bool
}

func newSparseRow(r row, le bool) sparseRow {
	s := sparseRow{
		cols: make([]int, 0, len(r.coeffs)),
		vals: make([]float64, 0, len(r.coeffs)),
		rhs:  r.rhs,
		le:   le,
	}
	for v, coeff := range r.coeffs {
		if coeff == 0 {
			continue
		}
		s.cols = append(s.cols, v)
		s.vals = append(s.vals, coeff)
	}
	return s
}

func (p *Problem) sparseRows() []sparseRow {
	rows := make([]sparseRow, 0, len(p.eq)+len(p.le))
	for _, r := range p.eq {
		rows = append(rows, newSparseRow(r, false))
	}
	for _, r := range p.le {
		rows = append(rows, newSparseRow(r, true))
	}
	return rows
}

// solveSparse iterates the primal-dual scheme until primal feasibility and
// the primal-dual gap both fall below a relative tolerance. It cannot
// certify infeasibility; an inconsistent model exhausts the iteration
// budget and reports a solve failure.
func (p *Problem) solveSparse(ctx context.Context) (*Solution, error) {
	rows := p.sparseRows()

	for _, r := range rows {
		if len(r.cols) > 0 {
			continue
		}
		if r.le && r.rhs >= 0 {
			continue
		}
		if !r.le && r.rhs == 0 {
			continue
		}
		return nil, fmt.Errorf("%w: constraint with no variables cannot reach %f", ErrInfeasible, r.rhs)
	}

	n := p.numVars
	colAbs := make([]float64, n)
	sigma := make([]float64, len(rows))
	rhsScale := 1.0
	for i, r := range rows {
		sum := 0.0
		for k, c := range r.cols {
			v := math.Abs(r.vals[k])
			sum += v
			colAbs[c] += v
		}
		if sum > 0 {
			sigma[i] = 1 / sum
		} else {
			sigma[i] = 1
		}
		if a := math.Abs(r.rhs); a > rhsScale {
			rhsScale = a
		}
	}
	tau := make([]float64, n)
	for j := range tau {
		if colAbs[j] > 0 {
			tau[j] = 1 / colAbs[j]
		} else {
			tau[j] = 1
		}
	}

	x := make([]float64, n)
	for j := range x {
		x[j] = clamp(0, p.lower[j], p.upper[j])
	}
	xNext := make([]float64, n)
	y := make([]float64, len(rows))
	g := make([]float64, n)

	for iter := 1; iter <= firstOrderMaxIterations; iter++ {
		copy(g, p.objective)
		for i := range rows {
			yi := y[i]
			if yi == 0 {
				continue
			}
			r := &rows[i]
			for k, c := range r.cols {
				g[c] += r.vals[k] * yi
			}
		}
		for j := 0; j < n; j++ {
			xNext[j] = clamp(x[j]-tau[j]*g[j], p.lower[j], p.upper[j])
		}
		for i := range rows {
			r := &rows[i]
			dot := 0.0
			for k, c := range r.cols {
				dot += r.vals[k] * (2*xNext[c] - x[c])
			}
			yi := y[i] + sigma[i]*(dot-r.rhs)
			if r.le && yi < 0 {
				yi = 0
			}
			y[i] = yi
		}
		x, xNext = xNext, x

		if iter%firstOrderCheckEvery != 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSolveFailed, err)
		}
		if solution, ok := p.sparseConverged(rows, x, y, rhsScale); ok {
			return solution, nil
		}
	}
	return nil, fmt.Errorf("%w: no convergence within %d iterations", ErrSolveFailed, firstOrderMaxIterations)
}

// sparseConverged checks primal feasibility and the primal-dual gap at the
// current iterate and builds the solution once both hold.
func (p *Problem) sparseConverged(rows []sparseRow, x, y []float64, rhsScale float64) (*Solution, bool) {
	feasTol := firstOrderTolerance * (1 + rhsScale)
	for i := range rows {
		r := &rows[i]
		dot := 0.0
		for k, c := range r.cols {
			dot += r.vals[k] * x[c]
		}
		resid := dot - r.rhs
		if r.le && resid < 0 {
			resid = 0
		}
		if math.Abs(resid) > feasTol {
			return nil, false
		}
	}

	primal := 0.0
	for j, cost := range p.objective {
		primal += cost * x[j]
	}

	reduced := make([]float64, p.numVars)
	copy(reduced, p.objective)
	for i := range rows {
		yi := y[i]
		if yi == 0 {
			continue
		}
		r := &rows[i]
		for k, c := range r.cols {
			reduced[c] += r.vals[k] * yi
		}
	}

	dual := 0.0
	for i := range rows {
		dual -= y[i] * rows[i].rhs
	}
	for j, rc := range reduced {
		if rc < 0 && math.IsInf(p.upper[j], 1) {
			if rc < -firstOrderTolerance*(1+math.Abs(p.objective[j])) {
				return nil, false
			}
			rc = 0
		}
		if rc >= 0 {
			dual += rc * p.lower[j]
		} else {
			dual += rc * p.upper[j]
		}
	}

	gap := math.Abs(primal - dual)
	if gap > firstOrderTolerance*(1+math.Abs(primal)+math.Abs(dual)) {
		return nil, false
	}

	values := append([]float64(nil), x...)
	return &Solution{values: values, objective: primal}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
