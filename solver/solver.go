// Package solver adapts an assembled linear program to an LP algorithm. The
// planner treats it as an opaque dependency: submit a problem, receive a
// solution or a failure. There is no retry logic - a failed solve is
// surfaced immediately.
//
// Small systems are densified and handed to gonum's simplex. Systems whose
// dense form would be prohibitively large take a sparse first-order path
// instead, so full-year models never materialize a dense matrix.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	simplexTolerance = 1e-7

	// maxDenseCells bounds the matrix size handed to the dense simplex;
	// anything larger takes the sparse path.
	maxDenseCells = 4 << 20
)

var (
	// ErrInfeasible indicates the constraints admit no solution.
	ErrInfeasible = errors.New("model is infeasible")
	// ErrSolveFailed indicates an unbounded model, a numerical failure or an
	// exhausted solve budget.
	ErrSolveFailed = errors.New("solver failure")
)

// Term is one linear coefficient of a constraint row.
type Term struct {
	Var   int
	Coeff float64
}

type row struct {
	coeffs map[int]float64
	rhs    float64
}

// Problem is a linear program in the general form
//
//	minimize  c'x
//	s.t.      Ax  = b
//	          Gx <= h
//	          l <= x <= u
//
// Variables default to [0, +inf). Rows are held sparse, and single-variable
// limits belong in the bounds rather than in rows, so large models stay
// compact.
type Problem struct {
	numVars   int
	objective []float64
	lower     []float64
	upper     []float64
	eq        []row
	le        []row
}

// NewProblem returns an empty problem.
func NewProblem() *Problem {
	return &Problem{}
}

// AddVar adds a decision variable bounded [0, +inf) with the given objective
// coefficient and returns its identifier.
func (p *Problem) AddVar(cost float64) int {
	p.objective = append(p.objective, cost)
	p.lower = append(p.lower, 0)
	p.upper = append(p.upper, math.Inf(1))
	p.numVars++
	return p.numVars - 1
}

// SetLower raises the lower bound of a variable.
func (p *Problem) SetLower(v int, bound float64) {
	p.lower[v] = bound
}

// SetUpper caps a variable.
func (p *Problem) SetUpper(v int, bound float64) {
	p.upper[v] = bound
}

// NumVars returns the number of decision variables added so far.
func (p *Problem) NumVars() int {
	return p.numVars
}

// NumConstraints returns the number of constraint rows added so far.
func (p *Problem) NumConstraints() int {
	return len(p.eq) + len(p.le)
}

// AddEq adds the equality constraint sum(terms) == rhs.
func (p *Problem) AddEq(terms []Term, rhs float64) {
	p.eq = append(p.eq, newRow(terms, rhs))
}

// AddLe adds the inequality constraint sum(terms) <= rhs.
func (p *Problem) AddLe(terms []Term, rhs float64) {
	p.le = append(p.le, newRow(terms, rhs))
}

func newRow(terms []Term, rhs float64) row {
	coeffs := make(map[int]float64, len(terms))
	for _, t := range terms {
		coeffs[t.Var] += t.Coeff
	}
	return row{coeffs: coeffs, rhs: rhs}
}

// Solution holds the optimal variable assignment of a solved problem.
type Solution struct {
	values    []float64
	objective float64
}

// Value returns the solved value of the given variable.
func (s *Solution) Value(v int) float64 {
	return s.values[v]
}

// Objective returns the optimal objective value.
func (s *Solution) Objective() float64 {
	return s.objective
}

type solveResult struct {
	solution *Solution
	err      error
}

// Solve runs the problem through the appropriate algorithm. The solve is one
// atomic blocking operation; cancelling the context abandons it and returns
// a failure, never a partial solution. Panics raised inside the algorithm
// surface as ErrSolveFailed instead of crashing the caller.
func Solve(ctx context.Context, p *Problem) (*Solution, error) {
	if p.numVars == 0 {
		return nil, fmt.Errorf("%w: problem has no variables", ErrSolveFailed)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolveFailed, err)
	}

	done := make(chan solveResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- solveResult{err: fmt.Errorf("%w: %v", ErrSolveFailed, r)}
			}
		}()
		solution, err := p.solve(ctx)
		done <- solveResult{solution: solution, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrSolveFailed, ctx.Err())
	case result := <-done:
		return result.solution, result.err
	}
}

// solve picks the algorithm by the dense footprint of the system.
func (p *Problem) solve(ctx context.Context) (*Solution, error) {
	rows := len(p.eq) + len(p.le) + p.numBoundRows()
	cols := p.numVars + len(p.le) + p.numBoundRows()
	if rows*cols > maxDenseCells {
		return p.solveSparse(ctx)
	}
	return p.solveDense()
}

// numBoundRows counts the finite bounds that the dense form must carry as
// explicit inequality rows.
func (p *Problem) numBoundRows() int {
	n := 0
	for v := 0; v < p.numVars; v++ {
		if !math.IsInf(p.upper[v], 1) {
			n++
		}
		if p.lower[v] > 0 {
			n++
		}
	}
	return n
}

// solveDense reduces the problem to the standard form lp.Simplex expects:
// finite bounds become inequality rows, and each inequality row gains a
// slack variable and joins the equality rows. The simplex panics on systems
// with more rows than columns and cannot factor linearly dependent rows;
// both surface as ErrSolveFailed through Solve.
func (p *Problem) solveDense() (*Solution, error) {
	les := make([]row, 0, len(p.le)+p.numBoundRows())
	les = append(les, p.le...)
	for v := 0; v < p.numVars; v++ {
		if !math.IsInf(p.upper[v], 1) {
			les = append(les, row{coeffs: map[int]float64{v: 1}, rhs: p.upper[v]})
		}
		if p.lower[v] > 0 {
			les = append(les, row{coeffs: map[int]float64{v: -1}, rhs: -p.lower[v]})
		}
	}

	numRows := len(p.eq) + len(les)
	numCols := p.numVars + len(les)

	c := make([]float64, numCols)
	copy(c, p.objective)

	a := mat.NewDense(numRows, numCols, nil)
	b := make([]float64, numRows)

	for i, constraint := range p.eq {
		for v, coeff := range constraint.coeffs {
			a.Set(i, v, coeff)
		}
		b[i] = constraint.rhs
	}
	for i, constraint := range les {
		rowIdx := len(p.eq) + i
		for v, coeff := range constraint.coeffs {
			a.Set(rowIdx, v, coeff)
		}
		a.Set(rowIdx, p.numVars+i, 1) // slack
		b[rowIdx] = constraint.rhs
	}

	objective, x, err := lp.Simplex(c, a, b, simplexTolerance, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return nil, fmt.Errorf("%w: %v", ErrInfeasible, err)
		case errors.Is(err, lp.ErrUnbounded):
			return nil, fmt.Errorf("%w: unbounded: %v", ErrSolveFailed, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrSolveFailed, err)
		}
	}

	values := make([]float64, p.numVars)
	copy(values, x[:p.numVars])
	return &Solution{values: values, objective: objective}, nil
}
