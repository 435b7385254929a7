package planner

import "fmt"

// The four failure kinds of an optimization run. All are terminal: the caller
// must fix the configuration or input and re-invoke, there is no fallback to
// a degraded model and no partial Results.

// ConfigurationError indicates an invalid or out-of-range parameter. It is
// raised before model construction and never reaches the solver.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// DataError indicates that an external collaborator supplied a malformed
// input, e.g. a wrong-length time series.
type DataError struct {
	Err error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid input data: %v", e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// InfeasibleModelError indicates that the assembled constraints admit no
// solution, e.g. capacity ceilings too low to meet mandatory demand.
type InfeasibleModelError struct {
	Err error
}

func (e *InfeasibleModelError) Error() string {
	return fmt.Sprintf("model is infeasible: %v", e.Err)
}

func (e *InfeasibleModelError) Unwrap() error {
	return e.Err
}

// SolverError indicates an external solver failure, numerical issue or an
// exhausted solve budget.
type SolverError struct {
	Err error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver error: %v", e.Err)
}

func (e *SolverError) Unwrap() error {
	return e.Err
}
