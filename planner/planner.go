// Package planner assembles the joint sizing and dispatch optimization for a
// building energy system. Capacities for PV, battery, grid connection, heat
// pump and hot-water storage are decision variables alongside the full hourly
// dispatch, and one linear program over the reference year fixes them all at
// once.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cepro/energyplanner/config"
	"github.com/cepro/energyplanner/solver"
	"github.com/cepro/energyplanner/timeseries"
)

// Inputs holds the hourly input series for one optimization run. Irradiance
// is the PV production per W of installed capacity, Demand is the baseline
// electricity demand profile in Wh (rescaled per the configuration before
// use), HeatDemand is in Wh of heat and HotWaterDemand in Wh of electricity.
// HeatDemand and COP are only consulted when the heat pump is enabled, and
// HotWaterDemand may be nil when there is no hot-water load.
type Inputs struct {
	Irradiance     timeseries.Series
	Demand         timeseries.Series
	HeatDemand     timeseries.Series
	COP            timeseries.Series
	HotWaterDemand timeseries.Series
}

// subsystem is one contributor to the shared hourly energy balance. Each
// subsystem registers its decision variables and constraints with the
// problem and its supply and consumption terms with the bus.
type subsystem interface {
	name() string
	build(p *solver.Problem, b *bus) error
}

// plan is an assembled but unsolved model, keeping the subsystem handles
// around so the solved variable values can be read back out.
type plan struct {
	hours    int
	problem  *solver.Problem
	baseLoad timeseries.Series

	pv       *pvSystem
	grid     *gridConnection
	battery  *batterySystem
	heatPump *heatPump
	car      *electricCar
	hotWater *hotWaterStore
}

// Run validates the configuration and inputs, solves the optimization over
// the full reference year and returns the sized capacities with their
// dispatch. pvCapMaxW bounds the PV capacity, typically from the available
// roof area. Cancelling the context aborts the solve.
func Run(ctx context.Context, cfg config.Config, pvCapMaxW float64, in Inputs) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	if pvCapMaxW < 0 {
		return nil, &ConfigurationError{Err: fmt.Errorf("pv capacity bound must be non-negative, got %f", pvCapMaxW)}
	}

	if err := checkInputs(cfg, in); err != nil {
		return nil, &DataError{Err: err}
	}

	return solvePlan(ctx, cfg, pvCapMaxW, in)
}

// checkInputs verifies that every required series covers the reference year
// and carries plausible values.
func checkInputs(cfg config.Config, in Inputs) error {
	if err := in.Irradiance.CheckYear(); err != nil {
		return fmt.Errorf("irradiance: %w", err)
	}
	if err := in.Irradiance.CheckFractions(); err != nil {
		return fmt.Errorf("irradiance: %w", err)
	}
	if err := in.Demand.CheckYear(); err != nil {
		return fmt.Errorf("demand: %w", err)
	}
	if err := in.Demand.CheckNonNegative(); err != nil {
		return fmt.Errorf("demand: %w", err)
	}
	if cfg.HeatPumpEnabled {
		if err := in.HeatDemand.CheckYear(); err != nil {
			return fmt.Errorf("heat demand: %w", err)
		}
		if err := in.HeatDemand.CheckNonNegative(); err != nil {
			return fmt.Errorf("heat demand: %w", err)
		}
		if err := in.COP.CheckYear(); err != nil {
			return fmt.Errorf("cop: %w", err)
		}
		for hour, v := range in.COP {
			if v <= 0 {
				return fmt.Errorf("cop: value %f at hour %d is not positive", v, hour)
			}
		}
	}
	if in.HotWaterDemand != nil {
		if err := in.HotWaterDemand.CheckYear(); err != nil {
			return fmt.Errorf("hot water demand: %w", err)
		}
		if err := in.HotWaterDemand.CheckNonNegative(); err != nil {
			return fmt.Errorf("hot water demand: %w", err)
		}
	}
	return nil
}

// solvePlan assembles and solves the model for whatever horizon the input
// series cover. Run enforces the full-year horizon before delegating here.
func solvePlan(ctx context.Context, cfg config.Config, pvCapMaxW float64, in Inputs) (*Results, error) {
	pl, err := buildPlan(cfg, pvCapMaxW, in)
	if err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	slog.Debug("Assembled optimization model",
		"hours", pl.hours,
		"variables", pl.problem.NumVars(),
		"constraints", pl.problem.NumConstraints())

	sol, err := solver.Solve(ctx, pl.problem)
	if err != nil {
		if errors.Is(err, solver.ErrInfeasible) {
			return nil, &InfeasibleModelError{Err: err}
		}
		return nil, &SolverError{Err: err}
	}

	return pl.results(cfg, sol), nil
}

// buildPlan scales the demand profile, instantiates the enabled subsystems
// and emits the hourly balance equalities.
func buildPlan(cfg config.Config, pvCapMaxW float64, in Inputs) (*plan, error) {
	hours := len(in.Demand)

	baseLoad, err := scaleDemand(cfg, in.Demand)
	if err != nil {
		return nil, err
	}
	if in.HotWaterDemand != nil && !cfg.HotWaterEnabled {
		// without a store the hot water load is served as it occurs
		for h := 0; h < hours; h++ {
			baseLoad[h] += in.HotWaterDemand[h]
		}
	}

	p := solver.NewProblem()
	b := newBus(hours)
	for h := 0; h < hours; h++ {
		b.addFixedConsumption(h, baseLoad[h])
	}

	pl := &plan{
		hours:    hours,
		problem:  p,
		baseLoad: baseLoad,
		pv: &pvSystem{
			invPerKW:     cfg.InvPV,
			annuity:      cfg.Annuity,
			capMaxW:      pvCapMaxW,
			irradiance:   in.Irradiance,
			autonomyMode: cfg.OptimizeForAutonomy,
		},
		grid: &gridConnection{
			invPerKW:     cfg.InvGrid,
			annuity:      cfg.Annuity,
			tariffPerKWh: cfg.GridTariff,
			feedInPerKWh: cfg.FeedInTariff,
			allowFeedIn:  cfg.AllowFeedIn,
			capMaxW:      cfg.GridCapMaxW,
			autonomyMode: cfg.OptimizeForAutonomy,
		},
		battery: &batterySystem{
			invPerKWh:    cfg.InvBattery,
			annuity:      cfg.Annuity,
			etaIn:        cfg.EtaInBattery,
			etaOut:       cfg.EtaOutBattery,
			lossPerHour:  cfg.StorageLossBattery,
			cRateLimit:   cfg.CRateLimit,
			capMaxWh:     cfg.BatteryCapMaxWh,
			autonomyMode: cfg.OptimizeForAutonomy,
		},
	}

	subsystems := []subsystem{pl.pv, pl.grid, pl.battery}

	if cfg.HeatPumpEnabled {
		pl.heatPump = &heatPump{
			invPerKW:     cfg.InvHeatPump,
			annuity:      cfg.Annuity,
			cop:          in.COP,
			heatDemand:   in.HeatDemand,
			autonomyMode: cfg.OptimizeForAutonomy,
		}
		subsystems = append(subsystems, pl.heatPump)
	}

	if cfg.ElectricCarEnabled {
		pl.car = &electricCar{
			dailyKm:         cfg.CarDailyKm,
			efficiencyKWhKm: cfg.CarEfficiencyKWhKm,
			batterySizeKWh:  cfg.CarBatterySizeKWh,
			chargerPowerW:   cfg.CarChargerPowerW,
			chargeDuringDay: cfg.CarChargeDuringDay,
			dayStartHour:    cfg.CarDayStartHour,
			dayEndHour:      cfg.CarDayEndHour,
		}
		subsystems = append(subsystems, pl.car)
	}

	if in.HotWaterDemand != nil && cfg.HotWaterEnabled {
		pl.hotWater = &hotWaterStore{
			invPerKWh:    cfg.InvHotWater,
			annuity:      cfg.Annuity,
			etaIn:        cfg.EtaInHotWater,
			etaOut:       cfg.EtaOutHotWater,
			lossPerHour:  cfg.StorageLossHotWater,
			cRateLimit:   cfg.CRateLimit,
			demand:       in.HotWaterDemand,
			autonomyMode: cfg.OptimizeForAutonomy,
		}
		subsystems = append(subsystems, pl.hotWater)
	}

	for _, s := range subsystems {
		if err := s.build(p, b); err != nil {
			return nil, fmt.Errorf("build %s subsystem: %w", s.name(), err)
		}
	}
	b.emitBalances(p)

	return pl, nil
}

// scaleDemand rescales the baseline demand profile to the configured annual
// or monthly totals. Monthly weights are in kWh and take precedence.
func scaleDemand(cfg config.Config, demand timeseries.Series) (timeseries.Series, error) {
	if cfg.MonthlyDemand != nil {
		weightsWh := make([]float64, len(cfg.MonthlyDemand))
		for month, kwh := range cfg.MonthlyDemand.Weights() {
			weightsWh[month] = kwh * 1000.0
		}
		scaled, err := timeseries.ScaleMonthly(demand, weightsWh)
		if err != nil {
			return nil, fmt.Errorf("scale demand: %w", err)
		}
		return scaled, nil
	}
	if cfg.AnnualUsageWh > 0 {
		return timeseries.ScaleAnnual(demand, cfg.AnnualUsageWh), nil
	}
	scaled := make(timeseries.Series, len(demand))
	copy(scaled, demand)
	return scaled, nil
}
