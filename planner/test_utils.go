package planner

import (
	"math"

	"github.com/cepro/energyplanner/config"
	"github.com/cepro/energyplanner/timeseries"
)

// This file contains utilities to help with testing

// almostEqual compares two floats, allowing for the given tolerance
func almostEqual(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < tolerance
}

// dayConfig returns a configuration suitable for the short-horizon scenario
// tests: demand rescaling is off so the input profiles are used as given,
// and feed-in is enabled like in the defaults.
func dayConfig() config.Config {
	cfg := config.Default()
	cfg.AnnualUsageWh = 0
	cfg.MonthlyDemand = nil
	return cfg
}

// dayInputs returns flat baseline demand and the given irradiance over a
// number of whole days.
func dayInputs(days int, demandWh float64, irradiance timeseries.Series) Inputs {
	hours := days * 24
	if irradiance == nil {
		irradiance = timeseries.Constant(0, hours)
	}
	return Inputs{
		Irradiance: irradiance,
		Demand:     timeseries.Constant(demandWh, hours),
	}
}

// daytimeIrradiance returns an irradiance profile that is the given fraction
// between hours 8 and 16 of each day and zero otherwise.
func daytimeIrradiance(days int, fraction float64) timeseries.Series {
	s := make(timeseries.Series, days*24)
	for h := range s {
		hourOfDay := h % 24
		if hourOfDay >= 8 && hourOfDay < 16 {
			s[h] = fraction
		}
	}
	return s
}

// balanceResidual returns the largest absolute hourly violation of the
// energy balance in the solved dispatch.
func balanceResidual(res *Results) float64 {
	h := res.Hourly
	worst := 0.0
	for i := range h.BaseLoad {
		supply := h.PVProduction[i] + h.GridImport[i] + h.BatteryDischarge[i]
		consumption := h.BaseLoad[i] + h.GridExport[i] + h.BatteryCharge[i]
		if h.HeatPumpDraw != nil {
			consumption += h.HeatPumpDraw[i]
		}
		if h.CarCharge != nil {
			consumption += h.CarCharge[i]
		}
		if h.HotWaterSoc != nil {
			supply += h.HotWaterDischarge[i]
			consumption += h.HotWaterCharge[i] + h.HotWaterDemand[i]
		}
		residual := math.Abs(supply - consumption)
		if residual > worst {
			worst = residual
		}
	}
	return worst
}
