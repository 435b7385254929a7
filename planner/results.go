package planner

import (
	"math"
	"time"

	"github.com/cepro/energyplanner/config"
	"github.com/cepro/energyplanner/solver"
	"github.com/cepro/energyplanner/timeseries"
	"github.com/google/uuid"
)

// Results holds the sized capacities, the annual key figures and the full
// hourly dispatch of one solved optimization run.
type Results struct {
	RunID     uuid.UUID
	CreatedAt time.Time

	// Sized capacities
	PVCapKW        float64
	BatteryCapKWh  float64
	GridCapKW      float64
	HeatPumpCapKW  float64
	HotWaterCapKWh float64

	// Annual key figures. TotalCost is the annualized system cost in
	// currency units, computed from the cost parameters regardless of the
	// optimization mode.
	TotalCost    float64
	ImportWh     float64
	ExportWh     float64
	ProductionWh float64
	LoadWh       float64

	// PeakImportW is the largest hourly grid import, the draw the
	// connection actually has to carry.
	PeakImportW float64

	BatteryChargeWh    float64
	BatteryDischargeWh float64
	HeatPumpWh         float64
	CarChargeWh        float64
	HeatDemandWh       float64

	// Percentages in [0, 100]
	SelfConsumptionRate    float64
	GridAutonomy           float64
	AutonomyWithoutBattery float64

	Hourly Hourly
}

// Hourly holds the dispatch series of a solved run, all in Wh per hour.
// Subsystems that were not part of the run have nil series.
type Hourly struct {
	BaseLoad     timeseries.Series
	PVProduction timeseries.Series
	GridImport   timeseries.Series
	GridExport   timeseries.Series

	BatterySoc       timeseries.Series
	BatteryCharge    timeseries.Series
	BatteryDischarge timeseries.Series

	HeatPumpDraw timeseries.Series
	CarCharge    timeseries.Series

	HotWaterSoc       timeseries.Series
	HotWaterCharge    timeseries.Series
	HotWaterDischarge timeseries.Series
	HotWaterDemand    timeseries.Series
}

// Load returns the total electric load per hour: baseline demand plus every
// flexible consumer, with the hot-water store's shifting applied. Battery
// flows are excluded, they move energy rather than consume it.
func (h *Hourly) Load() timeseries.Series {
	load := make(timeseries.Series, len(h.BaseLoad))
	copy(load, h.BaseLoad)
	addInto(load, h.HeatPumpDraw)
	addInto(load, h.CarCharge)
	addInto(load, h.HotWaterDemand)
	addInto(load, h.HotWaterCharge)
	subInto(load, h.HotWaterDischarge)
	return load
}

func addInto(dst timeseries.Series, src timeseries.Series) {
	for i, v := range src {
		dst[i] += v
	}
}

func subInto(dst timeseries.Series, src timeseries.Series) {
	for i, v := range src {
		dst[i] -= v
	}
}

// results reads the solved variable values back into a Results.
func (pl *plan) results(cfg config.Config, sol *solver.Solution) *Results {
	res := &Results{
		RunID:     uuid.New(),
		CreatedAt: time.Now().UTC(),
	}

	res.PVCapKW = sol.Value(pl.pv.capVar) / 1000.0
	res.GridCapKW = sol.Value(pl.grid.capVar) / 1000.0
	res.BatteryCapKWh = sol.Value(pl.battery.capVar) / 1000.0

	res.Hourly.BaseLoad = pl.baseLoad
	res.Hourly.PVProduction = pl.pv.productionWh(sol)
	res.Hourly.GridImport = pl.grid.importsWh(sol)
	res.Hourly.GridExport = pl.grid.exportsWh(sol)
	res.Hourly.BatterySoc = pl.battery.socWh(sol)
	res.Hourly.BatteryCharge = pl.battery.chargeWh(sol)
	res.Hourly.BatteryDischarge = pl.battery.dischargeWh(sol)

	if pl.heatPump != nil {
		res.HeatPumpCapKW = sol.Value(pl.heatPump.capVar) / 1000.0
		res.Hourly.HeatPumpDraw = pl.heatPump.drawWh(sol)
	}
	if pl.car != nil {
		res.Hourly.CarCharge = pl.car.chargeWh(sol)
	}
	if pl.hotWater != nil {
		res.HotWaterCapKWh = sol.Value(pl.hotWater.capVar) / 1000.0
		res.Hourly.HotWaterSoc = pl.hotWater.socWh(sol)
		res.Hourly.HotWaterCharge = pl.hotWater.chargeWh(sol)
		res.Hourly.HotWaterDischarge = pl.hotWater.dischargeWh(sol)
		res.Hourly.HotWaterDemand = pl.hotWater.demand
	}

	res.ImportWh = res.Hourly.GridImport.Sum()
	res.PeakImportW = res.Hourly.GridImport.Max()
	res.ExportWh = res.Hourly.GridExport.Sum()
	res.ProductionWh = res.Hourly.PVProduction.Sum()
	res.BatteryChargeWh = res.Hourly.BatteryCharge.Sum()
	res.BatteryDischargeWh = res.Hourly.BatteryDischarge.Sum()
	res.HeatPumpWh = res.Hourly.HeatPumpDraw.Sum()
	res.CarChargeWh = res.Hourly.CarCharge.Sum()
	if pl.heatPump != nil {
		res.HeatDemandWh = pl.heatPump.heatDemand.Sum()
	}

	load := res.Hourly.Load()
	res.LoadWh = load.Sum()

	res.TotalCost = annualizedCost(cfg, res)
	res.SelfConsumptionRate = clampPercent(ratio(res.ProductionWh-res.ExportWh, res.ProductionWh))
	res.GridAutonomy = clampPercent(ratio(res.LoadWh-res.ImportWh, res.LoadWh))
	res.AutonomyWithoutBattery = clampPercent(directAutonomy(res.Hourly.PVProduction, load))

	return res
}

// annualizedCost evaluates the cost objective at the solved point. In the
// autonomy mode the solve itself minimizes import instead, so the cost is
// reconstructed here for reporting.
func annualizedCost(cfg config.Config, res *Results) float64 {
	investment := cfg.InvPV*res.PVCapKW +
		cfg.InvBattery*res.BatteryCapKWh +
		cfg.InvGrid*res.GridCapKW +
		cfg.InvHeatPump*res.HeatPumpCapKW +
		cfg.InvHotWater*res.HotWaterCapKWh
	operation := cfg.GridTariff*res.ImportWh/1000.0 - cfg.FeedInTariff*res.ExportWh/1000.0
	return cfg.Annuity*investment + operation
}

// directAutonomy is the share of load that PV covers hour by hour without
// any storage in between.
func directAutonomy(production, load timeseries.Series) float64 {
	covered := 0.0
	total := 0.0
	for h := range load {
		covered += math.Min(production[h], load[h])
		total += load[h]
	}
	return ratio(covered, total)
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func clampPercent(fraction float64) float64 {
	return math.Min(math.Max(fraction*100.0, 0), 100)
}
