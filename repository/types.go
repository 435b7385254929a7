package repository

import (
	"time"

	"github.com/cepro/energyplanner/planner"
)

// StoredPlanSummary is the persisted key-figure row of one optimization run.
// The full hourly dispatch is not stored, only the sized capacities and the
// annual figures needed to compare runs.
type StoredPlanSummary struct {
	RunID     string `gorm:"primaryKey"`
	CreatedAt time.Time

	PVCapKW        float64
	BatteryCapKWh  float64
	GridCapKW      float64
	HeatPumpCapKW  float64
	HotWaterCapKWh float64

	TotalCost    float64
	ImportWh     float64
	ExportWh     float64
	ProductionWh float64
	LoadWh       float64
	PeakImportW  float64

	SelfConsumptionRate    float64
	GridAutonomy           float64
	AutonomyWithoutBattery float64
}

func newStoredPlanSummary(res *planner.Results) StoredPlanSummary {
	return StoredPlanSummary{
		RunID:     res.RunID.String(),
		CreatedAt: res.CreatedAt,

		PVCapKW:        res.PVCapKW,
		BatteryCapKWh:  res.BatteryCapKWh,
		GridCapKW:      res.GridCapKW,
		HeatPumpCapKW:  res.HeatPumpCapKW,
		HotWaterCapKWh: res.HotWaterCapKWh,

		TotalCost:    res.TotalCost,
		ImportWh:     res.ImportWh,
		ExportWh:     res.ExportWh,
		ProductionWh: res.ProductionWh,
		LoadWh:       res.LoadWh,
		PeakImportW:  res.PeakImportW,

		SelfConsumptionRate:    res.SelfConsumptionRate,
		GridAutonomy:           res.GridAutonomy,
		AutonomyWithoutBattery: res.AutonomyWithoutBattery,
	}
}
