package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all parameters for one optimization run. Power values are in
// W, energy values in Wh, and investment costs are per kW or kWh as noted.
type Config struct {
	// Investment costs, annualized via the annuity factor
	InvPV       float64 `json:"invPv"`       // per kW of PV capacity
	InvBattery  float64 `json:"invBattery"`  // per kWh of battery capacity
	InvGrid     float64 `json:"invGrid"`     // per kW of grid connection capacity
	InvHeatPump float64 `json:"invHeatPump"` // per kW of heat pump capacity
	InvHotWater float64 `json:"invHotWater"` // per kWh of hot water storage capacity

	// Economic parameters
	Annuity      float64 `json:"annuity"`
	GridTariff   float64 `json:"gridTariff"`   // per kWh imported
	FeedInTariff float64 `json:"feedInTariff"` // per kWh exported
	AllowFeedIn  bool    `json:"allowFeedIn"`

	// Battery parameters
	EtaInBattery       float64 `json:"etaInBattery"`
	EtaOutBattery      float64 `json:"etaOutBattery"`
	StorageLossBattery float64 `json:"storageLossBattery"` // fraction of state lost per hour
	CRateLimit         float64 `json:"cRateLimit"`         // max (dis)charge per hour as fraction of capacity
	BatteryCapMaxWh    float64 `json:"batteryCapMaxWh"`

	// Demand parameters
	AnnualUsageWh float64        `json:"annualUsageWh"`
	MonthlyDemand *MonthlyDemand `json:"monthlyDemand,omitempty"` // kWh per calendar month

	// Grid connection: 0 means the connection is sized freely by the optimizer
	GridCapMaxW float64 `json:"gridCapMaxW"`

	// Heat pump parameters
	HeatPumpEnabled    bool               `json:"heatPumpEnabled"`
	HouseSquareMeters  float64            `json:"houseSquareMeters"`
	BuildingType       BuildingType       `json:"buildingType"`
	ConstructionPeriod ConstructionPeriod `json:"constructionPeriod"`
	InsulationStandard InsulationStandard `json:"insulationStandard"`
	HeatingType        HeatingType        `json:"heatingType"`
	HeatPumpCOP        float64            `json:"heatPumpCop"` // 0 selects the temperature-dependent COP curve

	// Electric car parameters
	ElectricCarEnabled  bool    `json:"electricCarEnabled"`
	CarDailyKm          float64 `json:"carDailyKm"`
	CarEfficiencyKWhKm  float64 `json:"carEfficiencyKwhPerKm"`
	CarBatterySizeKWh   float64 `json:"carBatterySizeKwh"`
	CarChargerPowerW    float64 `json:"carChargerPowerW"`
	CarChargeDuringDay  bool    `json:"carChargeDuringDay"`
	CarDayStartHour     int     `json:"carDayStartHour"`
	CarDayEndHour       int     `json:"carDayEndHour"`

	// Hot water storage parameters
	HotWaterEnabled     bool    `json:"hotWaterEnabled"`
	EtaInHotWater       float64 `json:"etaInHotWater"`
	EtaOutHotWater      float64 `json:"etaOutHotWater"`
	StorageLossHotWater float64 `json:"storageLossHotWater"`

	// Optimization mode: minimize cost (default) or maximize grid autonomy
	OptimizeForAutonomy bool `json:"optimizeForAutonomy"`
}

// MonthlyDemand holds the demand weight for each calendar month in kWh.
type MonthlyDemand [12]float64

// Weights returns the monthly weights as a slice.
func (m *MonthlyDemand) Weights() []float64 {
	return m[:]
}

// Default returns a configuration with sensible residential defaults.
func Default() Config {
	return Config{
		InvPV:       465.0,
		InvBattery:  200.0,
		InvGrid:     0.0,
		InvHeatPump: 1500.0,
		InvHotWater: 60.0,

		Annuity:      0.1,
		GridTariff:   0.30,
		FeedInTariff: 0.079,
		AllowFeedIn:  true,

		EtaInBattery:       0.95,
		EtaOutBattery:      0.95,
		StorageLossBattery: 0.001,
		CRateLimit:         0.3,
		BatteryCapMaxWh:    20000.0,

		AnnualUsageWh: 4173440.0,

		HouseSquareMeters:  100.0,
		BuildingType:       BuildingTypeSingleFamily,
		ConstructionPeriod: ConstructionBefore1900,
		InsulationStandard: InsulationModerate,
		HeatingType:        HeatingTypeFloor,

		CarDailyKm:         50.0,
		CarEfficiencyKWhKm: 0.2,
		CarBatterySizeKWh:  50.0,
		CarChargerPowerW:   11000.0,
		CarChargeDuringDay: true,
		CarDayStartHour:    6,
		CarDayEndHour:      18,

		EtaInHotWater:       0.90,
		EtaOutHotWater:      0.90,
		StorageLossHotWater: 0.01,
	}
}

// Read loads a Config from the JSON file at the given path. Fields that are
// absent in the file keep their defaults.
func Read(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	config := Default()
	err = json.Unmarshal(content, &config)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return config, nil
}

// Validate checks all parameters for internal consistency. It is called
// before any model construction so a bad configuration never reaches the
// solver.
func (c *Config) Validate() error {

	monetary := map[string]float64{
		"invPv":        c.InvPV,
		"invBattery":   c.InvBattery,
		"invGrid":      c.InvGrid,
		"invHeatPump":  c.InvHeatPump,
		"invHotWater":  c.InvHotWater,
		"annuity":      c.Annuity,
		"gridTariff":   c.GridTariff,
		"feedInTariff": c.FeedInTariff,
	}
	for name, value := range monetary {
		if value < 0 {
			return fmt.Errorf("%s must be non-negative, got %f", name, value)
		}
	}

	fractions := map[string]float64{
		"etaInBattery":        c.EtaInBattery,
		"etaOutBattery":       c.EtaOutBattery,
		"storageLossBattery":  c.StorageLossBattery,
		"cRateLimit":          c.CRateLimit,
		"etaInHotWater":       c.EtaInHotWater,
		"etaOutHotWater":      c.EtaOutHotWater,
		"storageLossHotWater": c.StorageLossHotWater,
	}
	for name, value := range fractions {
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %f", name, value)
		}
	}

	if c.BatteryCapMaxWh < 0 {
		return fmt.Errorf("batteryCapMaxWh must be non-negative, got %f", c.BatteryCapMaxWh)
	}
	if c.GridCapMaxW < 0 {
		return fmt.Errorf("gridCapMaxW must be non-negative, got %f", c.GridCapMaxW)
	}
	if c.AnnualUsageWh < 0 {
		return fmt.Errorf("annualUsageWh must be non-negative, got %f", c.AnnualUsageWh)
	}

	if c.MonthlyDemand != nil {
		for month, weight := range c.MonthlyDemand {
			if weight <= 0 {
				return fmt.Errorf("monthlyDemand month %d must be positive, got %f", month+1, weight)
			}
		}
	}

	if c.HeatPumpEnabled {
		if c.HouseSquareMeters <= 0 {
			return fmt.Errorf("houseSquareMeters must be positive when the heat pump is enabled, got %f", c.HouseSquareMeters)
		}
		if c.HeatPumpCOP < 0 {
			return fmt.Errorf("heatPumpCop must be non-negative, got %f", c.HeatPumpCOP)
		}
		if err := c.BuildingType.validate(); err != nil {
			return err
		}
		if err := c.ConstructionPeriod.validate(); err != nil {
			return err
		}
		if err := c.InsulationStandard.validate(); err != nil {
			return err
		}
		if err := c.HeatingType.validate(); err != nil {
			return err
		}
	}

	if c.ElectricCarEnabled {
		if c.CarDailyKm < 0 {
			return fmt.Errorf("carDailyKm must be non-negative, got %f", c.CarDailyKm)
		}
		if c.CarEfficiencyKWhKm < 0 {
			return fmt.Errorf("carEfficiencyKwhPerKm must be non-negative, got %f", c.CarEfficiencyKWhKm)
		}
		if c.CarBatterySizeKWh < 0 {
			return fmt.Errorf("carBatterySizeKwh must be non-negative, got %f", c.CarBatterySizeKWh)
		}
		if c.CarChargerPowerW <= 0 {
			return fmt.Errorf("carChargerPowerW must be positive when the electric car is enabled, got %f", c.CarChargerPowerW)
		}
		if c.CarDayStartHour < 0 || c.CarDayStartHour > 23 {
			return fmt.Errorf("carDayStartHour must be within [0, 23], got %d", c.CarDayStartHour)
		}
		if c.CarDayEndHour < 1 || c.CarDayEndHour > 24 {
			return fmt.Errorf("carDayEndHour must be within [1, 24], got %d", c.CarDayEndHour)
		}
		if c.CarDayStartHour >= c.CarDayEndHour {
			return fmt.Errorf("carDayStartHour (%d) must be before carDayEndHour (%d)", c.CarDayStartHour, c.CarDayEndHour)
		}
	}

	return nil
}
