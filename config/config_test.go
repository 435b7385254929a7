package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	config := Default()
	if err := config.Validate(); err != nil {
		t.Errorf("Default config should validate, got: %v", err)
	}
}

func TestValidateRejectsBadParameters(t *testing.T) {

	type subTest struct {
		name   string
		mutate func(c *Config)
	}

	subTests := []subTest{
		{"negative PV investment", func(c *Config) { c.InvPV = -1 }},
		{"negative grid tariff", func(c *Config) { c.GridTariff = -0.1 }},
		{"charge efficiency above one", func(c *Config) { c.EtaInBattery = 1.2 }},
		{"negative storage loss", func(c *Config) { c.StorageLossBattery = -0.5 }},
		{"c-rate above one", func(c *Config) { c.CRateLimit = 3.0 }},
		{"negative battery cap", func(c *Config) { c.BatteryCapMaxWh = -10 }},
		{"negative annual usage", func(c *Config) { c.AnnualUsageWh = -1 }},
		{"zero monthly weight", func(c *Config) {
			monthly := MonthlyDemand{400, 380, 350, 300, 250, 200, 200, 210, 250, 300, 0, 420}
			c.MonthlyDemand = &monthly
		}},
		{"unknown building type", func(c *Config) {
			c.HeatPumpEnabled = true
			c.BuildingType = "castle"
		}},
		{"unknown construction period", func(c *Config) {
			c.HeatPumpEnabled = true
			c.ConstructionPeriod = "someday"
		}},
		{"unknown insulation standard", func(c *Config) {
			c.HeatPumpEnabled = true
			c.InsulationStandard = "amazing"
		}},
		{"unknown heating type", func(c *Config) {
			c.HeatPumpEnabled = true
			c.HeatingType = "fireplace"
		}},
		{"zero charger power", func(c *Config) {
			c.ElectricCarEnabled = true
			c.CarChargerPowerW = 0
		}},
		{"inverted charge window", func(c *Config) {
			c.ElectricCarEnabled = true
			c.CarDayStartHour = 20
			c.CarDayEndHour = 8
		}},
	}
	for _, subTest := range subTests {
		t.Run(subTest.name, func(t *testing.T) {
			config := Default()
			subTest.mutate(&config)
			if err := config.Validate(); err == nil {
				t.Error("Expected a validation error, got nil")
			}
		})
	}
}

func TestValidateAcceptsDisabledSubsystemGarbage(t *testing.T) {
	// Building descriptors are only consulted when the heat pump is enabled.
	config := Default()
	config.HeatPumpEnabled = false
	config.BuildingType = "castle"
	if err := config.Validate(); err != nil {
		t.Errorf("Disabled heat pump should not validate building descriptors, got: %v", err)
	}
}

func TestRead(t *testing.T) {
	content := `{
		"invPv": 500.0,
		"gridTariff": 0.25,
		"heatPumpEnabled": true,
		"buildingType": "terraced",
		"constructionPeriod": "1980to2006",
		"insulationStandard": "good",
		"heatingType": "radiator",
		"monthlyDemand": [400, 380, 350, 300, 250, 200, 200, 210, 250, 300, 380, 420]
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Could not write config file: %v", err)
	}

	config, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if config.InvPV != 500.0 {
		t.Errorf("Got invPv %f, expected 500", config.InvPV)
	}
	if config.GridTariff != 0.25 {
		t.Errorf("Got gridTariff %f, expected 0.25", config.GridTariff)
	}
	// Fields absent from the file keep their defaults
	if config.Annuity != 0.1 {
		t.Errorf("Got annuity %f, expected default 0.1", config.Annuity)
	}
	if config.BuildingType != BuildingTypeTerraced {
		t.Errorf("Got building type %q, expected terraced", config.BuildingType)
	}
	if config.MonthlyDemand == nil {
		t.Fatal("Expected monthly demand to be set")
	}
	if (*config.MonthlyDemand)[11] != 420 {
		t.Errorf("Got December weight %f, expected 420", (*config.MonthlyDemand)[11])
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Loaded config should validate, got: %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("Expected an error for a missing file, got nil")
	}
}
